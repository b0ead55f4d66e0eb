package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/chronos/internal/utils"
	"github.com/MKhiriev/chronos/models"
)

func (h *Handler) listCompetencies(w http.ResponseWriter, r *http.Request) {
	competencies, err := h.services.CompetencyService.ListCompetencies(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, competencies, http.StatusOK)
}

func (h *Handler) getCompetency(w http.ResponseWriter, r *http.Request) {
	competencyID, err := int64Param(r, "competencyID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	competency, err := h.services.CompetencyService.GetCompetency(r.Context(), competencyID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, competency, http.StatusOK)
}

func (h *Handler) createCompetency(w http.ResponseWriter, r *http.Request) {
	var competency models.HRCompetency
	if err := utils.DecodeJSON(r, &competency); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}
	competency.CompetencyID = 0

	created, err := h.services.CompetencyService.CreateCompetency(r.Context(), competency)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, created, http.StatusCreated)
}

func (h *Handler) updateCompetency(w http.ResponseWriter, r *http.Request) {
	competencyID, err := int64Param(r, "competencyID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var competency models.HRCompetency
	if err = utils.DecodeJSON(r, &competency); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}
	competency.CompetencyID = competencyID

	updated, err := h.services.CompetencyService.UpdateCompetency(r.Context(), competency)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, updated, http.StatusOK)
}

func (h *Handler) deleteCompetency(w http.ResponseWriter, r *http.Request) {
	competencyID, err := int64Param(r, "competencyID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CompetencyService.DeleteCompetency(r.Context(), competencyID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listStints(w http.ResponseWriter, r *http.Request) {
	stints, err := h.services.StintService.ListStints(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, stints, http.StatusOK)
}

func (h *Handler) getStint(w http.ResponseWriter, r *http.Request) {
	stintID, err := int64Param(r, "stintID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	stint, err := h.services.StintService.GetStint(r.Context(), stintID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, stint, http.StatusOK)
}

func (h *Handler) createStint(w http.ResponseWriter, r *http.Request) {
	var stint models.OOAStint
	if err := utils.DecodeJSON(r, &stint); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}
	stint.StintID = 0

	created, err := h.services.StintService.CreateStint(r.Context(), stint)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, created, http.StatusCreated)
}

func (h *Handler) updateStint(w http.ResponseWriter, r *http.Request) {
	stintID, err := int64Param(r, "stintID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var stint models.OOAStint
	if err = utils.DecodeJSON(r, &stint); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}
	stint.StintID = stintID

	updated, err := h.services.StintService.UpdateStint(r.Context(), stint)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, updated, http.StatusOK)
}

func (h *Handler) deleteStint(w http.ResponseWriter, r *http.Request) {
	stintID, err := int64Param(r, "stintID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.StintService.DeleteStint(r.Context(), stintID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
