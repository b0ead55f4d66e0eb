package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/chronos/internal/utils"
	"github.com/MKhiriev/chronos/models"
)

func (h *Handler) listOfficers(w http.ResponseWriter, r *http.Request) {
	officers, err := h.services.OfficerService.ListOfficers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, officers, http.StatusOK)
}

func (h *Handler) getOfficer(w http.ResponseWriter, r *http.Request) {
	officer, err := h.services.OfficerService.GetOfficer(r.Context(), chi.URLParam(r, "officerID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, officer, http.StatusOK)
}

func (h *Handler) createOfficer(w http.ResponseWriter, r *http.Request) {
	var officer models.Officer
	if err := utils.DecodeJSON(r, &officer); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	created, err := h.services.OfficerService.CreateOfficer(r.Context(), officer)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, created, http.StatusCreated)
}

func (h *Handler) updateOfficer(w http.ResponseWriter, r *http.Request) {
	var update models.OfficerUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}
	update.OfficerID = chi.URLParam(r, "officerID")

	updated, err := h.services.OfficerService.UpdateOfficer(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, updated, http.StatusOK)
}

func (h *Handler) deleteOfficer(w http.ResponseWriter, r *http.Request) {
	if err := h.services.OfficerService.DeleteOfficer(r.Context(), chi.URLParam(r, "officerID")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setOfficerCompetency(w http.ResponseWriter, r *http.Request) {
	competencyID, err := int64Param(r, "competencyID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.SetCompetencyRequest
	if err = utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	saved, err := h.services.OfficerService.SetOfficerCompetency(r.Context(), models.OfficerCompetency{
		OfficerID:       chi.URLParam(r, "officerID"),
		CompetencyID:    competencyID,
		AchievedPLLevel: request.AchievedPLLevel,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, saved, http.StatusOK)
}

func (h *Handler) removeOfficerCompetency(w http.ResponseWriter, r *http.Request) {
	competencyID, err := int64Param(r, "competencyID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.OfficerService.RemoveOfficerCompetency(r.Context(), chi.URLParam(r, "officerID"), competencyID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addOfficerStint(w http.ResponseWriter, r *http.Request) {
	var request models.AddStintRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	saved, err := h.services.OfficerService.AddOfficerStint(r.Context(), models.OfficerStint{
		OfficerID:      chi.URLParam(r, "officerID"),
		StintID:        request.StintID,
		CompletionYear: request.CompletionYear,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, saved, http.StatusCreated)
}

func (h *Handler) removeOfficerStint(w http.ResponseWriter, r *http.Request) {
	stintID, err := int64Param(r, "stintID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.OfficerService.RemoveOfficerStint(r.Context(), chi.URLParam(r, "officerID"), stintID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRemarks(w http.ResponseWriter, r *http.Request) {
	remarks, err := h.services.RemarkService.ListRemarks(r.Context(), chi.URLParam(r, "officerID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, remarks, http.StatusOK)
}

// addRemark appends a remark; remarks are never edited or deleted.
func (h *Handler) addRemark(w http.ResponseWriter, r *http.Request) {
	var remark models.OfficerRemark
	if err := utils.DecodeJSON(r, &remark); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}
	remark.OfficerID = chi.URLParam(r, "officerID")

	created, err := h.services.RemarkService.AddRemark(r.Context(), remark)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, created, http.StatusCreated)
}
