package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/chronos/internal/utils"
	"github.com/MKhiriev/chronos/models"
)

func (h *Handler) listPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.services.PositionService.ListPositions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, positions, http.StatusOK)
}

func (h *Handler) getPosition(w http.ResponseWriter, r *http.Request) {
	position, err := h.services.PositionService.GetPosition(r.Context(), chi.URLParam(r, "positionID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, position, http.StatusOK)
}

// createPosition accepts the position together with optional successor
// arrays. Successors that cannot be saved do not fail the request.
func (h *Handler) createPosition(w http.ResponseWriter, r *http.Request) {
	var request models.CreatePositionRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	created, err := h.services.PositionService.CreatePosition(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, created, http.StatusCreated)
}

func (h *Handler) updatePosition(w http.ResponseWriter, r *http.Request) {
	var update models.PositionUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}
	update.PositionID = chi.URLParam(r, "positionID")

	updated, err := h.services.PositionService.UpdatePosition(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, updated, http.StatusOK)
}

func (h *Handler) deletePosition(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PositionService.DeletePosition(r.Context(), chi.URLParam(r, "positionID")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// setSuccessors replaces the successors of one tier.
func (h *Handler) setSuccessors(w http.ResponseWriter, r *http.Request) {
	var request models.SetSuccessorsRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	position, err := h.services.PositionService.SetSuccessors(
		r.Context(),
		chi.URLParam(r, "positionID"),
		models.SuccessionType(chi.URLParam(r, "tier")),
		request.OfficerIDs,
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, position, http.StatusOK)
}
