package http

import (
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func (h *Handler) listMovements(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.Movements(r.Context()), http.StatusOK)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.Movements(r.Context()).Entries, http.StatusOK)
}

func (h *Handler) listExits(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.Movements(r.Context()).Exits, http.StatusOK)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := h.backend.Entry(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) getExit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	exit, err := h.backend.Exit(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, exit, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	create, err := decodeBody[models.EntryCreate](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entry, err := h.backend.CreateEntry(ctx, userID, create)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("entry_id", entry.ID).Int("items", len(entry.Items)).Msg("entry registered")
	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) createExit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	create, err := decodeBody[models.ExitCreate](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	exit, err := h.backend.CreateExit(ctx, userID, create)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("exit_id", exit.ID).Int("items", len(exit.Items)).Msg("exit registered")
	utils.WriteJSON(w, exit, http.StatusCreated)
}
