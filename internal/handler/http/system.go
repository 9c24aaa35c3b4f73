package http

import (
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.Dashboard(r.Context()), http.StatusOK)
}

func (h *Handler) listSystemVariables(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.SystemVariables(r.Context()), http.StatusOK)
}

func (h *Handler) updateSystemVariable(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	update, err := decodeBody[models.SystemVariableUpdate](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	variable, err := h.backend.SetSystemVariable(r.Context(), id, update.Value)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, variable, http.StatusOK)
}
