package http

import (
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.Suppliers(r.Context()), http.StatusOK)
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	create, err := decodeBody[models.SupplierCreate](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	supplier, err := h.backend.CreateSupplier(r.Context(), create)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, supplier, http.StatusCreated)
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.Clients(r.Context()), http.StatusOK)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.backend.Client(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, client, http.StatusOK)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	create, err := decodeBody[models.Client](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.backend.CreateClient(r.Context(), create)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, client, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.Users(r.Context()), http.StatusOK)
}
