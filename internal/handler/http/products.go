package http

import (
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter := models.ProductFilter{SKU: r.URL.Query().Get("sku")}
	utils.WriteJSON(w, h.backend.Products(r.Context(), filter), http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.backend.Product(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	create, err := decodeBody[models.ProductCreate](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.backend.CreateProduct(r.Context(), create)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, product, http.StatusCreated)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.backend.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.Categories(r.Context()), http.StatusOK)
}

func (h *Handler) listBrands(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.Brands(r.Context()), http.StatusOK)
}

func (h *Handler) listEquipment(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.Equipment(r.Context()), http.StatusOK)
}

func (h *Handler) renameBrand(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	update, err := decodeBody[models.BrandUpdate](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	brand, err := h.backend.RenameBrand(r.Context(), id, update.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, brand, http.StatusOK)
}

func (h *Handler) patchEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status, err := decodeBody[models.EquipmentStatus](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.backend.SetEquipmentActive(r.Context(), id, status.Active); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
