package http

import (
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.buildInfo.VersionInfo(), http.StatusOK)
}
