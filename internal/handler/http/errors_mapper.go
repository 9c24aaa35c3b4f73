package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/mockapi"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	mockapi.ErrInvalidCredentials: http.StatusUnauthorized,
	mockapi.ErrInvalidToken:       http.StatusUnauthorized,
	mockapi.ErrInvalidRefresh:     http.StatusUnauthorized,
	mockapi.ErrNotFound:           http.StatusNotFound,
	mockapi.ErrInvalidData:        http.StatusBadRequest,
	mockapi.ErrInsufficientStock:  http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrNoRefreshCookie:                  http.StatusUnauthorized,
	ErrInvalidJSON:                      http.StatusBadRequest,
	ErrInvalidID:                        http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Internal errors
// are not echoed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		utils.WriteDetail(w, status, http.StatusText(status))
		return
	}

	log.Debug().Err(err).Int("status", status).Send()
	utils.WriteDetail(w, status, err.Error())
}
