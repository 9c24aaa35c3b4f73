package http

import (
	"net/http"
	"strconv"
)

// withMetrics counts requests by method and final status code.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.Requests.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
	})
}
