package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// refreshCookieName carries the opaque refresh id. It is HttpOnly and scoped
// to the whole host so both the refresh and the logout endpoints receive it.
const refreshCookieName = "refresh_token"

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	credentials, err := decodeBody[models.Credentials](r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, refreshID, err := h.backend.Login(r.Context(), credentials)
	if err != nil {
		h.metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		writeError(w, r, err)
		return
	}
	h.metrics.LoginsTotal.WithLabelValues("success").Inc()

	log.Debug().Str("username", resp.Username).Msg("user successfully logged in")

	h.setRefreshCookie(w, refreshID)
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		h.metrics.RefreshesTotal.WithLabelValues("missing").Inc()
		writeError(w, r, ErrNoRefreshCookie)
		return
	}

	resp, refreshID, err := h.backend.Refresh(r.Context(), cookie.Value)
	if err != nil {
		h.metrics.RefreshesTotal.WithLabelValues("rejected").Inc()
		h.clearRefreshCookie(w)
		writeError(w, r, err)
		return
	}
	h.metrics.RefreshesTotal.WithLabelValues("success").Inc()

	h.setRefreshCookie(w, refreshID)
	utils.WriteJSON(w, resp, http.StatusOK)
}

// logout revokes the refresh session if the cookie is present. It never
// fails, a client without a cookie is already logged out.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshCookieName); err == nil {
		h.backend.Logout(r.Context(), cookie.Value)
	} else if !errors.Is(err, http.ErrNoCookie) {
		logger.FromRequest(r).Err(err).Msg("error reading refresh cookie")
	}

	h.clearRefreshCookie(w)
	utils.WriteDetail(w, http.StatusOK, "Sesión cerrada.")
}

func (h *Handler) setRefreshCookie(w http.ResponseWriter, refreshID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshID,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
