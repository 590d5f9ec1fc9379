package http

import (
	"errors"
	"net/http"

	"github.com/inkdesk/inkdesk/internal/auth"
	"github.com/inkdesk/inkdesk/internal/logger"
)

// withAuth gates a route behind an authenticated, unexpired session. An
// expired session and a missing one get distinct reason codes, so the login
// page can tell the admin why they were sent back.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		_, err := h.sessions.Validate(r.Context())
		switch {
		case errors.Is(err, auth.ErrSessionExpired):
			log.Info().Str("client_addr", clientIP(r)).Msg("session expired, redirecting to login")
			redirectWithReason(w, r, reasonTimeout)
			return
		case errors.Is(err, auth.ErrNotAuthenticated):
			redirectWithReason(w, r, reasonUnauthorized)
			return
		case err != nil:
			log.Err(err).Msg("unexpected session validation error")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r)
	})
}
