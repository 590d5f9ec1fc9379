package http

import (
	"net/http"
	"strconv"

	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/internal/utils"
)

// dashboard serves one page of decrypted inquiries as JSON. Reachable only
// through withAuth.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	result, err := h.service.ListDecrypted(ctx, page)
	if err != nil {
		log.Err(err).Msg("failed to load dashboard page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
