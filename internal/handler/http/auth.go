package http

import (
	"net/http"

	"github.com/inkdesk/inkdesk/internal/auth"
	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/internal/validators"
)

// login runs the admin login state machine: rate-limit gate first, then the
// human-verification token, then input checks, then credentials. Every
// failure after the gate charges the attempt counters.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clientAddr := clientIP(r)

	gate := h.guard.CheckGate(clientAddr)
	switch gate.Status {
	case auth.GateLocked:
		log.Warn().Str("client_addr", clientAddr).Msg("login rejected: global lockout active")
		redirectLockout(w, r, int(gate.RetryAfter.Seconds()))
		return
	case auth.GateBlocked:
		log.Warn().Str("client_addr", clientAddr).Msg("login rejected: client address blocked")
		redirectWithReason(w, r, reasonBlocked)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("login rejected: unparseable form")
		h.guard.RecordFailure(ctx, clientAddr)
		redirectWithReason(w, r, reasonInvalidInput)
		return
	}

	token := r.PostFormValue(validators.FieldRecaptchaToken)
	if !h.verifier.Verify(ctx, token, clientAddr) {
		log.Warn().Str("client_addr", clientAddr).Msg("login rejected: recaptcha verification failed")
		h.guard.RecordFailure(ctx, clientAddr)
		redirectWithReason(w, r, reasonRecaptchaFailed)
		return
	}

	username := sanitizeUsername(r.PostFormValue("username"))
	password := sanitizePassword(r.PostFormValue("password"))

	if problems := validateLoginInput(username, password); len(problems) > 0 {
		// log the reasons, never the input
		log.Warn().Str("client_addr", clientAddr).Strs("problems", problems).Msg("login rejected: input validation failed")
		h.guard.RecordFailure(ctx, clientAddr)
		redirectWithReason(w, r, reasonInvalidInput)
		return
	}

	if username == "" || password == "" {
		log.Warn().Str("client_addr", clientAddr).Msg("login rejected: empty credentials after sanitization")
		h.guard.RecordFailure(ctx, clientAddr)
		redirectWithReason(w, r, reasonEmptyFields)
		return
	}

	if !h.guard.VerifyCredentials(username, password) {
		// failure is logged without the attempted username
		log.Warn().Str("client_addr", clientAddr).Msg("login rejected: invalid credentials")
		h.guard.RecordFailure(ctx, clientAddr)
		redirectWithReason(w, r, reasonInvalid)
		return
	}

	h.guard.RecordSuccess(ctx, clientAddr)

	if err := h.sessions.Establish(ctx, username); err != nil {
		log.Err(err).Msg("failed to establish session after successful login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("client_addr", clientAddr).Msg("admin authenticated")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// logout destroys the session regardless of whether one was established.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	_, err := h.sessions.Validate(ctx)
	wasLoggedIn := err == nil

	if err := h.sessions.Destroy(ctx); err != nil {
		log.Err(err).Msg("failed to destroy session during logout")
	}

	log.Info().Bool("was_logged_in", wasLoggedIn).Str("client_addr", clientIP(r)).Msg("logout processed")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
