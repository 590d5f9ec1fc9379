package http

import (
	"net/http"
	"strconv"
)

// Reason codes carried back to the login page as a query parameter. The page
// turns them into user-facing messages; the codes themselves reveal nothing
// about which credential was wrong.
const (
	reasonInvalid         = "invalid"
	reasonLockout         = "lockout"
	reasonBlocked         = "blocked"
	reasonTimeout         = "timeout"
	reasonRecaptchaFailed = "recaptcha_failed"
	reasonInvalidInput    = "invalid_input"
	reasonEmptyFields     = "empty_fields"
	reasonUnauthorized    = "unauthorized"
)

const loginPath = "/login"

func redirectWithReason(w http.ResponseWriter, r *http.Request, reason string) {
	http.Redirect(w, r, loginPath+"?reason="+reason, http.StatusSeeOther)
}

// redirectLockout includes the remaining lockout time in whole seconds.
func redirectLockout(w http.ResponseWriter, r *http.Request, remainingSeconds int) {
	http.Redirect(w, r, loginPath+"?reason="+reasonLockout+"&time="+strconv.Itoa(remainingSeconds), http.StatusSeeOther)
}
