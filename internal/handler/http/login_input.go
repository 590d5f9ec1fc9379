package http

import (
	"regexp"
	"strings"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 8
	maxPasswordLen = 255
)

var (
	usernameStripPattern = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	usernamePattern      = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	// suspiciousPatterns flag markup, script protocols, event handlers,
	// and raw control bytes anywhere in the combined credential input.
	suspiciousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bscript\b`),
		regexp.MustCompile(`<[^>]*>`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)data:`),
		regexp.MustCompile(`(?i)vbscript:`),
		regexp.MustCompile(`(?i)\bon\w+\s*=`),
		regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]"),
	}
)

// sanitizeUsername strips everything but alphanumerics, underscore, and
// hyphen.
func sanitizeUsername(raw string) string {
	return usernameStripPattern.ReplaceAllString(strings.TrimSpace(raw), "")
}

// sanitizePassword removes null bytes and trims whitespace. Other special
// characters are preserved: they are part of the secret.
func sanitizePassword(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, "\x00", ""))
}

// validateLoginInput checks the sanitized credentials against length bounds,
// the username character set, and the suspicious-input patterns. The returned
// messages are safe to log; they never include the input itself.
func validateLoginInput(username, password string) []string {
	var problems []string

	if username == "" {
		problems = append(problems, "username is required")
	}
	if password == "" {
		problems = append(problems, "password is required")
	}

	if len(username) < minUsernameLen {
		problems = append(problems, "username too short")
	}
	if len(username) > maxUsernameLen {
		problems = append(problems, "username too long")
	}
	if username != "" && !usernamePattern.MatchString(username) {
		problems = append(problems, "username contains invalid characters")
	}

	if len(password) < minPasswordLen {
		problems = append(problems, "password too short")
	}
	if len(password) > maxPasswordLen {
		problems = append(problems, "password too long")
	}

	combined := username + password
	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(combined) {
			problems = append(problems, "suspicious input detected")
			break
		}
	}

	return problems
}
