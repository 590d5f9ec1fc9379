package http

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postLogin(t *testing.T, env *testEnv, username, password string) *http.Response {
	t.Helper()

	form := url.Values{
		"username":             {username},
		"password":             {password},
		"g-recaptcha-response": {"token"},
	}

	resp, err := env.client.PostForm(env.server.URL+"/login", form)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func location(t *testing.T, resp *http.Response) string {
	t.Helper()
	loc, err := resp.Location()
	require.NoError(t, err)
	return loc.RequestURI()
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)

	resp := postLogin(t, env, testUsername, testPassword)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", location(t, resp))
	assert.NotEmpty(t, resp.Cookies(), "login must set a session cookie")
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	resp := postLogin(t, env, testUsername, "wrong-password-1")

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login?reason=invalid", location(t, resp))
}

func TestLogin_UnknownUsername(t *testing.T) {
	env := newTestEnv(t)

	resp := postLogin(t, env, "somebody-else", testPassword)

	assert.Equal(t, "/login?reason=invalid", location(t, resp))
}

func TestLogin_RecaptchaFailed(t *testing.T) {
	env := newTestEnv(t)
	env.verifier.verdict = false

	resp := postLogin(t, env, testUsername, testPassword)

	assert.Equal(t, "/login?reason=recaptcha_failed", location(t, resp))
}

func TestLogin_InvalidInput(t *testing.T) {
	env := newTestEnv(t)

	// two characters survive sanitization: below the username minimum
	resp := postLogin(t, env, "a!b", testPassword)

	assert.Equal(t, "/login?reason=invalid_input", location(t, resp))
}

func TestLogin_AddressBlockedAfterThreeFailures(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 3; i++ {
		postLogin(t, env, testUsername, "wrong-password-1")
	}

	// the gate fires before credentials are even looked at
	resp := postLogin(t, env, testUsername, testPassword)
	assert.Equal(t, "/login?reason=blocked", location(t, resp))
}

func TestLogin_GlobalLockoutAfterFiveFailures(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 5; i++ {
		postLogin(t, env, testUsername, "wrong-password-1")
	}

	resp := postLogin(t, env, testUsername, testPassword)
	loc := location(t, resp)
	assert.True(t, strings.HasPrefix(loc, "/login?reason=lockout&time="), "got %s", loc)
}

func TestLogin_RecaptchaFailureChargesTheCounters(t *testing.T) {
	env := newTestEnv(t)
	env.verifier.verdict = false

	for i := 0; i < 3; i++ {
		postLogin(t, env, testUsername, testPassword)
	}

	env.verifier.verdict = true
	resp := postLogin(t, env, testUsername, testPassword)
	assert.Equal(t, "/login?reason=blocked", location(t, resp))
}

func TestLogin_SuccessResetsCounters(t *testing.T) {
	env := newTestEnv(t)

	postLogin(t, env, testUsername, "wrong-password-1")
	postLogin(t, env, testUsername, "wrong-password-1")

	resp := postLogin(t, env, testUsername, testPassword)
	require.Equal(t, "/dashboard", location(t, resp))

	// counters were cleared: two more failures do not block
	postLogin(t, env, testUsername, "wrong-password-1")
	resp = postLogin(t, env, testUsername, "wrong-password-1")
	assert.Equal(t, "/login?reason=invalid", location(t, resp))
}

func TestLogout_DestroysSession(t *testing.T) {
	env := newTestEnv(t)

	resp := postLogin(t, env, testUsername, testPassword)
	require.Equal(t, "/dashboard", location(t, resp))

	logoutResp, err := env.client.Get(env.server.URL + "/logout")
	require.NoError(t, err)
	logoutResp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, logoutResp.StatusCode)

	// the old session no longer opens the dashboard
	dashResp, err := env.client.Get(env.server.URL + "/dashboard")
	require.NoError(t, err)
	dashResp.Body.Close()
	assert.Equal(t, "/login?reason=unauthorized", location(t, dashResp))
}

func TestLogout_WithoutSessionStillRedirects(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.client.Get(env.server.URL + "/logout")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", location(t, resp))
}

func TestDashboard_RequiresSession(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.client.Get(env.server.URL + "/dashboard")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login?reason=unauthorized", location(t, resp))
}

func TestLogin_SessionCookieRotatesOnLogin(t *testing.T) {
	env := newTestEnv(t)

	// visiting any page primes an anonymous session cookie
	resp, err := env.client.Get(env.server.URL + "/dashboard")
	require.NoError(t, err)
	resp.Body.Close()

	var before string
	for _, cookie := range env.client.Jar.Cookies(mustParseURL(t, env.server.URL)) {
		before += cookie.Value
	}

	loginResp := postLogin(t, env, testUsername, testPassword)
	require.Equal(t, "/dashboard", location(t, loginResp))

	var after string
	for _, cookie := range env.client.Jar.Cookies(mustParseURL(t, env.server.URL)) {
		after += cookie.Value
	}

	if before != "" {
		assert.NotEqual(t, before, after, "session token must change on login")
	}
	assert.NotEmpty(t, after)
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestSanitizeUsername(t *testing.T) {
	assert.Equal(t, "admin_1-x", sanitizeUsername("  admin_1-x  "))
	assert.Equal(t, "adminDROPTABLE", sanitizeUsername("admin'; DROP TABLE--"))
	assert.Equal(t, "", sanitizeUsername("<>!@#$%"))
	assert.NotContains(t, sanitizeUsername("ab\x00cd"), "\x00")
}

func TestValidateLoginInput(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
	}{
		{name: "valid", username: "studio-admin", password: "longenough1", wantOK: true},
		{name: "short username", username: "ab", password: "longenough1", wantOK: false},
		{name: "long username", username: strings.Repeat("a", 51), password: "longenough1", wantOK: false},
		{name: "short password", username: "studio-admin", password: "short", wantOK: false},
		{name: "long password", username: "studio-admin", password: strings.Repeat("p", 256), wantOK: false},
		{name: "script keyword", username: "studio-admin", password: "x script x1", wantOK: false},
		{name: "markup in password", username: "studio-admin", password: "pass<b>word</b>", wantOK: false},
		{name: "event handler", username: "studio-admin", password: "onclick = alert", wantOK: false},
		{name: "empty both", username: "", password: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := validateLoginInput(tt.username, tt.password)
			if tt.wantOK {
				assert.Empty(t, problems)
			} else {
				assert.NotEmpty(t, problems)
			}
		})
	}
}
