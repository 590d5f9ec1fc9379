// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"encryption_key": "key-from-json",
			"recaptcha_secret_key": "secret-from-json",
			"admin_username": "owner",
			"admin_password_hash": "hash",
			"session_idle_timeout": "1h",
			"lockout_threshold": 5,
			"lockout_window": "15m",
			"block_threshold": 3,
			"failure_delay": "500ms",
			"dashboard_page_size": 10
		},
		"storage": {"db": {"dsn": "postgres://localhost/inkdesk"}},
		"server": {"http_address": "127.0.0.1:9000", "request_timeout": "30s"},
		"mail": {
			"smtp_host": "smtp.example.com",
			"smtp_port": 587,
			"sender_email": "noreply@example.com",
			"recipient_email": "owner@example.com",
			"send_timeout": "15s"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "key-from-json", cfg.App.EncryptionKey)
	assert.Equal(t, "secret-from-json", cfg.App.RecaptchaSecret)
	assert.Equal(t, "owner", cfg.App.AdminUsername)
	assert.Equal(t, time.Hour, cfg.App.SessionIdleTimeout)
	assert.Equal(t, 15*time.Minute, cfg.App.LockoutWindow)
	assert.Equal(t, 500*time.Millisecond, cfg.App.FailureDelay)
	assert.Equal(t, "postgres://localhost/inkdesk", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, 15*time.Second, cfg.Mail.SendTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"app": {`)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds number", input: `1000000000`, want: time.Second},
		{name: "invalid string", input: `"not-a-duration"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
