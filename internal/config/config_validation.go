// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The server never
// starts without a field-encryption key, a database DSN, an anti-automation
// secret, at least one admin account, and working notification settings.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.EncryptionKey == "" || cfg.App.RecaptchaSecret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.AdminUsername == "" || cfg.App.AdminPasswordHash == "" {
		return ErrNoAdminAccounts
	}

	// a second account is optional, but never half-configured
	if (cfg.App.SecondAdminUsername == "") != (cfg.App.SecondAdminPasswordHash == "") {
		return ErrNoAdminAccounts
	}

	if cfg.App.SessionIdleTimeout <= 0 || cfg.App.LockoutThreshold <= 0 ||
		cfg.App.LockoutWindow <= 0 || cfg.App.BlockThreshold <= 0 ||
		cfg.App.DashboardPageSize <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Mail.Host == "" || cfg.Mail.Port == 0 ||
		cfg.Mail.SenderEmail == "" || cfg.Mail.RecipientEmail == "" {
		return ErrInvalidMailConfigs
	}

	return nil
}
