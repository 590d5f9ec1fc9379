package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing encryption key or recaptcha secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrNoAdminAccounts indicates that no complete admin username/hash
	// pair was configured.
	ErrNoAdminAccounts = errors.New("no admin accounts configured")
	// ErrInvalidMailConfigs indicates invalid notification mail settings
	// (for example, missing SMTP host or recipient).
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
)
