package models

// AdminAccount is one entry of the fixed admin allow-list, sourced from
// process configuration at startup. Immutable at runtime.
type AdminAccount struct {
	// Username is the login identifier of the account.
	Username string

	// PasswordHash is the bcrypt hash of the account password.
	// The plaintext password is never stored or configured.
	PasswordHash string
}
