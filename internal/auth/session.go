// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/inkdesk/inkdesk/internal/logger"
)

// Session data keys.
const (
	sessionKeyAuthenticated = "authenticated"
	sessionKeyPrincipal     = "principal"
	sessionKeyEstablishedAt = "established_at"
)

// SessionPolicy wraps an scs session manager with the authentication rules
// of the dashboard: a session token is rotated on every login, and an
// authenticated session is valid for a fixed window measured from
// establishment. The window does not slide; activity never extends it.
type SessionPolicy struct {
	manager     *scs.SessionManager
	idleTimeout time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewSessionPolicy constructs a [SessionPolicy] over manager with the given
// fixed session window.
func NewSessionPolicy(manager *scs.SessionManager, idleTimeout time.Duration, logger *logger.Logger) *SessionPolicy {
	// scs enforces a sliding deadline of its own; keep it just above the
	// fixed window so our check always fires first.
	manager.IdleTimeout = idleTimeout + time.Minute
	manager.Lifetime = idleTimeout + time.Minute
	manager.Cookie.HttpOnly = true
	manager.Cookie.SameSite = http.SameSiteLaxMode

	return &SessionPolicy{
		manager:     manager,
		idleTimeout: idleTimeout,
		now:         time.Now,
		logger:      logger,
	}
}

// Manager exposes the underlying scs manager for the LoadAndSave middleware.
func (p *SessionPolicy) Manager() *scs.SessionManager {
	return p.manager
}

// Establish marks the current session as authenticated for principal.
// The session token is rotated first, so any token a client held before
// authentication never names an authenticated session.
func (p *SessionPolicy) Establish(ctx context.Context, principal string) error {
	if err := p.manager.RenewToken(ctx); err != nil {
		return err
	}

	p.manager.Put(ctx, sessionKeyAuthenticated, true)
	p.manager.Put(ctx, sessionKeyPrincipal, principal)
	p.manager.Put(ctx, sessionKeyEstablishedAt, p.now().Unix())

	return nil
}

// Validate checks whether the current session is authenticated and still
// inside its fixed window. On an expired session the server-side state is
// destroyed before [ErrSessionExpired] is returned, so the same token can
// never pass a later check.
//
// Returns the authenticated principal on success.
func (p *SessionPolicy) Validate(ctx context.Context) (string, error) {
	if !p.manager.GetBool(ctx, sessionKeyAuthenticated) {
		return "", ErrNotAuthenticated
	}

	establishedAt := time.Unix(p.manager.GetInt64(ctx, sessionKeyEstablishedAt), 0)
	if p.now().Sub(establishedAt) > p.idleTimeout {
		log := logger.FromContext(ctx)
		principal := p.manager.GetString(ctx, sessionKeyPrincipal)

		if err := p.manager.Destroy(ctx); err != nil {
			log.Err(err).Str("func", "Validate").Msg("failed to destroy expired session")
		}
		log.Info().Str("principal", principal).Msg("session expired")

		return "", ErrSessionExpired
	}

	return p.manager.GetString(ctx, sessionKeyPrincipal), nil
}

// Destroy removes the server-side session state. Destroying a session that
// was never established is a no-op.
func (p *SessionPolicy) Destroy(ctx context.Context) error {
	return p.manager.Destroy(ctx)
}
