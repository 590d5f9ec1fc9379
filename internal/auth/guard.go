// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/inkdesk/inkdesk/internal/config"
	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/models"
)

// GateStatus describes the verdict of the pre-credential gate.
type GateStatus string

const (
	// GateAllowed means the attempt may proceed to token and credential
	// checks.
	GateAllowed GateStatus = "allowed"
	// GateLocked means the global lockout is active. RetryAfter carries
	// the remaining lockout time.
	GateLocked GateStatus = "locked"
	// GateBlocked means the client address exceeded its own failure
	// budget. There is no time-based recovery; only a successful login
	// clears it.
	GateBlocked GateStatus = "blocked"
)

// GateResult is the outcome of [Guard.CheckGate].
type GateResult struct {
	Status     GateStatus
	RetryAfter time.Duration
}

// dummyPasswordHash is compared against when the username is unknown, so
// that an unknown username costs the same time as a wrong password.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Guard enforces the login rate-limit state machine and verifies admin
// credentials against the fixed allow-list.
//
// The gate must be evaluated before any token or credential work: a locked
// or blocked caller learns nothing about whether its credentials were even
// looked at.
type Guard struct {
	attempts *AttemptStore
	accounts map[string]string // username -> bcrypt hash

	lockoutThreshold int
	lockoutWindow    time.Duration
	blockThreshold   int
	failureDelay     time.Duration

	now   func() time.Time
	sleep func(time.Duration)

	logger *logger.Logger
}

// NewGuard constructs a [Guard] over the given attempt store and admin
// allow-list, with thresholds taken from cfg.
func NewGuard(attempts *AttemptStore, admins []models.AdminAccount, cfg config.App, logger *logger.Logger) *Guard {
	accounts := make(map[string]string, len(admins))
	for _, admin := range admins {
		if admin.Username != "" && admin.PasswordHash != "" {
			accounts[admin.Username] = admin.PasswordHash
		}
	}

	return &Guard{
		attempts:         attempts,
		accounts:         accounts,
		lockoutThreshold: cfg.LockoutThreshold,
		lockoutWindow:    cfg.LockoutWindow,
		blockThreshold:   cfg.BlockThreshold,
		failureDelay:     cfg.FailureDelay,
		now:              time.Now,
		sleep:            time.Sleep,
		logger:           logger,
	}
}

// CheckGate evaluates the rate-limit state for addr. Call this before the
// human-verification token check and before touching credentials.
//
// The global lockout lifts on its own once the window elapses, but the
// per-address block never does: the counters behind both survive until a
// successful login zeroes them.
func (g *Guard) CheckGate(addr string) GateResult {
	globalCount, lastAttempt := g.attempts.Global()
	if globalCount >= g.lockoutThreshold {
		elapsed := g.now().Sub(lastAttempt)
		if elapsed < g.lockoutWindow {
			return GateResult{Status: GateLocked, RetryAfter: g.lockoutWindow - elapsed}
		}
	}

	addrCount, _ := g.attempts.Address(addr)
	if addrCount >= g.blockThreshold {
		return GateResult{Status: GateBlocked}
	}

	return GateResult{Status: GateAllowed}
}

// RecordFailure charges a failed attempt (wrong credentials and a failed
// human-verification token cost the same) to addr and to the global counter,
// then sleeps the configured delay to blunt automated guessing.
func (g *Guard) RecordFailure(ctx context.Context, addr string) {
	log := logger.FromContext(ctx)

	g.attempts.RecordFailure(addr)

	globalCount, _ := g.attempts.Global()
	addrCount, _ := g.attempts.Address(addr)
	log.Warn().
		Str("client_addr", addr).
		Int("global_failures", globalCount).
		Int("addr_failures", addrCount).
		Msg("failed login attempt recorded")

	g.sleep(g.failureDelay)
}

// RecordSuccess zeroes the counters for addr and the global counter.
func (g *Guard) RecordSuccess(ctx context.Context, addr string) {
	log := logger.FromContext(ctx)

	g.attempts.RecordSuccess(addr)
	log.Info().Str("client_addr", addr).Msg("login succeeded, counters reset")
}

// VerifyCredentials compares the supplied credentials against the fixed
// allow-list using bcrypt. An unknown username takes the same path and the
// same time as a known username with a wrong password; the caller can never
// distinguish the two.
func (g *Guard) VerifyCredentials(username, password string) bool {
	hash, known := g.accounts[username]
	if !known {
		hash = dummyPasswordHash
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return known && err == nil
}
