// SPDX-License-Identifier: Apache-2.0

// Package validators provides sanitization and validation of the tattoo
// inquiry form and of login input, plus the anti-automation token check.
//
// Core concepts:
//   - InquiryValidator: validates a raw form submission into a
//     models.ValidatedInquiry, accumulating every discovered problem into
//     one error list so the client can be told everything at once.
//   - TokenVerifier: verifies a human-verification token against an
//     external anti-automation service.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable, composable, and testable validation strategies.
package validators

import (
	"context"

	"github.com/inkdesk/inkdesk/models"
)

// InquiryValidator validates a raw inquiry form submission.
type InquiryValidator interface {
	// Validate sanitizes and validates the raw form fields and uploaded
	// files. clientAddr is forwarded to the anti-automation service.
	//
	// On success the returned error slice is empty. On failure it contains
	// every validation error discovered; files are checked independently so
	// one bad upload never hides problems with the other.
	Validate(ctx context.Context, clientAddr string, fields map[string]string, files []models.FileUpload) (models.ValidatedInquiry, []error)
}

// TokenVerifier verifies a human-verification token with an external
// service. A network failure or an unsuccessful verdict both report the
// token as not verified; neither crashes the caller.
type TokenVerifier interface {
	Verify(ctx context.Context, token, clientAddr string) bool
}
