package service

import (
	"context"

	"github.com/inkdesk/inkdesk/models"
)

// SubmitResult reports what happened to an accepted submission. A submission
// is accepted once validation passes and encryption succeeds; persistence and
// notification are each best-effort after that point.
type SubmitResult struct {
	// InquiryID is the store-assigned id, valid only when Saved is true.
	InquiryID int64
	// Saved reports whether the record reached the database.
	Saved bool
	// Notified reports whether the owner notification was sent.
	Notified bool
}

// InquiryService is the application core: it accepts public form
// submissions and serves the authenticated dashboard listing.
type InquiryService interface {
	// Submit validates, encrypts, persists, and announces one inquiry.
	// A non-empty error slice means the submission was rejected and
	// nothing was stored or sent.
	Submit(ctx context.Context, clientAddr string, fields map[string]string, files []models.FileUpload) (SubmitResult, []error)

	// ListDecrypted returns one dashboard page of decrypted inquiries,
	// newest first, with aggregate stats over the full data set.
	ListDecrypted(ctx context.Context, page int) (models.InquiryPage, error)
}
