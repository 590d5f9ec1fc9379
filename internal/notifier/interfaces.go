package notifier

import (
	"context"

	"github.com/inkdesk/inkdesk/models"
)

// Notice carries everything the studio owner's notification needs. Contact
// values here are plaintext; they travel only over the mail channel and are
// never written to storage in this form.
type Notice struct {
	// InquiryID is the store-assigned id, valid only when Saved is true.
	InquiryID int64
	// Saved reports whether the record made it into the database. A failed
	// save does not suppress the notification; the mail says so instead.
	Saved bool

	Name  string
	Age   string
	Phone string
	Email string

	Placement      string
	EstimatedSize  string
	Description    string
	Style          string
	ReferralSource string

	Attachments []models.FileUpload
}

// Notifier delivers a new-inquiry notice to the studio owner.
type Notifier interface {
	NotifyNewInquiry(ctx context.Context, notice Notice) error
}
