package store

import (
	"context"

	"github.com/inkdesk/inkdesk/models"
)

// InquiryRepository persists inquiry records. Records are insert-only: the
// system never updates or deletes an inquiry once stored.
type InquiryRepository interface {
	SaveInquiry(ctx context.Context, inquiry models.Inquiry) (models.Inquiry, error)
	GetAllInquiries(ctx context.Context) ([]models.Inquiry, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
