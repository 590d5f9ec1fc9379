package store

import (
	"context"
	"fmt"

	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/models"
)

// inquiryRepository is the PostgreSQL-backed implementation of
// [InquiryRepository]. It handles insertion and retrieval of inquiry records
// against the "inquiries" table. Sensitive columns hold ciphertext only; the
// repository never sees a plaintext name, age, email, or phone number.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type inquiryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInquiryRepository constructs an [InquiryRepository] backed by the
// provided database connection and logger.
func NewInquiryRepository(db *DB, logger *logger.Logger) InquiryRepository {
	logger.Debug().Msg("creating inquiry repository")
	return &inquiryRepository{
		db:     db,
		logger: logger,
	}
}

// SaveInquiry persists a new inquiry record and returns the fully populated
// [models.Inquiry] with server-assigned fields (InquiryID, SubmittedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the stored record.
func (r *inquiryRepository) SaveInquiry(ctx context.Context, inquiry models.Inquiry) (models.Inquiry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertInquiry(inquiry)
	if err != nil {
		log.Err(err).Str("func", "*inquiryRepository.SaveInquiry").Msg("error: building insert query")
		return models.Inquiry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// insert inquiry into db
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*inquiryRepository.SaveInquiry").
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: row is nil")
		return models.Inquiry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved inquiry from db
	var saved models.Inquiry
	if err := row.Scan(&saved.InquiryID, &saved.EncryptedName, &saved.EncryptedAge, &saved.EncryptedEmail, &saved.EncryptedPhone, &saved.ReferralSource, &saved.SubmittedAt); err != nil {
		log.Err(err).Str("func", "*inquiryRepository.SaveInquiry").Msg("error: scanning error")
		return models.Inquiry{}, err
	}

	return saved, nil
}

// GetAllInquiries retrieves every stored inquiry, newest first.
func (r *inquiryRepository) GetAllInquiries(ctx context.Context) ([]models.Inquiry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllInquiries()
	if err != nil {
		log.Err(err).Str("func", "*inquiryRepository.GetAllInquiries").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*inquiryRepository.GetAllInquiries").
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	inquiries := make([]models.Inquiry, 0)
	for rows.Next() {
		var inquiry models.Inquiry
		if err := rows.Scan(&inquiry.InquiryID, &inquiry.EncryptedName, &inquiry.EncryptedAge, &inquiry.EncryptedEmail, &inquiry.EncryptedPhone, &inquiry.ReferralSource, &inquiry.SubmittedAt); err != nil {
			log.Err(err).Str("func", "*inquiryRepository.GetAllInquiries").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		inquiries = append(inquiries, inquiry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*inquiryRepository.GetAllInquiries").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return inquiries, nil
}
