package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/inkdesk/inkdesk/internal/config"
	"github.com/inkdesk/inkdesk/internal/crypto"
	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/internal/notifier"
	"github.com/inkdesk/inkdesk/internal/store"
	"github.com/inkdesk/inkdesk/internal/validators"
	"github.com/inkdesk/inkdesk/models"
)

type inquiryService struct {
	validator  validators.InquiryValidator
	box        crypto.Box
	repository store.InquiryRepository
	notifier   notifier.Notifier

	pageSize int

	now func() time.Time

	logger *logger.Logger
}

// NewInquiryService wires the application core together.
func NewInquiryService(validator validators.InquiryValidator, box crypto.Box, repository store.InquiryRepository, mailNotifier notifier.Notifier, cfg config.App, logger *logger.Logger) InquiryService {
	return &inquiryService{
		validator:  validator,
		box:        box,
		repository: repository,
		notifier:   mailNotifier,
		pageSize:   cfg.DashboardPageSize,
		now:        time.Now,
		logger:     logger,
	}
}

// Submit runs the full intake pipeline for one form submission.
//
// Validation failures reject the submission outright. After encryption,
// persistence and notification are independent best-effort steps: a database
// outage must not lose the inquiry (the mail still goes out, flagged as
// unsaved), and a mail outage must not lose the record.
func (s *inquiryService) Submit(ctx context.Context, clientAddr string, fields map[string]string, files []models.FileUpload) (SubmitResult, []error) {
	log := logger.FromContext(ctx)

	validated, validationErrs := s.validator.Validate(ctx, clientAddr, fields, files)
	if len(validationErrs) > 0 {
		return SubmitResult{}, validationErrs
	}

	record, err := s.encryptRecord(validated)
	if err != nil {
		log.Err(err).Str("func", "*inquiryService.Submit").Msg("error: encrypting sensitive fields")
		return SubmitResult{}, []error{ErrEncryptionFailed}
	}

	var result SubmitResult

	saved, err := s.repository.SaveInquiry(ctx, record)
	if err != nil {
		// keep going: the notification still carries the inquiry
		log.Err(err).Str("func", "*inquiryService.Submit").Msg("error: saving inquiry, continuing with notification")
	} else {
		result.InquiryID = saved.InquiryID
		result.Saved = true
	}

	notice := s.buildNotice(record, validated, result)
	if err := s.notifier.NotifyNewInquiry(ctx, notice); err != nil {
		log.Err(err).Str("func", "*inquiryService.Submit").Msg("error: sending inquiry notification")
	} else {
		result.Notified = true
	}

	return result, nil
}

// ListDecrypted serves one dashboard page. Every stored inquiry is loaded so
// the aggregate stats cover the full data set; the page slice is cut after
// decryption-independent ordering is established by the store.
func (s *inquiryService) ListDecrypted(ctx context.Context, page int) (models.InquiryPage, error) {
	log := logger.FromContext(ctx)

	all, err := s.repository.GetAllInquiries(ctx)
	if err != nil {
		log.Err(err).Str("func", "*inquiryService.ListDecrypted").Msg("error: loading inquiries")
		return models.InquiryPage{}, fmt.Errorf("error loading inquiries: %w", err)
	}

	if page < 1 {
		page = 1
	}

	total := len(all)
	totalPages := (total + s.pageSize - 1) / s.pageSize

	start := (page - 1) * s.pageSize
	end := start + s.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	inquiries := make([]models.DecryptedInquiry, 0, end-start)
	for _, record := range all[start:end] {
		inquiries = append(inquiries, s.decryptInquiry(ctx, record))
	}

	return models.InquiryPage{
		Inquiries:  inquiries,
		Page:       page,
		PageSize:   s.pageSize,
		TotalPages: totalPages,
		Stats:      s.computeStats(all),
	}, nil
}

// encryptRecord encrypts the four sensitive fields independently. Any single
// failure rejects the whole record.
func (s *inquiryService) encryptRecord(validated models.ValidatedInquiry) (models.Inquiry, error) {
	encryptedName, err := s.box.Encrypt(validated.Name)
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("encrypting name: %w", err)
	}
	encryptedAge, err := s.box.Encrypt(strconv.Itoa(validated.Age))
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("encrypting age: %w", err)
	}
	encryptedEmail, err := s.box.Encrypt(validated.Email)
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("encrypting email: %w", err)
	}
	encryptedPhone, err := s.box.Encrypt(validated.Phone)
	if err != nil {
		return models.Inquiry{}, fmt.Errorf("encrypting phone: %w", err)
	}

	return models.Inquiry{
		EncryptedName:  encryptedName,
		EncryptedAge:   encryptedAge,
		EncryptedEmail: encryptedEmail,
		EncryptedPhone: encryptedPhone,
		ReferralSource: validated.ReferralSource,
	}, nil
}

// buildNotice prepares the owner notification. Contact values are recovered
// from the ciphertexts that were just produced, so the mail shows exactly
// what a dashboard reader will later see; if that round trip fails, all four
// degrade to the placeholder together.
func (s *inquiryService) buildNotice(record models.Inquiry, validated models.ValidatedInquiry, result SubmitResult) notifier.Notice {
	name, errName := s.box.Decrypt(record.EncryptedName)
	age, errAge := s.box.Decrypt(record.EncryptedAge)
	email, errEmail := s.box.Decrypt(record.EncryptedEmail)
	phone, errPhone := s.box.Decrypt(record.EncryptedPhone)

	if errName != nil || errAge != nil || errEmail != nil || errPhone != nil {
		name = models.DecryptionPlaceholder
		age = models.DecryptionPlaceholder
		email = models.DecryptionPlaceholder
		phone = models.DecryptionPlaceholder
	}

	return notifier.Notice{
		InquiryID:      result.InquiryID,
		Saved:          result.Saved,
		Name:           name,
		Age:            age,
		Phone:          phone,
		Email:          email,
		Placement:      validated.Placement,
		EstimatedSize:  validated.EstimatedSize,
		Description:    validated.Description,
		Style:          validated.Style,
		ReferralSource: validated.ReferralSource,
		Attachments:    validated.Attachments,
	}
}

// decryptInquiry decrypts one record for display. Each field degrades on its
// own; a corrupted name never hides a readable phone number. The attempted
// plaintext of a failed field is never logged or exposed.
func (s *inquiryService) decryptInquiry(ctx context.Context, record models.Inquiry) models.DecryptedInquiry {
	return models.DecryptedInquiry{
		InquiryID:      record.InquiryID,
		Name:           s.decryptField(ctx, record.InquiryID, "name", record.EncryptedName),
		Age:            s.decryptField(ctx, record.InquiryID, "age", record.EncryptedAge),
		Email:          s.decryptField(ctx, record.InquiryID, "email", record.EncryptedEmail),
		Phone:          s.decryptField(ctx, record.InquiryID, "phone", record.EncryptedPhone),
		ReferralSource: record.ReferralSource,
		SubmittedAt:    record.SubmittedAt,
	}
}

func (s *inquiryService) decryptField(ctx context.Context, inquiryID int64, field, ciphertext string) models.DecryptedField {
	value, err := s.box.Decrypt(ciphertext)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Int64("inquiry_id", inquiryID).
			Str("field", field).
			Msg("field failed to decrypt, showing placeholder")
		return models.FailedField()
	}
	return models.OkField(value)
}

// computeStats counts submissions for the dashboard header. Calendar
// comparisons use UTC.
func (s *inquiryService) computeStats(all []models.Inquiry) models.InquiryStats {
	now := s.now().UTC()
	nowYear, nowMonth, nowDay := now.Date()
	nowISOYear, nowISOWeek := now.ISOWeek()

	stats := models.InquiryStats{Total: len(all)}
	for _, record := range all {
		submitted := record.SubmittedAt.UTC()
		year, month, day := submitted.Date()
		isoYear, isoWeek := submitted.ISOWeek()

		if year == nowYear && month == nowMonth && day == nowDay {
			stats.Today++
		}
		if isoYear == nowISOYear && isoWeek == nowISOWeek {
			stats.ThisWeek++
		}
		if year == nowYear && month == nowMonth {
			stats.ThisMonth++
		}
	}

	return stats
}
