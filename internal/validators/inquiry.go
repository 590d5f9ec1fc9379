// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"html"
	"net/http"
	"net/mail"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/models"
)

// Form field names of the inquiry form. The front end is a fixed page, so
// the names are part of the contract.
const (
	FieldRecaptchaToken = "g-recaptcha-response"
	FieldName           = "name"
	FieldAge            = "current_age"
	FieldPhone          = "phone_number"
	FieldEmail          = "email"
	FieldPlacement      = "tattoo_placement"
	FieldEstimatedSize  = "estimated_size"
	FieldDescription    = "tattoo_description"
	FieldStyle          = "style"
	FieldReferralSource = "referral_source"

	FileFieldReferenceImage = "ref_image_input"
	FileFieldPlacementImage = "placement_image_input"
)

const (
	minAge = 18
	maxAge = 120

	// maxUploadSize is the per-file upload limit.
	maxUploadSize = 25 * 1024 * 1024
)

// AllowedStyles is the closed enumeration of tattoo styles. Matching is
// exact and case-sensitive; anything else is rejected outright.
var AllowedStyles = []string{"Portrait", "Lettering", "Traditional", "Color", "BlackGrey"}

// AllowedReferralSources is the closed enumeration of referral sources.
var AllowedReferralSources = []string{"Instagram", "Facebook", "TikTok", "Google", "Family/Friend", "Other"}

var allowedImageMIMETypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

var (
	phoneStripPattern = regexp.MustCompile(`[^0-9+\-() ]`)
	phoneShapePattern = regexp.MustCompile(`^[0-9+\-() ]{7,20}$`)
)

// inquiryValidator is the private implementation of [InquiryValidator].
type inquiryValidator struct {
	verifier TokenVerifier
	logger   *logger.Logger
}

// NewInquiryValidator constructs an [InquiryValidator] that checks the
// human-verification token through verifier before examining any field.
func NewInquiryValidator(verifier TokenVerifier, logger *logger.Logger) InquiryValidator {
	return &inquiryValidator{
		verifier: verifier,
		logger:   logger,
	}
}

// Validate implements [InquiryValidator].
//
// The human-verification check runs first and returns alone when it fails;
// there is no point reporting field problems to a caller that has not
// proven to be human. All remaining checks accumulate: field errors, enum
// errors, and per-file upload errors are gathered into one slice so the
// submitter can fix everything in a single pass.
func (v *inquiryValidator) Validate(ctx context.Context, clientAddr string, fields map[string]string, files []models.FileUpload) (models.ValidatedInquiry, []error) {
	log := logger.FromContext(ctx)

	token := fields[FieldRecaptchaToken]
	if token == "" {
		return models.ValidatedInquiry{}, []error{ErrRecaptchaMissing}
	}
	if !v.verifier.Verify(ctx, token, clientAddr) {
		log.Warn().Str("client_addr", clientAddr).Msg("recaptcha verification failed")
		return models.ValidatedInquiry{}, []error{ErrRecaptchaFailed}
	}

	var errs []error

	inquiry := models.ValidatedInquiry{
		Name:          sanitizeText(fields[FieldName]),
		Placement:     sanitizeText(fields[FieldPlacement]),
		EstimatedSize: sanitizeText(fields[FieldEstimatedSize]),
		Description:   sanitizeText(fields[FieldDescription]),
	}

	age, ageOK := parseAge(fields[FieldAge])
	if !ageOK {
		errs = append(errs, ErrInvalidAge)
	}
	inquiry.Age = age

	phone := phoneStripPattern.ReplaceAllString(fields[FieldPhone], "")
	if !phoneShapePattern.MatchString(phone) {
		errs = append(errs, ErrInvalidPhone)
		phone = ""
	}
	inquiry.Phone = phone

	email := strings.TrimSpace(fields[FieldEmail])
	if !isValidEmail(email) {
		errs = append(errs, ErrInvalidEmail)
		email = ""
	}
	inquiry.Email = email

	style := strings.TrimSpace(fields[FieldStyle])
	if !contains(AllowedStyles, style) {
		errs = append(errs, ErrInvalidStyle)
		style = ""
	}
	inquiry.Style = style

	referral := strings.TrimSpace(fields[FieldReferralSource])
	if !contains(AllowedReferralSources, referral) {
		errs = append(errs, ErrInvalidReferralSource)
		referral = ""
	}
	inquiry.ReferralSource = referral

	if inquiry.Name == "" || !ageOK || inquiry.Phone == "" || inquiry.Email == "" ||
		inquiry.EstimatedSize == "" || inquiry.Style == "" {
		errs = append(errs, ErrMissingRequiredFields)
	}

	// files are validated independently; a bad reference image never
	// blocks a good placement image
	for _, file := range files {
		accepted, fileErr := validateUpload(file)
		if fileErr != nil {
			log.Warn().
				Str("field", file.FieldName).
				Str("file", file.FileName).
				Err(fileErr).
				Msg("upload rejected")
			errs = append(errs, fileErr)
			continue
		}
		inquiry.Attachments = append(inquiry.Attachments, accepted)
	}

	if len(errs) > 0 {
		return models.ValidatedInquiry{}, errs
	}

	return inquiry, nil
}

// sanitizeText trims the value, drops control characters (including NUL),
// and escapes markup so nothing executable survives into storage or mail.
func sanitizeText(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, s)

	return html.EscapeString(strings.TrimSpace(cleaned))
}

// parseAge parses and range-checks the age field. Out-of-range values are
// rejected, never clamped.
func parseAge(raw string) (int, bool) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	if age < minAge || age > maxAge {
		return 0, false
	}
	return age, true
}

// isValidEmail reports whether raw is a syntactically valid bare address.
func isValidEmail(raw string) bool {
	if raw == "" {
		return false
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return false
	}

	// reject "Display Name <user@host>" forms; the field is a bare address
	return addr.Address == raw
}

// validateUpload checks a single uploaded file against the image allow-list
// and the size limit. Both the content-sniffed MIME type and the file
// extension must be acceptable; the client-declared type is ignored. On
// success the returned copy carries the detected type.
func validateUpload(file models.FileUpload) (models.FileUpload, error) {
	ext := strings.ToLower(filepath.Ext(file.FileName))
	if !contains(allowedImageExtensions, ext) {
		return models.FileUpload{}, ErrInvalidFileType
	}

	contentType := http.DetectContentType(file.Data)
	if !contains(allowedImageMIMETypes, contentType) {
		return models.FileUpload{}, ErrInvalidFileType
	}

	if len(file.Data) > maxUploadSize {
		return models.FileUpload{}, ErrFileTooLarge
	}

	file.ContentType = contentType
	return file, nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
