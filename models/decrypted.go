package models

import "time"

// DecryptionPlaceholder is shown in place of a field whose ciphertext could
// not be authenticated or decoded. The attempted plaintext is never exposed.
const DecryptionPlaceholder = "[decryption error]"

// DecryptedField is the tagged result of decrypting one stored field.
// A failed field degrades to a placeholder instead of aborting its siblings.
type DecryptedField struct {
	Value string `json:"value"`
	OK    bool   `json:"ok"`
}

// OkField wraps a successfully decrypted value.
func OkField(value string) DecryptedField {
	return DecryptedField{Value: value, OK: true}
}

// FailedField returns the placeholder variant for a field that failed to
// decrypt.
func FailedField() DecryptedField {
	return DecryptedField{Value: DecryptionPlaceholder, OK: false}
}

// DecryptedInquiry is one inquiry prepared for dashboard display: every
// sensitive field decrypted independently, with per-field degradation.
type DecryptedInquiry struct {
	InquiryID      int64          `json:"inquiry_id"`
	Name           DecryptedField `json:"name"`
	Age            DecryptedField `json:"age"`
	Email          DecryptedField `json:"email"`
	Phone          DecryptedField `json:"phone"`
	ReferralSource string         `json:"referral_source"`
	SubmittedAt    time.Time      `json:"submitted_at"`
}

// InquiryPage is one page of the decrypted dashboard listing, newest first.
type InquiryPage struct {
	Inquiries []DecryptedInquiry `json:"inquiries"`

	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`

	Stats InquiryStats `json:"stats"`
}

// InquiryStats aggregates submission counts shown on the dashboard header.
// Counts are computed over submission timestamps in UTC.
type InquiryStats struct {
	Total     int `json:"total"`
	Today     int `json:"today"`
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`
}
