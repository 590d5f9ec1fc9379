package models

import "time"

// Inquiry represents a single tattoo inquiry as stored at the persistence
// layer. The four contact fields hold ciphertext only; plaintext contact
// data must never reach this struct on the storage path.
type Inquiry struct {
	// InquiryID is the store-assigned identifier of the record.
	InquiryID int64 `json:"inquiry_id"`

	// EncryptedName is the AES-256-GCM ciphertext of the client's full name.
	EncryptedName string `json:"-"`

	// EncryptedAge is the ciphertext of the client's age.
	EncryptedAge string `json:"-"`

	// EncryptedEmail is the ciphertext of the client's email address.
	EncryptedEmail string `json:"-"`

	// EncryptedPhone is the ciphertext of the client's phone number.
	EncryptedPhone string `json:"-"`

	// ReferralSource is a plaintext categorical field, one of the
	// referral-source enumeration values.
	ReferralSource string `json:"referral_source"`

	// SubmittedAt is the store-assigned creation timestamp in UTC.
	SubmittedAt time.Time `json:"submitted_at"`
}

// TableName returns the name of the database table
// associated with the Inquiry model.
func (i Inquiry) TableName() string {
	return "inquiries"
}

// ValidatedInquiry is the sanitized, validated form submission produced by
// the validation layer. All fields are plaintext; encryption happens later
// in the service layer.
type ValidatedInquiry struct {
	Name           string
	Age            int
	Phone          string
	Email          string
	Placement      string
	EstimatedSize  string
	Description    string
	Style          string
	ReferralSource string

	// Attachments holds the uploaded images that passed the file checks,
	// at most two (reference image and placement image).
	Attachments []FileUpload
}

// FileUpload is a single uploaded file accepted by the validation layer.
type FileUpload struct {
	// FieldName is the form field the file arrived in.
	FieldName string

	// FileName is the client-supplied base name of the file.
	FileName string

	// ContentType is the detected MIME type of the content.
	ContentType string

	// Data is the raw file content.
	Data []byte
}
