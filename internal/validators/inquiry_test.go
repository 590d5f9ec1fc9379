// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/models"
)

// stubVerifier is a TokenVerifier test double with a fixed verdict.
type stubVerifier struct {
	verdict bool
	called  bool
}

func (s *stubVerifier) Verify(_ context.Context, _, _ string) bool {
	s.called = true
	return s.verdict
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n" + "rest-of-image")
var jpegHeader = []byte("\xff\xd8\xff\xe0" + "rest-of-image")

func validFields() map[string]string {
	return map[string]string{
		FieldRecaptchaToken: "token-123",
		FieldName:           "  John Doe  ",
		FieldAge:            "27",
		FieldPhone:          "(555) 123-4567",
		FieldEmail:          "john.doe@example.com",
		FieldPlacement:      "left forearm",
		FieldEstimatedSize:  "4x6",
		FieldDescription:    "a small fern",
		FieldStyle:          "Traditional",
		FieldReferralSource: "Instagram",
	}
}

func newTestValidator(verdict bool) (*stubVerifier, InquiryValidator) {
	verifier := &stubVerifier{verdict: verdict}
	return verifier, NewInquiryValidator(verifier, logger.Nop())
}

func TestValidate_Success(t *testing.T) {
	_, v := newTestValidator(true)

	inquiry, errs := v.Validate(context.Background(), "203.0.113.7", validFields(), nil)
	require.Empty(t, errs)

	assert.Equal(t, "John Doe", inquiry.Name)
	assert.Equal(t, 27, inquiry.Age)
	assert.Equal(t, "(555) 123-4567", inquiry.Phone)
	assert.Equal(t, "john.doe@example.com", inquiry.Email)
	assert.Equal(t, "Traditional", inquiry.Style)
	assert.Equal(t, "Instagram", inquiry.ReferralSource)
	assert.Empty(t, inquiry.Attachments)
}

func TestValidate_RecaptchaMissingToken(t *testing.T) {
	verifier, v := newTestValidator(true)

	fields := validFields()
	fields[FieldRecaptchaToken] = ""

	_, errs := v.Validate(context.Background(), "203.0.113.7", fields, nil)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrRecaptchaMissing)
	assert.False(t, verifier.called, "verifier must not be called without a token")
}

func TestValidate_RecaptchaRejected(t *testing.T) {
	_, v := newTestValidator(false)

	_, errs := v.Validate(context.Background(), "203.0.113.7", validFields(), nil)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrRecaptchaFailed)
}

func TestValidate_AgeBoundaries(t *testing.T) {
	tests := []struct {
		age    string
		wantOK bool
	}{
		{age: "17", wantOK: false},
		{age: "18", wantOK: true},
		{age: "120", wantOK: true},
		{age: "121", wantOK: false},
		{age: "abc", wantOK: false},
		{age: "", wantOK: false},
		{age: "18.5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run("age="+tt.age, func(t *testing.T) {
			_, v := newTestValidator(true)
			fields := validFields()
			fields[FieldAge] = tt.age

			_, errs := v.Validate(context.Background(), "203.0.113.7", fields, nil)
			if tt.wantOK {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
				assert.Contains(t, errs, ErrInvalidAge)
			}
		})
	}
}

func TestValidate_PhoneShapes(t *testing.T) {
	tests := []struct {
		name   string
		phone  string
		want   string
		wantOK bool
	}{
		{name: "punctuated US number", phone: "(555) 123-4567", want: "(555) 123-4567", wantOK: true},
		{name: "letters are stripped then rejected", phone: "abc", wantOK: false},
		{name: "letters mixed with digits keep digits", phone: "555abc1234567", want: "5551234567", wantOK: true},
		{name: "too short", phone: "123456", wantOK: false},
		{name: "too long", phone: "123456789012345678901", wantOK: false},
		{name: "international prefix", phone: "+1 555 123 4567", want: "+1 555 123 4567", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, v := newTestValidator(true)
			fields := validFields()
			fields[FieldPhone] = tt.phone

			inquiry, errs := v.Validate(context.Background(), "203.0.113.7", fields, nil)
			if tt.wantOK {
				require.Empty(t, errs)
				assert.Equal(t, tt.want, inquiry.Phone)
			} else {
				assert.Contains(t, errs, ErrInvalidPhone)
			}
		})
	}
}

func TestValidate_EnumFields(t *testing.T) {
	t.Run("unknown style rejected", func(t *testing.T) {
		_, v := newTestValidator(true)
		fields := validFields()
		fields[FieldStyle] = "Watercolor"

		_, errs := v.Validate(context.Background(), "203.0.113.7", fields, nil)
		assert.Contains(t, errs, ErrInvalidStyle)
	})

	t.Run("style match is case-sensitive", func(t *testing.T) {
		_, v := newTestValidator(true)
		fields := validFields()
		fields[FieldStyle] = "traditional"

		_, errs := v.Validate(context.Background(), "203.0.113.7", fields, nil)
		assert.Contains(t, errs, ErrInvalidStyle)
	})

	t.Run("unknown referral source rejected", func(t *testing.T) {
		_, v := newTestValidator(true)
		fields := validFields()
		fields[FieldReferralSource] = "Billboard"

		_, errs := v.Validate(context.Background(), "203.0.113.7", fields, nil)
		assert.Contains(t, errs, ErrInvalidReferralSource)
	})
}

func TestValidate_ErrorsAccumulate(t *testing.T) {
	_, v := newTestValidator(true)

	fields := validFields()
	fields[FieldAge] = "17"
	fields[FieldEmail] = "not-an-email"
	fields[FieldStyle] = "Watercolor"

	_, errs := v.Validate(context.Background(), "203.0.113.7", fields, nil)
	assert.Contains(t, errs, ErrInvalidAge)
	assert.Contains(t, errs, ErrInvalidEmail)
	assert.Contains(t, errs, ErrInvalidStyle)
	assert.Contains(t, errs, ErrMissingRequiredFields)
}

func TestValidate_SanitizationStripsMarkupAndControls(t *testing.T) {
	_, v := newTestValidator(true)

	fields := validFields()
	fields[FieldName] = "John <script>alert(1)</script>\x00Doe"

	inquiry, errs := v.Validate(context.Background(), "203.0.113.7", fields, nil)
	require.Empty(t, errs)

	assert.NotContains(t, inquiry.Name, "<script>")
	assert.NotContains(t, inquiry.Name, "\x00")
}

func TestValidate_EmailRejectsDisplayNameForm(t *testing.T) {
	_, v := newTestValidator(true)

	fields := validFields()
	fields[FieldEmail] = "John Doe <john@example.com>"

	_, errs := v.Validate(context.Background(), "203.0.113.7", fields, nil)
	assert.Contains(t, errs, ErrInvalidEmail)
}

func TestValidate_FileUploads(t *testing.T) {
	t.Run("two valid images accepted", func(t *testing.T) {
		_, v := newTestValidator(true)

		files := []models.FileUpload{
			{FieldName: FileFieldReferenceImage, FileName: "ref.png", Data: pngHeader},
			{FieldName: FileFieldPlacementImage, FileName: "placement.jpg", Data: jpegHeader},
		}

		inquiry, errs := v.Validate(context.Background(), "203.0.113.7", validFields(), files)
		require.Empty(t, errs)
		require.Len(t, inquiry.Attachments, 2)
		assert.Equal(t, "image/png", inquiry.Attachments[0].ContentType)
		assert.Equal(t, "image/jpeg", inquiry.Attachments[1].ContentType)
	})

	t.Run("bad extension rejected", func(t *testing.T) {
		_, v := newTestValidator(true)

		files := []models.FileUpload{
			{FieldName: FileFieldReferenceImage, FileName: "ref.exe", Data: pngHeader},
		}

		_, errs := v.Validate(context.Background(), "203.0.113.7", validFields(), files)
		assert.Contains(t, errs, ErrInvalidFileType)
	})

	t.Run("content type sniffed from bytes, not filename", func(t *testing.T) {
		_, v := newTestValidator(true)

		files := []models.FileUpload{
			{FieldName: FileFieldReferenceImage, FileName: "ref.png", Data: []byte("#!/bin/sh\nrm -rf /")},
		}

		_, errs := v.Validate(context.Background(), "203.0.113.7", validFields(), files)
		assert.Contains(t, errs, ErrInvalidFileType)
	})

	t.Run("oversized file rejected", func(t *testing.T) {
		_, v := newTestValidator(true)

		big := append(bytes.Clone(pngHeader), make([]byte, maxUploadSize)...)
		files := []models.FileUpload{
			{FieldName: FileFieldReferenceImage, FileName: "ref.png", Data: big},
		}

		_, errs := v.Validate(context.Background(), "203.0.113.7", validFields(), files)
		assert.Contains(t, errs, ErrFileTooLarge)
	})

	t.Run("one bad file does not block the other", func(t *testing.T) {
		_, v := newTestValidator(true)

		files := []models.FileUpload{
			{FieldName: FileFieldReferenceImage, FileName: "ref.exe", Data: pngHeader},
			{FieldName: FileFieldPlacementImage, FileName: "placement.jpg", Data: jpegHeader},
		}

		_, errs := v.Validate(context.Background(), "203.0.113.7", validFields(), files)
		// the submission as a whole fails, but only with the single file error
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], ErrInvalidFileType)
	})
}
