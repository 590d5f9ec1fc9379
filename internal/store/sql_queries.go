package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/inkdesk/inkdesk/models"
)

var inquiryColumns = []string{
	"inquiry_id",
	"encrypted_name",
	"encrypted_age",
	"encrypted_email",
	"encrypted_phone",
	"referral_source",
	"submitted_at",
}

// psql is the statement builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertInquiry builds the INSERT for a new inquiry record. The database
// assigns inquiry_id and submitted_at; all columns are returned so the caller
// receives the canonical stored representation.
func buildInsertInquiry(inquiry models.Inquiry) (string, []any, error) {
	return psql.
		Insert(inquiry.TableName()).
		Columns("encrypted_name", "encrypted_age", "encrypted_email", "encrypted_phone", "referral_source").
		Values(inquiry.EncryptedName, inquiry.EncryptedAge, inquiry.EncryptedEmail, inquiry.EncryptedPhone, inquiry.ReferralSource).
		Suffix("RETURNING " + strings.Join(inquiryColumns, ", ")).
		ToSql()
}

// buildSelectAllInquiries builds the SELECT for every stored inquiry, newest
// first.
func buildSelectAllInquiries() (string, []any, error) {
	return psql.
		Select(inquiryColumns...).
		From(models.Inquiry{}.TableName()).
		OrderBy("submitted_at DESC", "inquiry_id DESC").
		ToSql()
}
