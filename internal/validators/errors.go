package validators

import "errors"

var (
	ErrRecaptchaMissing = errors.New("please complete the reCAPTCHA verification")
	ErrRecaptchaFailed  = errors.New("reCAPTCHA verification failed, please try again")

	ErrInvalidAge            = errors.New("age must be a whole number between 18 and 120")
	ErrInvalidPhone          = errors.New("invalid phone number format")
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrInvalidStyle          = errors.New("invalid tattoo style selected")
	ErrInvalidReferralSource = errors.New("invalid referral source selected")
	ErrMissingRequiredFields = errors.New("invalid input, please fill out all required fields")

	ErrInvalidFileType = errors.New("invalid file type for upload")
	ErrFileTooLarge    = errors.New("file too large, maximum allowed size is 25MB")
)
