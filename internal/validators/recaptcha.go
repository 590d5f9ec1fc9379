// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"time"

	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/internal/utils"
)

// defaultSiteVerifyURL is the verification endpoint of the anti-automation
// service.
const defaultSiteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// verifyTimeout bounds the single synchronous verification call. A slow or
// unreachable service turns into a failed verification, never a hang.
const verifyTimeout = 10 * time.Second

// siteVerifyResponse is the subset of the siteverify JSON body we consume.
type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// recaptchaVerifier is the resty-backed implementation of [TokenVerifier].
type recaptchaVerifier struct {
	client    *utils.HTTPClient
	secret    string
	verifyURL string
	logger    *logger.Logger
}

// NewRecaptchaVerifier constructs a [TokenVerifier] that calls the
// reCAPTCHA siteverify endpoint with the given secret key.
func NewRecaptchaVerifier(secret string, logger *logger.Logger) TokenVerifier {
	return newRecaptchaVerifier(secret, defaultSiteVerifyURL, logger)
}

func newRecaptchaVerifier(secret, verifyURL string, logger *logger.Logger) TokenVerifier {
	client := utils.NewHTTPClient()
	client.SetTimeout(verifyTimeout)

	return &recaptchaVerifier{
		client:    client,
		secret:    secret,
		verifyURL: verifyURL,
		logger:    logger,
	}
}

// Verify implements [TokenVerifier]. It posts the token together with the
// client address and reports the service verdict. Transport errors and
// non-success verdicts alike mean "not verified": the check fails closed
// and the caller converts that into a validation error.
func (v *recaptchaVerifier) Verify(ctx context.Context, token, clientAddr string) bool {
	log := logger.FromContext(ctx)

	var result siteVerifyResponse
	resp, err := v.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"secret":   v.secret,
			"response": token,
			"remoteip": clientAddr,
		}).
		SetResult(&result).
		Post(v.verifyURL)
	if err != nil {
		log.Err(err).Msg("recaptcha verification request failed")
		return false
	}

	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Msg("recaptcha service returned error status")
		return false
	}

	if !result.Success {
		log.Warn().Strs("error_codes", result.ErrorCodes).Msg("recaptcha verdict: not a human")
	}

	return result.Success
}
