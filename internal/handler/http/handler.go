package http

import (
	"github.com/inkdesk/inkdesk/internal/auth"
	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/internal/service"
	"github.com/inkdesk/inkdesk/internal/validators"
)

type Handler struct {
	service  service.InquiryService
	guard    *auth.Guard
	sessions *auth.SessionPolicy
	verifier validators.TokenVerifier

	logger *logger.Logger
}

func NewHandler(inquiryService service.InquiryService, guard *auth.Guard, sessions *auth.SessionPolicy, verifier validators.TokenVerifier, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		service:  inquiryService,
		guard:    guard,
		sessions: sessions,
		verifier: verifier,
		logger:   logger,
	}
}
