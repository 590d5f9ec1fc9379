package handler

import (
	"github.com/inkdesk/inkdesk/internal/auth"
	"github.com/inkdesk/inkdesk/internal/handler/http"
	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/internal/service"
	"github.com/inkdesk/inkdesk/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(inquiryService service.InquiryService, guard *auth.Guard, sessions *auth.SessionPolicy, verifier validators.TokenVerifier, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(inquiryService, guard, sessions, verifier, logger),
	}
}
