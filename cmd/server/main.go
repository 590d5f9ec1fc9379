package main

import (
	"context"
	"fmt"

	"github.com/alexedwards/scs/v2"

	"github.com/inkdesk/inkdesk/internal/auth"
	"github.com/inkdesk/inkdesk/internal/config"
	"github.com/inkdesk/inkdesk/internal/crypto"
	"github.com/inkdesk/inkdesk/internal/handler"
	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/internal/notifier"
	"github.com/inkdesk/inkdesk/internal/server"
	"github.com/inkdesk/inkdesk/internal/service"
	"github.com/inkdesk/inkdesk/internal/store"
	"github.com/inkdesk/inkdesk/internal/validators"
	"github.com/inkdesk/inkdesk/migrations"
	"github.com/inkdesk/inkdesk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("inkdesk-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	box, err := crypto.NewBox(cfg.App.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing field encryption")
	}

	verifier := validators.NewRecaptchaVerifier(cfg.App.RecaptchaSecret, log)
	validator := validators.NewInquiryValidator(verifier, log)

	mailer, err := notifier.NewMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing mail notifier")
	}

	repository := store.NewInquiryRepository(db, log)
	inquiryService := service.NewInquiryService(validator, box, repository, mailer, cfg.App, log)

	guard := auth.NewGuard(auth.NewAttemptStore(), adminAccounts(cfg.App), cfg.App, log)
	sessions := auth.NewSessionPolicy(scs.New(), cfg.App.SessionIdleTimeout, log)

	handlers := handler.NewHandlers(inquiryService, guard, sessions, verifier, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// adminAccounts assembles the fixed allow-list from configuration. The list
// never grows beyond two entries.
func adminAccounts(cfg config.App) []models.AdminAccount {
	accounts := []models.AdminAccount{
		{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash},
	}
	if cfg.SecondAdminUsername != "" {
		accounts = append(accounts, models.AdminAccount{
			Username:     cfg.SecondAdminUsername,
			PasswordHash: cfg.SecondAdminPasswordHash,
		})
	}
	return accounts
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
