package notifier

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/inkdesk/inkdesk/internal/config"
	"github.com/inkdesk/inkdesk/internal/logger"
)

// Mailer is the SMTP-backed implementation of [Notifier]. Every notice
// becomes one multipart message with an HTML body, a plain-text alternative,
// and the submitted images as attachments.
//
// There are no retries. A lost notification is recoverable: the record is in
// the database, and the submitter is free to resubmit.
type Mailer struct {
	client *mail.Client
	cfg    config.Mail
	logger *logger.Logger
}

// NewMailer constructs a [Mailer] from SMTP settings. Authentication is
// enabled only when a username is configured.
func NewMailer(cfg config.Mail, log *logger.Logger) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.SendTimeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewMailer").Msg("error creating smtp client")
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	return &Mailer{
		client: client,
		cfg:    cfg,
		logger: log,
	}, nil
}

// NotifyNewInquiry builds and sends the owner notification for notice.
func (m *Mailer) NotifyNewInquiry(ctx context.Context, notice Notice) error {
	log := logger.FromContext(ctx)

	msg, err := m.buildMessage(notice)
	if err != nil {
		log.Err(err).Str("func", "*Mailer.NotifyNewInquiry").Msg("error building notification message")
		return fmt.Errorf("error building notification message: %w", err)
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Err(err).Str("func", "*Mailer.NotifyNewInquiry").Msg("error sending notification")
		return fmt.Errorf("error sending notification: %w", err)
	}

	log.Info().Int64("inquiry_id", notice.InquiryID).Bool("saved", notice.Saved).Msg("inquiry notification sent")
	return nil
}

func (m *Mailer) buildMessage(notice Notice) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.FromFormat(m.cfg.SenderName, m.cfg.SenderEmail); err != nil {
		return nil, err
	}
	if err := msg.AddToFormat(m.cfg.RecipientName, m.cfg.RecipientEmail); err != nil {
		return nil, err
	}
	if m.cfg.ReplyToEmail != "" {
		if err := msg.ReplyToFormat(m.cfg.ReplyToName, m.cfg.ReplyToEmail); err != nil {
			return nil, err
		}
	}

	msg.Subject(subject(notice))
	msg.SetBodyString(mail.TypeTextPlain, buildTextBody(notice))
	msg.AddAlternativeString(mail.TypeTextHTML, buildHTMLBody(notice))

	for _, attachment := range notice.Attachments {
		if err := msg.AttachReader(attachment.FileName, bytes.NewReader(attachment.Data)); err != nil {
			return nil, err
		}
	}

	return msg, nil
}
