package mailer

import (
	"context"
	"fmt"

	"github.com/ritesh23s/task-manager/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers mail through an SMTP relay via gomail.
type SMTPMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		log:    log.With(zap.String("mailer", "smtp")),
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, body, err := render(msg)
	if err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", message.FormatAddress(m.config.From, "Task Manager"))
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.User, m.config.Password)

	if err := dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("send %s mail to %s: %w", msg.Kind, msg.To, err)
	}

	m.log.Info("Mail sent",
		zap.String("kind", string(msg.Kind)),
		zap.String("to", msg.To),
	)

	return nil
}

// LogMailer writes the mail to the log instead of delivering it. Used
// when no SMTP relay is configured (local development).
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{
		log: log.With(zap.String("mailer", "log")),
	}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	subject, body, err := render(msg)
	if err != nil {
		return err
	}

	m.log.Info("Mail (not delivered, no SMTP configured)",
		zap.String("kind", string(msg.Kind)),
		zap.String("to", msg.To),
		zap.String("subject", subject),
		zap.String("body", body),
	)

	return nil
}
