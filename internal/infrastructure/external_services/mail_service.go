package external_services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

// smtp attribute
type EmailService struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// EmailService factory
func NewEmailService(host, port, username, appPassword, from string) *EmailService {
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
		send:        smtp.SendMail,
	}
}

// make sure EmailService implements contract.IEmailService.go
var _ contract.IEmailService = (*EmailService)(nil)

func buildMessage(from, to, subject, body string) []byte {
	return []byte(
		fmt.Sprintf(
			"To: %s\r\n"+
				"From: %s\r\n"+
				"Subject: %s\r\n"+
				"MIME-Version: 1.0\r\n"+
				"Content-Type: text/plain; charset=\"UTF-8\"\r\n"+
				"\r\n"+
				"%s\r\n",
			to, from, sanitizeHeader(subject), body,
		),
	)
}

// sanitizeHeader keeps user-influenced text from injecting extra headers.
func sanitizeHeader(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// SendEmail delivers a plain-text message. net/smtp has no context support, so ctx is only
// checked before dialing.
func (es *EmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := buildMessage(es.From, to, subject, body)
	var auth smtp.Auth
	if es.Username != "" {
		auth = smtp.PlainAuth("", es.Username, es.AppPassword, es.Host)
	}
	addr := fmt.Sprintf("%s:%s", es.Host, es.Port)
	if err := es.send(addr, auth, es.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}

// LogEmailService writes outgoing mail to the application log. Used when SMTP is not configured.
type LogEmailService struct {
	logger usecasecontract.IAppLogger
}

var _ contract.IEmailService = (*LogEmailService)(nil)

func NewLogEmailService(logger usecasecontract.IAppLogger) *LogEmailService {
	return &LogEmailService{logger: logger}
}

func (s *LogEmailService) SendEmail(_ context.Context, to, subject, _ string) error {
	s.logger.Infof("email not sent (smtp disabled): to=%s subject=%q", to, subject)
	return nil
}
