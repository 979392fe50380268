// Package email delivers tenant notifications over SMTP.
package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/lumenworks/backoffice/internal/shared/config"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/services/markdown"
)

// Sender delivers one message with a markdown body.
type Sender interface {
	Send(to, subject, markdownBody string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

func SMTPConfigFrom(cfg *config.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config   SMTPConfig
	dialer   dialer
	renderer *markdown.Renderer
}

func NewSMTPEmailService(config SMTPConfig, renderer *markdown.Renderer) *SMTPEmailService {
	return &SMTPEmailService{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}
}

func (s *SMTPEmailService) Send(to, subject, markdownBody string) error {
	m, err := s.buildMessage(to, subject, markdownBody)
	if err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPEmailService) buildMessage(to, subject, markdownBody string) (*gomail.Message, error) {
	rendered, err := s.renderer.ToHTML(markdownBody)
	if err != nil {
		return nil, fmt.Errorf("failed to render email body: %w", err)
	}
	htmlBody := fmt.Sprintf("<html><body><h2>%s</h2>%s</body></html>", html.EscapeString(subject), rendered)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", markdownBody)
	m.AddAlternative("text/html", htmlBody)
	return m, nil
}

// NoopSender is used when email delivery is disabled.
type NoopSender struct {
	logger logger.Interface
}

func NewNoopSender(logger logger.Interface) *NoopSender {
	return &NoopSender{logger: logger}
}

func (s *NoopSender) Send(to, subject, _ string) error {
	s.logger.Debugw("email disabled, message dropped", "to", to, "subject", subject)
	return nil
}
