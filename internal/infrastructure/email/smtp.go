package email

import (
	"errors"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"gymdesk/internal/domain/membership"
	"gymdesk/internal/shared/biztime"
)

var ErrEmailServiceNotConfigured = errors.New("email service not configured")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// Configured reports whether enough is set to reach an SMTP server.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port > 0 && c.FromAddress != ""
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendExpiryReminder mails one expiry notification to the member.
func (s *SMTPEmailService) SendExpiryReminder(to string, n membership.Notification) error {
	if !s.config.Configured() {
		return ErrEmailServiceNotConfigured
	}
	return s.send(s.buildExpiryReminder(to, n))
}

func (s *SMTPEmailService) buildExpiryReminder(to string, n membership.Notification) *gomail.Message {
	gym := s.config.FromName
	if gym == "" {
		gym = "Your gym"
	}
	endDate := biztime.FormatDate(n.Date)

	subject := fmt.Sprintf("%s: %s", gym, n.Title)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>Hi %s,</p>
			<p>%s</p>
			<p>Membership end date: <strong>%s</strong></p>
			<p>Visit the front desk to renew and keep training without a break.</p>
			<p>%s</p>
		</body>
		</html>
	`, html.EscapeString(n.Title), html.EscapeString(n.ClientName), html.EscapeString(n.Message),
		endDate, html.EscapeString(gym))

	plainBody := fmt.Sprintf(`
%s

Hi %s,

%s

Membership end date: %s

Visit the front desk to renew and keep training without a break.

%s
	`, n.Title, n.ClientName, n.Message, endDate, gym)

	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}

func (s *SMTPEmailService) send(m *gomail.Message) error {
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
