package smtp

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/go-auth-nosql/internal/config"
)

// Mailer sends the account-lifecycle notification emails.
type Mailer interface {
	SendVerificationEmail(to, code string) error
	SendWelcomeEmail(to, name string) error
	SendPasswordResetEmail(to, resetURL string) error
	SendResetSuccessEmail(to string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendVerificationEmail(to, code string) error {
	body, err := renderVerification(code)
	if err != nil {
		return err
	}
	return m.send(to, "Verify your email", body)
}

func (m *mailer) SendWelcomeEmail(to, name string) error {
	body, err := renderWelcome(name)
	if err != nil {
		return err
	}
	return m.send(to, "Welcome aboard", body)
}

func (m *mailer) SendPasswordResetEmail(to, resetURL string) error {
	body, err := renderResetRequest(resetURL)
	if err != nil {
		return err
	}
	return m.send(to, "Reset your password", body)
}

func (m *mailer) SendResetSuccessEmail(to string) error {
	body, err := renderResetSuccess()
	if err != nil {
		return err
	}
	return m.send(to, "Password Reset Successful", body)
}

func (m *mailer) send(to, subject, htmlBody string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String()))
}
