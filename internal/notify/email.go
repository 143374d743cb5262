package notify

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// EmailSender delivers the report as a plain-text message over SMTP with
// implicit TLS (port 465 style), from and to the same configured account.
type EmailSender struct {
	User     string
	Password string
	Host     string
	Port     int
}

// NewEmailSender creates a sender for the configured account.
func NewEmailSender(user, password, host string, port int) *EmailSender {
	return &EmailSender{User: user, Password: password, Host: host, Port: port}
}

// Send connects, authenticates and sends one message. No retry: a failed
// send is reported once and the next scheduled run tries again.
func (s *EmailSender) Send(subject, body string) error {
	addr := net.JoinHostPort(s.Host, fmt.Sprintf("%d", s.Port))
	conn, err := tls.DialWithDialer(
		&net.Dialer{Timeout: 12 * time.Second},
		"tcp", addr,
		&tls.Config{ServerName: s.Host},
	)
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer c.Close()

	if err := c.Auth(smtp.PlainAuth("", s.User, s.Password, s.Host)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := c.Mail(s.User); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := c.Rcpt(s.User); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(Message(s.User, s.User, subject, body))); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}
	return c.Quit()
}

// Message assembles an RFC 5322 plain-text message with CRLF line endings.
func Message(from, to, subject, body string) string {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return b.String()
}
