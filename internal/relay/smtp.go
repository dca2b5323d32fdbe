package relay

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

const smtpProvider = "smtp"

// SMTPOptions configure delivery through an authenticated SMTP server.
type SMTPOptions struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP delivers submissions as plain-text mail to the site owner.
type SMTP struct {
	opts     SMTPOptions
	sendMail sendMailFunc
}

func NewSMTP(opts SMTPOptions) (*SMTP, error) {
	if opts.User == "" || opts.Pass == "" {
		return nil, &Error{Provider: smtpProvider, Err: errors.New("credentials not configured")}
	}
	if opts.Host == "" || opts.Port == "" || opts.To == "" {
		return nil, &Error{Provider: smtpProvider, Err: errors.New("host, port and recipient are required")}
	}
	return &SMTP{opts: opts, sendMail: smtp.SendMail}, nil
}

// Send composes and sends the message. net/smtp has no context support, so a
// cancelled ctx returns early and the delivery finishes in the background.
func (s *SMTP) Send(ctx context.Context, p Payload) error {
	msg := s.compose(p)
	auth := smtp.PlainAuth("", s.opts.User, s.opts.Pass, s.opts.Host)
	addr := s.opts.Host + ":" + s.opts.Port

	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(addr, auth, s.opts.User, []string{s.opts.To}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return &Error{Provider: smtpProvider, Err: err}
		}
		return nil
	case <-ctx.Done():
		return &Error{Provider: smtpProvider, Err: ctx.Err()}
	}
}

func (s *SMTP) compose(p Payload) []byte {
	name := headerSafe(p.Name)
	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Sent at: %s

---
Sent from your portfolio contact form
`, p.Name, p.Email, p.Subject, p.Time)

	return []byte("To: " + s.opts.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.opts.User + "\r\n" +
		"Reply-To: " + headerSafe(p.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
