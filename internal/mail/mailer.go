// Package mail is the transactional email capability.
package mail

import (
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer relays through a plain SMTP endpoint.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

// ConsoleMailer logs instead of sending, for dev environments without SMTP.
type ConsoleMailer struct{ log *zap.Logger }

func NewConsole(log *zap.Logger) *ConsoleMailer {
	return &ConsoleMailer{log: log}
}

func (m *ConsoleMailer) Send(to, subject, htmlBody string) error {
	m.log.Info("mail (console)", zap.String("to", to), zap.String("subject", subject))
	return nil
}
