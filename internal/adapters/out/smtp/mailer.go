// Package smtp sends outbound mail over SMTP.
package smtp

import (
	"time"

	"gopkg.in/mail.v2"
)

const dialTimeout = 20 * time.Second

// Mailer implements the Mailer port on top of an SMTP server. Messages are
// plain text. Delivery is synchronous; callers decide whether a failure is
// fatal.
type Mailer struct {
	host string
	port int
	from string
	user string
	pass string
}

// NewMailer creates a mailer for the given SMTP server. The from address is
// used as the envelope sender on every message.
func NewMailer(host string, port int, from, user, pass string) *Mailer {
	return &Mailer{
		host: host,
		port: port,
		from: from,
		user: user,
		pass: pass,
	}
}

// Send delivers a single plain-text message.
func (m *Mailer) Send(to, subject, body string) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := mail.NewDialer(m.host, m.port, m.user, m.pass)
	d.Timeout = dialTimeout

	return d.DialAndSend(msg)
}
