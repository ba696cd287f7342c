// Package mailer delivers contact-form messages over an authenticated SMTP
// relay. All mail goes to the single configured blog owner address.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"inkwell/config"
	"inkwell/constants"
)

type Mailer struct {
	cfg config.EmailConfig
}

func New(cfg config.EmailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers a message to the fixed recipient. Errors are returned to the
// caller untouched; the contact route surfaces them as a server error rather
// than retrying.
func (m *Mailer) Send(subject, body string) error {
	host, addr := m.cfg.Host, m.cfg.Host
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	} else {
		addr += ":587"
	}

	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		constants.CONTACT_RECIPIENT, subject, body))

	auth := smtp.PlainAuth("", m.cfg.FromEmail, m.cfg.Password, host)
	return smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{constants.CONTACT_RECIPIENT}, msg)
}
