package mailservice

import (
	"time"

	"github.com/go-mail/mail/v2"
)

// NewMailer builds the SMTP mailer the enquiry consumer sends through. The
// dialer timeout is short on purpose: a slow SMTP host should trip the
// consumer's retry loop rather than stall it.
func NewMailer(host string, port int, username, password, sender string, tp *Template) *Mail {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second

	return &Mail{
		dialer: dialer,
		sender: sender,
		parser: tp,
	}
}

// send renders the enquiry into the named template and delivers it to the
// studio inbox. Serialized because the consumer may retry concurrently with
// the next delivery.
func (m *Mail) send(recipient string, enquiry EnquiryMessage, templateFile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	subject, plainBody, htmlBody, err := m.parser.ParseTemplate(templateFile, enquiry)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/plain", plainBody.String())
	msg.AddAlternative("text/html", htmlBody.String())

	err = m.dialer.DialAndSend(msg)
	if err != nil {
		return err
	}

	return nil
}
