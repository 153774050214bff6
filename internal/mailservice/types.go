package mailservice

import (
	"bytes"
	"context"
	"sync"

	"github.com/go-mail/mail/v2"

	"github.com/atelierlumen/studio-api/internal/common"
)

type MailService struct {
	mb        common.MessageConsumer
	m         Mailer
	logger    MailLogger
	recipient string
	ctx       context.Context
	cancel    context.CancelFunc
}

type MailLogger interface {
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// EnquiryMessage mirrors the payload the enquiry service publishes to the
// broker. Fields are exported so the email templates can reference them.
type EnquiryMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type Mail struct {
	mu     sync.Mutex
	dialer Dialer
	parser TemplateParser
	sender string
}

type Mailer interface {
	send(recipient string, enquiry EnquiryMessage, templateFile string) error
}

type Template struct{}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type TemplateParser interface {
	ParseTemplate(name string, enquiry EnquiryMessage) (*bytes.Buffer, *bytes.Buffer, *bytes.Buffer, error)
}
