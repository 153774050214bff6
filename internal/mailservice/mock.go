package mailservice

import (
	"bytes"
	"sync"

	"github.com/go-mail/mail/v2"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/mock"

	"github.com/atelierlumen/studio-api/internal/common"
)

type MockTemplate struct {
	mock.Mock
}

func (m *MockTemplate) ParseTemplate(name string, enquiry EnquiryMessage) (*bytes.Buffer, *bytes.Buffer, *bytes.Buffer, error) {
	args := m.Called(name, enquiry)
	return args.Get(0).(*bytes.Buffer), args.Get(1).(*bytes.Buffer), args.Get(2).(*bytes.Buffer), args.Error(3)
}

type MockDialer struct {
	mock.Mock
}

func (d *MockDialer) DialAndSend(m ...*mail.Message) error {
	args := d.Called(m)
	return args.Error(0)
}

// MockMailer records the last delivery. The consumer runs in its own
// goroutine, so access is guarded.
type MockMailer struct {
	mu        sync.Mutex
	called    bool
	recipient string
	enquiry   EnquiryMessage
}

func (m *MockMailer) send(recipient string, enquiry EnquiryMessage, templateFile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.called = true
	m.recipient = recipient
	m.enquiry = enquiry
	return nil
}

func (m *MockMailer) IsCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.called
}

func (m *MockMailer) Recipient() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recipient
}

func (m *MockMailer) Enquiry() EnquiryMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enquiry
}

type MockMessageConsumer struct {
	mock.Mock
}

func (m *MockMessageConsumer) Consume(key common.BindingKey, exchange common.Exchange, queue common.Queue) (<-chan amqp.Delivery, error) {
	msgsChan := make(chan amqp.Delivery)

	go func() {
		defer close(msgsChan)

		mockMessage := `{"Name": "Claire Fontaine", "Email": "claire@example.com", "Subject": "Project enquiry", "Message": "We need a new site."}`
		mockDelivery := amqp.Delivery{Body: []byte(mockMessage)}
		msgsChan <- mockDelivery
	}()

	return msgsChan, nil
}
