package enquiryservice

import "github.com/atelierlumen/studio-api/internal/common"

// Enquiry is the contact-form payload published to the broker. The mail
// consumer on the other side turns it into a notification email.
type Enquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type EnquiryService struct {
	mb common.MessageProducer
}
