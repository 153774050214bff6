package enquiryservice

import (
	"context"
	"encoding/json"

	"github.com/atelierlumen/studio-api/internal/common"
)

func NewEnquiryService(mb common.MessageProducer) *EnquiryService {
	return &EnquiryService{mb: mb}
}

// SubmitEnquiry validates a contact-form submission and publishes it to the
// enquiry exchange. Delivery to the studio inbox is the mail consumer's job.
func (s *EnquiryService) SubmitEnquiry(ctx context.Context, e *Enquiry) error {
	v := common.NewValidator()
	validateEnquiry(v, e)
	if !v.Valid() {
		return v.ValidationError()
	}

	msg, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return s.mb.Publish(ctx, msg, common.EnquiryReceivedKey, common.EnquiryExchange)
}
