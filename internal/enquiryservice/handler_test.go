package enquiryservice

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelierlumen/studio-api/internal/common"
)

type mockProducer struct {
	published [][]byte
	key       common.BindingKey
	exchange  common.Exchange
}

func (m *mockProducer) Publish(ctx context.Context, msg []byte, key common.BindingKey, exchange common.Exchange) error {
	m.published = append(m.published, msg)
	m.key = key
	m.exchange = exchange
	return nil
}

func TestSubmitEnquiry(t *testing.T) {
	testCases := []struct {
		name        string
		enquiry     *Enquiry
		expectedErr error
	}{
		{
			name: "valid enquiry",
			enquiry: &Enquiry{
				Name:    "Claire Fontaine",
				Email:   "claire@example.com",
				Subject: "Project enquiry",
				Message: "We need a new site.",
			},
			expectedErr: nil,
		},
		{
			name: "missing name",
			enquiry: &Enquiry{
				Email:   "claire@example.com",
				Message: "Hello.",
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"name": "must be provided"}},
		},
		{
			name: "invalid email",
			enquiry: &Enquiry{
				Name:    "Claire Fontaine",
				Email:   "not-an-email",
				Message: "Hello.",
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"email": "must be a valid email address"}},
		},
		{
			name: "missing message",
			enquiry: &Enquiry{
				Name:  "Claire Fontaine",
				Email: "claire@example.com",
			},
			expectedErr: common.ValidationError{Errors: map[string]string{"message": "must be provided"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			mb := &mockProducer{}
			s := NewEnquiryService(mb)

			err := s.SubmitEnquiry(ctx, tc.enquiry)
			assert.Equal(t, tc.expectedErr, err)

			if err == nil {
				assert.Len(t, mb.published, 1)
				assert.Equal(t, common.EnquiryReceivedKey, mb.key)
				assert.Equal(t, common.EnquiryExchange, mb.exchange)

				var got Enquiry
				assert.NoError(t, json.Unmarshal(mb.published[0], &got))
				assert.Equal(t, *tc.enquiry, got)
			}
		})
	}
}
