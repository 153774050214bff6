package mailservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTemplate(t *testing.T) {
	template := &Template{}

	testCases := []struct {
		name         string
		templateName string
		enquiry      EnquiryMessage
		expectedErr  bool
	}{
		{
			name:         "success",
			templateName: "enquiry_email.html",
			enquiry: EnquiryMessage{
				Name:    "Claire Fontaine",
				Email:   "claire@example.com",
				Subject: "Project enquiry",
				Message: "We need a new site.",
			},
			expectedErr: false,
		},
		{
			name:         "invalid template name",
			templateName: "invalid_template.html",
			enquiry:      EnquiryMessage{},
			expectedErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, p, h, err := template.ParseTemplate(tc.templateName, tc.enquiry)
			assert.Equal(t, tc.expectedErr, err != nil)

			if err == nil {
				assert.NotEmpty(t, s.String())
				assert.NotEmpty(t, p.String())
				assert.NotEmpty(t, h.String())
			}
		})
	}
}
