package enquiryservice

import "github.com/atelierlumen/studio-api/internal/common"

func validateEnquiry(v *common.Validator, e *Enquiry) {
	v.Check(e.Name != "", "name", "must be provided")
	v.Check(v.CheckStringLength(e.Name, 1, 100), "name", "must not be more than 100 characters long")
	v.Check(e.Email != "", "email", "must be provided")
	v.Check(v.CheckEmail(e.Email), "email", "must be a valid email address")
	v.Check(e.Message != "", "message", "must be provided")
	v.Check(v.CheckStringLength(e.Message, 1, 5000), "message", "must not be more than 5000 characters long")
}
