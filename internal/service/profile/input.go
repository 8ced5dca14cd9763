package profile

import (
	"net/url"
	"strings"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// UpdateProfileInput holds the editable profile fields. Nil fields are left unchanged;
// an empty optional string clears the value.
type UpdateProfileInput struct {
	FullName           *string
	BusinessName       *string
	BusinessType       *string
	BusinessAddress    *string
	Phone              *string
	NTNNumber          *string
	CNICPhotoURL       *string
	BusinessLicenseURL *string
}

// Validate validates the update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	required := []struct {
		field string
		value *string
		max   int
	}{
		{"full_name", i.FullName, 200},
		{"business_name", i.BusinessName, 200},
		{"business_type", i.BusinessType, 200},
		{"business_address", i.BusinessAddress, 500},
		{"phone", i.Phone, 20},
	}
	for _, r := range required {
		if r.value == nil {
			continue
		}
		v := strings.TrimSpace(*r.value)
		if v == "" {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "must not be empty"})
		} else if len(v) > r.max {
			errs = append(errs, domain.FieldError{Field: r.field, Message: "too long"})
		}
	}

	if i.NTNNumber != nil && len(*i.NTNNumber) > 50 {
		errs = append(errs, domain.FieldError{Field: "ntn_number", Message: "too long"})
	}
	for field, u := range map[string]*string{
		"cnic_photo_url":       i.CNICPhotoURL,
		"business_license_url": i.BusinessLicenseURL,
	} {
		if u == nil || strings.TrimSpace(*u) == "" {
			continue
		}
		if !isHTTPURL(strings.TrimSpace(*u)) {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be an http(s) URL"})
		}
	}

	return domain.JoinFieldErrors(errs)
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
