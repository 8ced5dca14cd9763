package auth

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt limit
	maxEmailLen    = 254
	maxNameLen     = 200
)

var cnicPattern = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)

// RegisterInput holds the business registration form.
type RegisterInput struct {
	Email              string
	Password           string
	FullName           string
	CNICNumber         string
	BusinessName       string
	BusinessType       string
	BusinessAddress    string
	Phone              string
	NTNNumber          *string
	CNICPhotoURL       *string
	BusinessLicenseURL *string
}

func (i *RegisterInput) normalize() {
	i.Email = domain.NormalizeEmail(i.Email)
	i.FullName = domain.CollapseSpaces(i.FullName)
	i.CNICNumber = strings.TrimSpace(i.CNICNumber)
	i.BusinessName = domain.CollapseSpaces(i.BusinessName)
	i.BusinessType = domain.CollapseSpaces(i.BusinessType)
	i.BusinessAddress = strings.TrimSpace(i.BusinessAddress)
	i.Phone = strings.TrimSpace(i.Phone)
	i.NTNNumber = trimOptional(i.NTNNumber)
	i.CNICPhotoURL = trimOptional(i.CNICPhotoURL)
	i.BusinessLicenseURL = trimOptional(i.BusinessLicenseURL)
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	errs = append(errs, validateNewPassword("password", i.Password)...)

	errs = append(errs, requiredText("full_name", i.FullName, maxNameLen)...)
	errs = append(errs, requiredText("business_name", i.BusinessName, maxNameLen)...)
	errs = append(errs, requiredText("business_type", i.BusinessType, maxNameLen)...)
	errs = append(errs, requiredText("business_address", i.BusinessAddress, 500)...)

	if i.CNICNumber == "" {
		errs = append(errs, domain.FieldError{Field: "cnic_number", Message: "required"})
	} else if !cnicPattern.MatchString(i.CNICNumber) {
		errs = append(errs, domain.FieldError{Field: "cnic_number", Message: "must look like 12345-1234567-1"})
	}

	if i.Phone == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	} else if len(i.Phone) > 20 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	return domain.JoinFieldErrors(errs)
}

// LoginPasswordInput holds parameters for email + password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	return domain.JoinFieldErrors(errs)
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	return domain.JoinFieldErrors(errs)
}

// ChangePasswordInput holds the settings-page password change form.
type ChangePasswordInput struct {
	Current string
	New     string
}

// Validate validates the password change input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Current == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	} else if len(i.Current) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "too long"})
	}
	errs = append(errs, validateNewPassword("new_password", i.New)...)
	if i.New != "" && i.New == i.Current {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "must differ from the current password"})
	}

	return domain.JoinFieldErrors(errs)
}

// validateNewPassword applies the 8..72 byte rule; bcrypt ignores bytes past 72.
func validateNewPassword(field, password string) []domain.FieldError {
	switch {
	case password == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case len(password) < minPasswordLen:
		return []domain.FieldError{{Field: field, Message: "must be at least 8 characters"}}
	case len(password) > maxPasswordLen:
		return []domain.FieldError{{Field: field, Message: "must be at most 72 bytes"}}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case len(email) > maxEmailLen:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid format"}}
	}
	return nil
}

func requiredText(field, value string, maxLen int) []domain.FieldError {
	if value == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if len(value) > maxLen {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
