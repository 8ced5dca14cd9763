package messaging

import (
	"strings"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

// SendInput holds a buyer's enquiry about a listing.
type SendInput struct {
	ListingID     uuid.UUID
	Text          string
	ContactMethod domain.ContactMethod
}

func (i *SendInput) normalize() {
	i.Text = strings.TrimSpace(i.Text)
	if i.ContactMethod == "" {
		i.ContactMethod = domain.ContactMethodMessage
	}
}

// Validate validates the send input.
func (i SendInput) Validate() error {
	var errs []domain.FieldError

	if i.ListingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "listing_id", Message: "required"})
	}
	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	} else if len(i.Text) > maxBodyLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}
	if !i.ContactMethod.IsValid() {
		errs = append(errs, domain.FieldError{Field: "contact_method", Message: "must be message, call or whatsapp"})
	}

	return domain.JoinFieldErrors(errs)
}
