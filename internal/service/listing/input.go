package listing

import (
	"net/url"
	"strings"

	"github.com/saudaghar/marketplace-backend/internal/domain"
)

const (
	maxMaterialNameLen = 200
	maxDescriptionLen  = 5000
	maxQuantityLen     = 100
	maxLocationLen     = 300
	maxCityLen         = 100
	maxImageURLLen     = 2048
)

// CreateInput holds the listing form.
type CreateInput struct {
	MaterialName       string
	Category           domain.Category
	Condition          domain.Condition
	Quantity           string
	Price              *float64
	IsExchangeOnly     bool
	Location           string
	City               string
	Description        string
	Images             []string
	ContactPreferences *domain.ContactPreferences
	ListingType        domain.ListingType
}

func (i *CreateInput) normalize() {
	i.MaterialName = domain.CollapseSpaces(i.MaterialName)
	i.Quantity = strings.TrimSpace(i.Quantity)
	i.Location = domain.CollapseSpaces(i.Location)
	i.City = domain.NormalizeCity(i.City)
	i.Description = strings.TrimSpace(i.Description)
	if i.ListingType == "" {
		i.ListingType = domain.ListingTypeSell
	}
}

// Validate validates the create input.
func (i CreateInput) Validate(maxImages int) error {
	var errs []domain.FieldError

	errs = append(errs, checkText("material_name", i.MaterialName, maxMaterialNameLen, true)...)
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if !i.Condition.IsValid() {
		errs = append(errs, domain.FieldError{Field: "condition", Message: "unknown condition"})
	}
	errs = append(errs, checkText("quantity", i.Quantity, maxQuantityLen, true)...)
	errs = append(errs, checkPrice(i.Price)...)
	errs = append(errs, checkText("location", i.Location, maxLocationLen, true)...)
	errs = append(errs, checkText("city", i.City, maxCityLen, true)...)
	errs = append(errs, checkText("description", i.Description, maxDescriptionLen, false)...)
	errs = append(errs, checkImages(i.Images, maxImages)...)
	if !i.ListingType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "listing_type", Message: "must be Buy, Sell or Exchange"})
	}

	return domain.JoinFieldErrors(errs)
}

// UpdateInput holds a partial listing update. Nil fields are left unchanged.
type UpdateInput struct {
	MaterialName       *string
	Category           *domain.Category
	Condition          *domain.Condition
	Quantity           *string
	Price              *float64
	ClearPrice         bool
	IsExchangeOnly     *bool
	Location           *string
	City               *string
	Description        *string
	Images             []string
	ContactPreferences *domain.ContactPreferences
	ListingType        *domain.ListingType
}

// Validate validates the update input.
func (i UpdateInput) Validate(maxImages int) error {
	var errs []domain.FieldError

	if i.MaterialName != nil {
		errs = append(errs, checkText("material_name", domain.CollapseSpaces(*i.MaterialName), maxMaterialNameLen, true)...)
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Condition != nil && !i.Condition.IsValid() {
		errs = append(errs, domain.FieldError{Field: "condition", Message: "unknown condition"})
	}
	if i.Quantity != nil {
		errs = append(errs, checkText("quantity", strings.TrimSpace(*i.Quantity), maxQuantityLen, true)...)
	}
	errs = append(errs, checkPrice(i.Price)...)
	if i.Location != nil {
		errs = append(errs, checkText("location", domain.CollapseSpaces(*i.Location), maxLocationLen, true)...)
	}
	if i.City != nil {
		errs = append(errs, checkText("city", domain.NormalizeCity(*i.City), maxCityLen, true)...)
	}
	if i.Description != nil {
		errs = append(errs, checkText("description", strings.TrimSpace(*i.Description), maxDescriptionLen, false)...)
	}
	errs = append(errs, checkImages(i.Images, maxImages)...)
	if i.ListingType != nil && !i.ListingType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "listing_type", Message: "must be Buy, Sell or Exchange"})
	}

	return domain.JoinFieldErrors(errs)
}

// FilterInput holds the advanced search page parameters.
type FilterInput struct {
	City        string
	Location    string
	Category    string
	Condition   string
	ListingType string
	MinPrice    *float64
	MaxPrice    *float64
	Query       string
	Limit       int
}

// Validate validates the filter input.
func (i FilterInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != "" && !domain.Category(i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Condition != "" && !domain.Condition(i.Condition).IsValid() {
		errs = append(errs, domain.FieldError{Field: "condition", Message: "unknown condition"})
	}
	if i.ListingType != "" && !domain.ListingType(i.ListingType).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be Buy, Sell or Exchange"})
	}
	if i.MinPrice != nil && *i.MinPrice < 0 {
		errs = append(errs, domain.FieldError{Field: "min_price", Message: "must not be negative"})
	}
	if i.MinPrice != nil && i.MaxPrice != nil && *i.MaxPrice < *i.MinPrice {
		errs = append(errs, domain.FieldError{Field: "max_price", Message: "must not be below min_price"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	return domain.JoinFieldErrors(errs)
}

func (i FilterInput) toDomain() domain.ListingFilter {
	return domain.ListingFilter{
		City:        strings.TrimSpace(i.City),
		Location:    strings.TrimSpace(i.Location),
		Category:    domain.Category(i.Category),
		Condition:   domain.Condition(i.Condition),
		ListingType: domain.ListingType(i.ListingType),
		MinPrice:    i.MinPrice,
		MaxPrice:    i.MaxPrice,
		Query:       strings.TrimSpace(i.Query),
		Limit:       i.Limit,
	}
}

func checkText(field, value string, maxLen int, required bool) []domain.FieldError {
	if value == "" {
		if required {
			return []domain.FieldError{{Field: field, Message: "required"}}
		}
		return nil
	}
	if len(value) > maxLen {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

func checkPrice(p *float64) []domain.FieldError {
	if p != nil && *p < 0 {
		return []domain.FieldError{{Field: "price", Message: "must not be negative"}}
	}
	return nil
}

func checkImages(images []string, maxImages int) []domain.FieldError {
	if len(images) > maxImages {
		return []domain.FieldError{{Field: "images", Message: "too many images"}}
	}
	for _, raw := range images {
		u, err := url.Parse(raw)
		if err != nil || len(raw) > maxImageURLLen || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return []domain.FieldError{{Field: "images", Message: "must be http(s) URLs"}}
		}
	}
	return nil
}
