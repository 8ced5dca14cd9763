package domain

// ListingStatus controls whether a listing is visible to search.
type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "active"
	ListingStatusInactive ListingStatus = "inactive"
)

func (s ListingStatus) String() string { return string(s) }

func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusActive, ListingStatusInactive:
		return true
	}
	return false
}

// ListingType is the intent of the poster.
type ListingType string

const (
	ListingTypeBuy      ListingType = "Buy"
	ListingTypeSell     ListingType = "Sell"
	ListingTypeExchange ListingType = "Exchange"
)

func (t ListingType) String() string { return string(t) }

func (t ListingType) IsValid() bool {
	switch t {
	case ListingTypeBuy, ListingTypeSell, ListingTypeExchange:
		return true
	}
	return false
}

// Condition describes the state of the offered material.
type Condition string

const (
	ConditionNew        Condition = "New"
	ConditionUsed       Condition = "Used"
	ConditionLeftover   Condition = "Leftover"
	ConditionWaste      Condition = "Waste"
	ConditionRecyclable Condition = "Recyclable"
)

func (c Condition) String() string { return string(c) }

func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionLeftover, ConditionWaste, ConditionRecyclable:
		return true
	}
	return false
}

// Category is a material category from the closed marketplace list.
type Category string

const (
	CategoryAgriculturalWaste     Category = "Agricultural Waste"
	CategoryTextileWaste          Category = "Textile Waste"
	CategoryPlasticWaste          Category = "Plastic Waste"
	CategoryMetalScrap            Category = "Metal Scrap"
	CategoryPaperWaste            Category = "Paper Waste"
	CategoryFoodWaste             Category = "Food Waste"
	CategoryConstructionMaterials Category = "Construction Materials"
	CategoryElectronicWaste       Category = "Electronic Waste"
	CategoryLeatherWaste          Category = "Leather Waste"
	CategoryChemicalWaste         Category = "Chemical Waste"
	CategoryOrganicCompost        Category = "Organic Compost"
	CategoryOther                 Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryAgriculturalWaste,
	CategoryTextileWaste,
	CategoryPlasticWaste,
	CategoryMetalScrap,
	CategoryPaperWaste,
	CategoryFoodWaste,
	CategoryConstructionMaterials,
	CategoryElectronicWaste,
	CategoryLeatherWaste,
	CategoryChemicalWaste,
	CategoryOrganicCompost,
	CategoryOther,
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ContactMethod is how a buyer reached the listing owner.
type ContactMethod string

const (
	ContactMethodMessage  ContactMethod = "message"
	ContactMethodCall     ContactMethod = "call"
	ContactMethodWhatsApp ContactMethod = "whatsapp"
)

func (m ContactMethod) String() string { return string(m) }

func (m ContactMethod) IsValid() bool {
	switch m {
	case ContactMethodMessage, ContactMethodCall, ContactMethodWhatsApp:
		return true
	}
	return false
}

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationTypeNewMessage NotificationType = "new_message"
	NotificationTypeNewRating  NotificationType = "new_rating"
)

func (t NotificationType) String() string { return string(t) }

// TransactionStatus tracks a deal between buyer and seller.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) String() string { return string(s) }

func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusCancelled:
		return true
	}
	return false
}
