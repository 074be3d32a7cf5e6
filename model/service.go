package model

// ServiceItem is a price-list entry (wash & fold, dry cleaning, ironing...).
// Order items reference it for display defaults; the price on the order item
// is what was actually charged.
type ServiceItem struct {
	DTO
	Name              string  `gorm:"not null" json:"name"`
	Slug              string  `gorm:"unique;size:80" json:"slug"`
	UnitPrice         float64 `json:"unitPrice"`
	ExpressMultiplier float64 `gorm:"default:1.5" json:"expressMultiplier"`
	Active            bool    `gorm:"default:true" json:"active"`
}

type CreateServiceInput struct {
	Name              string   `json:"name" validate:"required"`
	UnitPrice         *float64 `json:"unitPrice" validate:"required"`
	ExpressMultiplier *float64 `json:"expressMultiplier"`
}

type EditServiceInput struct {
	Name              *string  `json:"name"`
	UnitPrice         *float64 `json:"unitPrice"`
	ExpressMultiplier *float64 `json:"expressMultiplier"`
	Active            *bool    `json:"active"`
}
