package model

import "time"

type Customer struct {
	DTO
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	Phone     string  `gorm:"unique;not null" json:"phone"`
	Email     *string `gorm:"uniqueIndex" json:"email"`
	Address   *string `json:"address"`
	Notes     *string `json:"notes"`

	// Denormalized order stats, maintained inside the order-creation
	// transaction so they cannot drift from the actual order count.
	TotalOrders   int        `gorm:"default:0" json:"totalOrders"`
	LastOrderDate *time.Time `json:"lastOrderDate"`

	IsActive bool `gorm:"default:true" json:"isActive"`
}

type Customers []Customer

type CreateCustomerInput struct {
	FirstName string  `json:"firstname" validate:"required"`
	LastName  string  `json:"lastname"`
	Phone     string  `json:"phone" validate:"required"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Address   *string `json:"address"`
	Notes     *string `json:"notes"`
}

type EditCustomerInput struct {
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Address   *string `json:"address"`
	Notes     *string `json:"notes"`
}

type FilterCustomer struct {
	Pagination
	SearchKey   string `json:"searchKey"`
	PhoneNumber string `json:"phoneNumber"`
	Active      *bool  `json:"active"`
}
