package model

import "time"

// Payment methods accepted at the counter.
const (
	PaymentCash         = "CASH"
	PaymentCard         = "CARD"
	PaymentOnCollection = "ON_COLLECTION"
)

type Order struct {
	DTO
	PublicId    string  `gorm:"unique;size:36" json:"publicId"`
	OrderNumber string  `gorm:"unique;size:20" json:"orderNumber"` // LOS-000001
	ClientRef   *string `gorm:"uniqueIndex;size:36" json:"clientRef,omitempty"`

	CustomerID uint      `json:"customerId"`
	Customer   *Customer `json:"customer,omitempty"`
	AccountID  uint      `json:"accountId"` // cashier who took the order
	Account    *Account  `json:"account,omitempty"`

	Items  []OrderItem  `gorm:"foreignKey:OrderId" json:"items"`
	Stains []StainPhoto `gorm:"foreignKey:OrderId" json:"stains,omitempty"`

	Total         float64             `json:"total"`
	PaymentMethod string              `json:"paymentMethod"` // CASH, CARD, ON_COLLECTION
	CashPayment   *CashPaymentDetails `gorm:"serializer:json" json:"cashPaymentDetails,omitempty"`
	IsExpress     bool                `json:"isExpress"`
	Notes         string              `json:"notes,omitempty"`

	Status      OrderStatus `gorm:"size:20;index" json:"status"`
	CompletedAt *time.Time  `json:"completedAt"`
	PickedUpAt  *time.Time  `json:"pickedUpAt"`
	Overdue     bool        `gorm:"default:false" json:"overdue"`
}

type OrderItem struct {
	DTO
	OrderId   uint    `gorm:"index" json:"orderId"`
	ServiceId *uint   `json:"serviceId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Notes     string  `json:"notes,omitempty"`
}

type StainPhoto struct {
	DTO
	OrderId uint   `gorm:"index" json:"orderId"`
	Url     string `json:"url"`
	Note    string `json:"note,omitempty"`
}

// CashPaymentDetails is the tendered breakdown plus the settlement result,
// stored on the order as JSON. Keys are denomination face values ("200", "5").
type CashPaymentDetails struct {
	Notes     map[string]int `json:"notes,omitempty"`
	Coins     map[string]int `json:"coins,omitempty"`
	TotalPaid float64        `json:"totalPaid"`
	Change    float64        `json:"change"`
}

// DailyRevenue is a nightly snapshot row written by the cron job so the stats
// overview does not depend on scanning the full orders table for history.
type DailyRevenue struct {
	DTO
	Date        string  `gorm:"unique;size:10" json:"date"` // 2006-01-02
	Orders      int64   `json:"orders"`
	Revenue     float64 `json:"revenue"`
	CashRevenue float64 `json:"cashRevenue"`
	CardRevenue float64 `json:"cardRevenue"`
}

type OrderItemInput struct {
	ServiceId *uint   `json:"serviceId"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Notes     string  `json:"notes"`
}

type CashTenderInput struct {
	Notes map[string]int `json:"notes"`
	Coins map[string]int `json:"coins"`
}

type CreateOrderInput struct {
	CustomerId    uint             `json:"customerId" validate:"required"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Total         *float64         `json:"total" validate:"required"`
	PaymentMethod string           `json:"paymentMethod" validate:"required"`
	CashPayment   *CashTenderInput `json:"cashPaymentDetails"`
	IsExpress     bool             `json:"isExpress"`
	Notes         string           `json:"notes"`
	Stains        []string         `json:"stains"`    // stain notes taken at drop-off
	ClientRef     *string          `json:"clientRef"` // offline-queue replay token
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type FilterOrder struct {
	Pagination
	Status        string `json:"status"`
	CustomerId    *uint  `json:"customerId"`
	PaymentMethod string `json:"paymentMethod"`
	IsExpress     *bool  `json:"isExpress"`
	SearchKey     string `json:"searchKey"` // matches order number
}
