package model

import (
	"pizzeria_kassa/utils"

	"gorm.io/datatypes"
)

type Order struct {
	DTO
	PublicCode     string           `gorm:"uniqueIndex;size:20" json:"publicCode"`
	CustomerID     *uint            `gorm:"index" json:"customerId,omitempty"`
	Customer       *Customer        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"customer,omitempty"`
	Date           utils.CustomDate `gorm:"type:date;index;not null" json:"date"`
	Time           string           `gorm:"size:8" json:"time"` // 15:04:05, shop time zone
	Subtotal       float64          `json:"subtotal"`
	DiscountPct    float64          `json:"discountPct"`
	DiscountAmount float64          `json:"discountAmount"`
	Total          float64          `json:"total"`
	IsTakeOut      bool             `json:"isTakeOut"`
	Note           string           `json:"note"`
	ReceiptNumber  string           `gorm:"index;size:16" json:"receiptNumber"`
	DeliveryTime   *string          `gorm:"size:5" json:"deliveryTime"` // requested time, 15:04
	Status         string           `gorm:"size:20;index" json:"status"`
	PaymentMethod  string           `gorm:"size:20" json:"paymentMethod"`
	IsOnline       bool             `gorm:"index" json:"isOnline"`
	CreatedBy      *uint            `json:"createdBy,omitempty"`
	Lines          []OrderLine      `gorm:"foreignKey:OrderID" json:"lines"`
}

type Orders []Order

// OrderLine is immutable once its order is saved.
type OrderLine struct {
	ID           uint                       `gorm:"primaryKey" json:"id"`
	OrderID      uint                       `gorm:"index;not null" json:"orderId"`
	ProductID    *uint                      `json:"productId,omitempty"`
	Category     string                     `json:"category"`
	CategoryKind string                     `gorm:"size:20" json:"categoryKind"`
	ProductName  string                     `json:"productName"`
	Quantity     int                        `json:"quantity"`
	UnitPrice    float64                    `json:"unitPrice"`
	Extras       datatypes.JSONType[Extras] `json:"extras"`
	Note         string                     `json:"note"`
	LineTotal    float64                    `json:"lineTotal"`
}

type OrderLineInput struct {
	ProductID   *uint        `json:"productId"`
	Category    string       `json:"category"`
	ProductName string       `validate:"required_without=ProductID,max=120" json:"productName"`
	Quantity    int          `validate:"required,min=1,max=999" json:"quantity"`
	UnitPrice   LenientFloat `json:"unitPrice"`
	Extras      Extras       `json:"extras"`
	Note        string       `validate:"max=200" json:"note"`
}

type CreateOrderInput struct {
	CustomerID    *uint            `json:"customerId"`
	Customer      *CustomerInput   `json:"customer"`
	Lines         []OrderLineInput `validate:"dive" json:"lines"`
	Note          string           `validate:"max=500" json:"note"`
	DeliveryTime  *string          `validate:"omitempty,len=5" json:"deliveryTime"`
	PaymentMethod string           `json:"paymentMethod"`
	IsTakeOut     bool             `json:"isTakeOut"`
	DiscountPct   *float64         `json:"discountPct"`
}

type UpdateOrderStatusInput struct {
	Status string `validate:"required" json:"status"`
}

type FilterOrder struct {
	Pagination
	Date          string `json:"date" query:"date"`
	From          string `json:"from" query:"from"`
	To            string `json:"to" query:"to"`
	Status        string `json:"status" query:"status"`
	IsOnline      *bool  `json:"isOnline" query:"isOnline"`
	CustomerID    *uint  `json:"customerId" query:"customerId"`
	ReceiptNumber string `json:"receiptNumber" query:"receiptNumber"`
}

// OrderEvent is published to the kitchen board when an order is created or changes status.
type OrderEvent struct {
	Type          string `json:"type"`
	OrderID       uint   `json:"orderId"`
	ReceiptNumber string `json:"receiptNumber"`
	Status        string `json:"status"`
	IsOnline      bool   `json:"isOnline"`
	DeliveryTime  string `json:"deliveryTime,omitempty"`
	At            string `json:"at"`
}
