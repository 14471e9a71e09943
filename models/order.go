package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string
type DeliveryType string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting an admin
	OrderStatusProcessing OrderStatus = "processing" // being prepared
	OrderStatusCompleted  OrderStatus = "completed"  // terminal
	OrderStatusCancelled  OrderStatus = "cancelled"  // terminal

	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func (d DeliveryType) Valid() bool {
	return d == DeliveryTypeDelivery || d == DeliveryTypePickup
}

// Order is immutable once created except for its status. TotalAmount always
// equals the sum of the line TotalPrice values written in the same
// transaction.
type Order struct {
	ID              string          `gorm:"primaryKey;type:uuid" json:"id"`
	OrderNumber     string          `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID          string          `gorm:"index;not null" json:"user_id"`
	CustomerName    string          `gorm:"not null" json:"customer_name"`
	CustomerPhone   string          `gorm:"not null" json:"customer_phone"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	DeliveryType    DeliveryType    `gorm:"type:varchar(10);not null" json:"delivery_type"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Notes           string          `json:"notes,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is a historical fact: name and unit price are snapshotted at
// checkout and survive any later product mutation or hard delete. ProductID
// may dangle once the product is hard-deleted; readers fall back to the
// snapshot and never treat that as an error.
type OrderItem struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	OrderID     string          `gorm:"index;type:uuid;not null" json:"order_id"`
	ProductID   string          `gorm:"type:uuid;not null" json:"product_id"`
	ProductName string          `gorm:"not null" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}

// OrderCounter backs order-number allocation: one row per day, bumped with an
// atomic upsert so concurrent checkouts never read the same value.
type OrderCounter struct {
	DayKey  string `gorm:"primaryKey"`
	Counter int64  `gorm:"not null"`
}
