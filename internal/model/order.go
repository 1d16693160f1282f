package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order links one customer to one product. Orders are append-only:
// imports always create new rows and never update existing ones.
type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CustomerID uint            `gorm:"index;not null" json:"customer_id"`
	Customer   Customer        `json:"customer"`
	ProductID  uint            `gorm:"index;not null" json:"product_id"`
	Product    Product         `json:"product"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	OrderDate  time.Time       `json:"order_date"`
	Status     OrderStatus     `gorm:"size:20;not null;default:pending" json:"status"`
}

func (Order) TableName() string {
	return "orders"
}
