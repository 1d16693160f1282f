// Package model defines the persistent entities managed by the store.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalogue item. Name is the natural key: imports match
// incoming rows against it and overwrite price and stock on the existing
// record rather than creating duplicates.
type Product struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock     int             `gorm:"not null" json:"stock"`
	CreatedAt time.Time       `json:"created_at"`

	Orders []Order `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
