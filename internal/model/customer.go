package model

import "time"

// Customer is identified by the (email, phone) pair. Imports never
// overwrite an existing customer: name and address only apply on creation.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:254;not null;uniqueIndex:idx_customers_email_phone" json:"email"`
	Phone     string    `gorm:"size:20;not null;uniqueIndex:idx_customers_email_phone" json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `json:"created_at"`

	Orders []Order `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
