package models

import "time"

// DeliveryAddress is a saved drop-off location. At most one address per
// user carries IsDefault=true; the swap happens inside a transaction.
type DeliveryAddress struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Line1      string    `json:"line1" gorm:"not null"`
	Line2      string    `json:"line2"`
	City       string    `json:"city" gorm:"not null"`
	State      string    `json:"state"`
	Country    string    `json:"country" gorm:"not null"`
	PostalCode string    `json:"postal_code" gorm:"not null"`
	IsDefault  bool      `json:"is_default" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
