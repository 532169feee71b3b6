package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleCustomer   UserRole = "customer"
	RoleRestaurant UserRole = "restaurant"
	RoleDelivery   UserRole = "delivery"
)

// ValidRole reports whether r is one of the four known roles
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleRestaurant, RoleDelivery:
		return true
	}
	return false
}

// UserStatus is the account lifecycle flag
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	FirstName    string     `json:"first_name" gorm:"not null"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         UserRole   `json:"role" gorm:"not null;default:'customer'"`
	Gender       string     `json:"gender"`
	Status       UserStatus `json:"status" gorm:"not null;default:'active'"`
	Phone        string     `json:"phone"`
	IsAvailable  bool       `json:"is_available" gorm:"default:true"` // delivery roster flag
	LastActiveAt *time.Time `json:"last_active_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
