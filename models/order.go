package models

import "time"

// OrderStatus represents all possible states of a delivery order
type OrderStatus string

const (
	StatusPreparing      OrderStatus = "preparing"
	StatusRescheduled    OrderStatus = "rescheduled"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusCompleted      OrderStatus = "completed"
	StatusCancelled      OrderStatus = "cancelled"
)

// ValidStatus reports whether s is part of the closed status set
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPreparing, StatusRescheduled, StatusOutForDelivery, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID                uint             `json:"id" gorm:"primaryKey"`
	UserID            uint             `json:"user_id" gorm:"not null;index"`
	User              User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID      uint             `json:"restaurant_id" gorm:"not null;index"`
	Restaurant        Restaurant       `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	DeliveryPersonID  *uint            `json:"delivery_person_id"`
	DeliveryPerson    *User            `json:"delivery_person,omitempty" gorm:"foreignKey:DeliveryPersonID"`
	DeliveryAddressID uint             `json:"delivery_address_id" gorm:"not null"`
	DeliveryAddress   *DeliveryAddress `json:"delivery_address,omitempty" gorm:"foreignKey:DeliveryAddressID"`
	Status            OrderStatus      `json:"status" gorm:"not null;default:'preparing';index"`
	TotalPrice        float64          `json:"total_price"`
	// Date is the fulfillment timestamp: placement time at creation,
	// moved by a reschedule, stamped again on completion.
	Date          time.Time            `json:"date"`
	Items         []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null;index"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"` // snapshot price at time of order
	Name       string   `json:"name"`                  // snapshot name
}

// OrderStatusHistory tracks every status change for auditing
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
