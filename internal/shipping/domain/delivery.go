package domain

import (
	"time"

	"github.com/mestakip/tiretrack/pkg/authz"
)

// Delivery is a scheduled drop-off, optionally linked to a catalog item
type Delivery struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	ItemID       *uint      `json:"item_id,omitempty" gorm:"index"`
	CustomerName string     `json:"customer_name" gorm:"not null;index"`
	PhoneNumber  string     `json:"phone_number"`
	Location     string     `json:"location"`
	Date         *time.Time `json:"date,omitempty"`
	IsDelivered  bool       `json:"is_delivered" gorm:"default:false"`
	OwnerID      uint       `json:"owner_id" gorm:"index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Delivery) TableName() string {
	return "deliveries"
}

// DeliveryRepository defines the contract for delivery data access
type DeliveryRepository interface {
	Create(delivery *Delivery) error
	FindByID(scope authz.Scope, id uint) (*Delivery, error)
	// FindAll lists deliveries, optionally filtered by delivered state
	FindAll(scope authz.Scope, delivered *bool, limit, offset int) ([]Delivery, error)
	// SearchByCustomer matches customer names case-insensitively
	SearchByCustomer(scope authz.Scope, name string, limit, offset int) ([]Delivery, error)
	Update(delivery *Delivery) error
	Delete(id uint) error
}
