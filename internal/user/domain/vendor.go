package domain

import (
	"time"

	"github.com/mestakip/tiretrack/pkg/authz"
)

// Vendor represents a supplier tied to an owning account
type Vendor struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	OwnerID     uint      `json:"owner_id" gorm:"index"`
	IsRemoved   bool      `json:"-" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Vendor) TableName() string {
	return "vendors"
}

// Customer represents a buyer tied to an owning account
type Customer struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	FirstName     string    `json:"first_name" gorm:"not null"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	LoyaltyPoints int       `json:"loyalty_points" gorm:"default:0"`
	OwnerID       uint      `json:"owner_id" gorm:"index"`
	IsRemoved     bool      `json:"-" gorm:"default:false;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// VendorRepository defines the contract for vendor data access
type VendorRepository interface {
	Create(vendor *Vendor) error
	FindByID(scope authz.Scope, id uint) (*Vendor, error)
	FindAll(scope authz.Scope, limit, offset int) ([]Vendor, error)
	Update(vendor *Vendor) error
	SoftDelete(id uint) error
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(scope authz.Scope, id uint) (*Customer, error)
	FindAll(scope authz.Scope, limit, offset int) ([]Customer, error)
	Update(customer *Customer) error
	SoftDelete(id uint) error
}
