package domain

import (
	"time"

	"github.com/mestakip/tiretrack/pkg/authz"
)

// Delivery state of a sale line: P is pending, S is shipped
const (
	LineStatusPending = "P"
	LineStatusShipped = "S"
)

// Sale is a customer transaction. Reference is a generated UUID used on
// receipts; TotalAmount is stored as submitted and is not reconciled
// against the line totals.
type Sale struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Reference    string       `json:"reference" gorm:"uniqueIndex;not null"`
	CustomerName string       `json:"customer_name"`
	CustomerID   *uint        `json:"customer_id,omitempty" gorm:"index"`
	TotalAmount  float64      `json:"total_amount" gorm:"default:0"`
	Payment      string       `json:"payment"`
	Details      []SaleDetail `json:"details,omitempty" gorm:"foreignKey:SaleID"`
	OwnerID      uint         `json:"owner_id" gorm:"index"`
	IsRemoved    bool         `json:"is_removed" gorm:"default:false;index"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleDetail is one line of a sale
type SaleDetail struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	SaleID         uint    `json:"sale_id" gorm:"not null;index"`
	ItemID         *uint   `json:"item_id,omitempty" gorm:"index"`
	ItemName       string  `json:"item_name"`
	Quantity       int     `json:"quantity" gorm:"default:1"`
	UnitPrice      float64 `json:"unit_price" gorm:"default:0"`
	Total          float64 `json:"total" gorm:"default:0"`
	DeliveryStatus string  `json:"delivery_status" gorm:"default:'P'"`
}

func (SaleDetail) TableName() string {
	return "sale_details"
}

// SaleRepository defines the contract for sale data access
type SaleRepository interface {
	Create(sale *Sale) error
	FindByID(scope authz.Scope, id uint) (*Sale, error)
	FindAll(scope authz.Scope, start, end *time.Time, limit, offset int) ([]Sale, error)
	Update(sale *Sale) error
	SoftDelete(id uint) error
	// TopCustomers ranks customers by summed sale amount, descending
	TopCustomers(scope authz.Scope, limit int) ([]PartnerTotal, error)
	// SalesByDate sums sale amounts per calendar day over the optional range
	SalesByDate(scope authz.Scope, start, end *time.Time) ([]DateTotal, error)
}

// PartnerTotal ranks a customer or vendor by money moved
type PartnerTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

// DateTotal is one day's sales volume
type DateTotal struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}
