package domain

import (
	"time"

	"github.com/mestakip/tiretrack/pkg/authz"
)

// Purchase item condition
const (
	ConditionExcellent = "EXCELLENT"
	ConditionGood      = "GOOD"
	ConditionFair      = "FAIR"
	ConditionPoor      = "POOR"
)

// Purchase records stock bought from a vendor. TotalValue is always
// recomputed as Price times Quantity on save.
type Purchase struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	VendorID    *uint     `json:"vendor_id,omitempty" gorm:"index"`
	VendorName  string    `json:"vendor_name" gorm:"index"`
	ItemID      *uint     `json:"item_id,omitempty" gorm:"index"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"default:0"`
	Quantity    int       `json:"quantity" gorm:"default:0"`
	TotalValue  float64   `json:"total_value" gorm:"default:0"`
	Condition   string    `json:"condition"`
	OwnerID     uint      `json:"owner_id" gorm:"index"`
	IsRemoved   bool      `json:"is_removed" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Purchase) TableName() string {
	return "purchases"
}

func ValidCondition(c string) bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, "":
		return true
	}
	return false
}

// PurchaseRepository defines the contract for purchase data access
type PurchaseRepository interface {
	Create(purchase *Purchase) error
	FindByID(scope authz.Scope, id uint) (*Purchase, error)
	FindAll(scope authz.Scope, limit, offset int) ([]Purchase, error)
	Update(purchase *Purchase) error
	SoftDelete(id uint) error
	// TopVendors ranks vendors by summed purchase value, descending
	TopVendors(scope authz.Scope, limit int) ([]PartnerTotal, error)
}
