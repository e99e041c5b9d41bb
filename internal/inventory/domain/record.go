package domain

import (
	"math"
	"time"
)

// Record status lifecycle. EN_ROUTE is the entry state; REVIEWED rows are
// archived out of the working list; CANCELLED rows keep their cancel reason.
const (
	StatusEnRoute    = "EN_ROUTE"
	StatusInProgress = "IN_PROGRESS"
	StatusDelivered  = "DELIVERED"
	StatusReviewed   = "REVIEWED"
	StatusCancelled  = "CANCELLED"
)

const (
	GroupPassenger  = "PASSENGER"
	GroupCommercial = "COMMERCIAL"
	GroupBattery    = "BATTERY"
	GroupWheel      = "WHEEL"
)

const (
	SeasonSummer    = "SUMMER"
	SeasonWinter    = "WINTER"
	SeasonAllSeason = "ALL_SEASON"
)

const (
	WarehouseSales = "SALES"
	WarehouseStock = "STOCK"
)

const (
	PaymentCard         = "CARD"
	PaymentBankTransfer = "BANK_TRANSFER"
	PaymentOpenAccount  = "OPEN_ACCOUNT"
)

// MinCancelReasonLen is the minimum length of a trimmed cancel reason
const MinCancelReasonLen = 3

// TireRecord is a tracked tire movement: who it is for, what product, and
// where it sits in the delivery lifecycle. Soft deletion uses the IsRemoved
// flag rather than a deleted_at column so removed rows stay queryable for
// the trash view.
type TireRecord struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Counterparty     string    `json:"counterparty" gorm:"not null;index"`
	Product          string    `json:"product" gorm:"not null"`
	Brand            string    `json:"brand"`
	Group            string    `json:"group" gorm:"index"`
	Season           string    `json:"season"`
	Quantity         int       `json:"quantity" gorm:"default:0"`
	UnitPrice        float64   `json:"unit_price" gorm:"default:0"`
	TotalPrice       float64   `json:"total_price" gorm:"default:0"`
	Status           string    `json:"status" gorm:"index"`
	Warehouse        string    `json:"warehouse"`
	Payment          string    `json:"payment"`
	NotificationSent bool      `json:"notification_sent" gorm:"default:false"`
	Featured         bool      `json:"featured" gorm:"default:false"`
	CancelReason     string    `json:"cancel_reason"`
	IsRemoved        bool      `json:"is_removed" gorm:"default:false;index"`
	OwnerID          uint      `json:"owner_id" gorm:"index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (TireRecord) TableName() string {
	return "tire_records"
}

// Normalize applies the derived-field rules on every save:
//   - an empty status becomes EN_ROUTE
//   - when both unit and total price are positive, quantity is recomputed
//     as total/unit rounded half away from zero, overriding any submitted
//     quantity
//   - battery rows carry no season
func (r *TireRecord) Normalize() {
	if r.Status == "" {
		r.Status = StatusEnRoute
	}
	if r.UnitPrice > 0 && r.TotalPrice > 0 {
		r.Quantity = int(math.Round(r.TotalPrice / r.UnitPrice))
	}
	if r.Group == GroupBattery {
		r.Season = ""
	}
}

// Active reports whether the record is still in the working list: not
// removed and not archived as reviewed.
func (r *TireRecord) Active() bool {
	return !r.IsRemoved && r.Status != StatusReviewed
}

func ValidStatus(s string) bool {
	switch s {
	case StatusEnRoute, StatusInProgress, StatusDelivered, StatusReviewed, StatusCancelled:
		return true
	}
	return false
}

func ValidGroup(g string) bool {
	switch g {
	case GroupPassenger, GroupCommercial, GroupBattery, GroupWheel, "":
		return true
	}
	return false
}

func ValidSeason(s string) bool {
	switch s {
	case SeasonSummer, SeasonWinter, SeasonAllSeason, "":
		return true
	}
	return false
}

func ValidWarehouse(w string) bool {
	switch w {
	case WarehouseSales, WarehouseStock, "":
		return true
	}
	return false
}

func ValidPayment(p string) bool {
	switch p {
	case PaymentCard, PaymentBankTransfer, PaymentOpenAccount, "":
		return true
	}
	return false
}
