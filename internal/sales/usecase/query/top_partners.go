package query

import (
	"time"

	"github.com/mestakip/tiretrack/internal/sales/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

// topPartnerLimit caps the partner leaderboards
const topPartnerLimit = 10

type TopPartnersQuery struct {
	Scope authz.Scope
	// Optional range for the per-day series; the leaderboards ignore it
	Start *time.Time
	End   *time.Time
}

// TopPartners is the sales report: both leaderboards plus the per-day series
type TopPartners struct {
	Customers   []domain.PartnerTotal `json:"customers"`
	Vendors     []domain.PartnerTotal `json:"vendors"`
	SalesByDate []domain.DateTotal    `json:"sales_by_date"`
}

type TopPartnersHandler struct {
	sales     domain.SaleRepository
	purchases domain.PurchaseRepository
}

func NewTopPartnersHandler(sales domain.SaleRepository, purchases domain.PurchaseRepository) *TopPartnersHandler {
	return &TopPartnersHandler{sales: sales, purchases: purchases}
}

func (h *TopPartnersHandler) Handle(q TopPartnersQuery) (*TopPartners, error) {
	customers, err := h.sales.TopCustomers(q.Scope, topPartnerLimit)
	if err != nil {
		return nil, err
	}
	vendors, err := h.purchases.TopVendors(q.Scope, topPartnerLimit)
	if err != nil {
		return nil, err
	}
	byDate, err := h.sales.SalesByDate(q.Scope, q.Start, q.End)
	if err != nil {
		return nil, err
	}
	return &TopPartners{Customers: customers, Vendors: vendors, SalesByDate: byDate}, nil
}
