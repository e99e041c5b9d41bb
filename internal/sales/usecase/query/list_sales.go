package query

import (
	"net/url"
	"time"

	"github.com/mestakip/tiretrack/internal/sales/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

const dateLayout = "2006-01-02"

type ListSalesQuery struct {
	Start  *time.Time
	End    *time.Time
	Limit  int
	Offset int
	Scope  authz.Scope
}

type ListSalesHandler struct {
	sales domain.SaleRepository
}

func NewListSalesHandler(sales domain.SaleRepository) *ListSalesHandler {
	return &ListSalesHandler{sales: sales}
}

func (h *ListSalesHandler) Handle(q ListSalesQuery) ([]domain.Sale, error) {
	return h.sales.FindAll(q.Scope, q.Start, q.End, q.Limit, q.Offset)
}

// ParseDateRange reads start and end query values. Malformed dates are
// skipped; the end day itself is included.
func ParseDateRange(values url.Values) (start, end *time.Time) {
	if s, err := time.Parse(dateLayout, values.Get("start")); err == nil {
		start = &s
	}
	if e, err := time.Parse(dateLayout, values.Get("end")); err == nil {
		e = e.AddDate(0, 0, 1)
		end = &e
	}
	return start, end
}

type GetSaleQuery struct {
	ID    uint
	Scope authz.Scope
}

type GetSaleHandler struct {
	sales domain.SaleRepository
}

func NewGetSaleHandler(sales domain.SaleRepository) *GetSaleHandler {
	return &GetSaleHandler{sales: sales}
}

func (h *GetSaleHandler) Handle(q GetSaleQuery) (*domain.Sale, error) {
	return h.sales.FindByID(q.Scope, q.ID)
}

type ListPurchasesQuery struct {
	Limit  int
	Offset int
	Scope  authz.Scope
}

type ListPurchasesHandler struct {
	purchases domain.PurchaseRepository
}

func NewListPurchasesHandler(purchases domain.PurchaseRepository) *ListPurchasesHandler {
	return &ListPurchasesHandler{purchases: purchases}
}

func (h *ListPurchasesHandler) Handle(q ListPurchasesQuery) ([]domain.Purchase, error) {
	return h.purchases.FindAll(q.Scope, q.Limit, q.Offset)
}
