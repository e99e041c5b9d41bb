package command

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mestakip/tiretrack/internal/sales/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

type SaleLineInput struct {
	ItemID    *uint   `json:"item_id"`
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type CreateSaleCommand struct {
	CustomerName string          `json:"customer_name"`
	CustomerID   *uint           `json:"customer_id"`
	TotalAmount  float64         `json:"total_amount"`
	Payment      string          `json:"payment"`
	Lines        []SaleLineInput `json:"lines"`
	Scope        authz.Scope
}

type DeleteSaleCommand struct {
	ID    uint
	Scope authz.Scope
}

// SaleHandler covers sale writes
type SaleHandler struct {
	sales domain.SaleRepository
}

func NewSaleHandler(sales domain.SaleRepository) *SaleHandler {
	return &SaleHandler{sales: sales}
}

// HandleCreate records a sale with its lines. The submitted total amount is
// stored as is; line totals are not summed into it.
func (h *SaleHandler) HandleCreate(cmd CreateSaleCommand) (*domain.Sale, error) {
	if len(cmd.Lines) == 0 {
		return nil, fmt.Errorf("a sale needs at least one line: %w", apperr.ErrValidation)
	}

	sale := &domain.Sale{
		Reference:    uuid.NewString(),
		CustomerName: strings.TrimSpace(cmd.CustomerName),
		CustomerID:   cmd.CustomerID,
		TotalAmount:  cmd.TotalAmount,
		Payment:      cmd.Payment,
		OwnerID:      cmd.Scope.UserID,
	}
	for _, line := range cmd.Lines {
		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		sale.Details = append(sale.Details, domain.SaleDetail{
			ItemID:         line.ItemID,
			ItemName:       strings.TrimSpace(line.ItemName),
			Quantity:       quantity,
			UnitPrice:      line.UnitPrice,
			Total:          line.Total,
			DeliveryStatus: domain.LineStatusPending,
		})
	}

	if err := h.sales.Create(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (h *SaleHandler) HandleDelete(cmd DeleteSaleCommand) error {
	if _, err := h.sales.FindByID(cmd.Scope, cmd.ID); err != nil {
		return err
	}
	return h.sales.SoftDelete(cmd.ID)
}
