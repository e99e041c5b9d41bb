package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	catalogdomain "github.com/mestakip/tiretrack/internal/catalog/domain"
	"github.com/mestakip/tiretrack/internal/sales/domain"
	"github.com/mestakip/tiretrack/kafka"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
	"github.com/mestakip/tiretrack/pkg/logger"
)

type CreatePurchaseCommand struct {
	VendorID    *uint   `json:"vendor_id"`
	VendorName  string  `json:"vendor_name"`
	ItemID      *uint   `json:"item_id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Condition   string  `json:"condition"`
	Scope       authz.Scope
}

type UpdatePurchaseCommand struct {
	ID          uint
	VendorID    *uint   `json:"vendor_id"`
	VendorName  string  `json:"vendor_name"`
	ItemID      *uint   `json:"item_id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Condition   string  `json:"condition"`
	Scope       authz.Scope
}

type DeletePurchaseCommand struct {
	ID    uint
	Scope authz.Scope
}

// PurchaseHandler covers purchase writes
type PurchaseHandler struct {
	purchases domain.PurchaseRepository
	items     catalogdomain.ItemRepository
	publisher *kafka.Publisher
}

func NewPurchaseHandler(purchases domain.PurchaseRepository, items catalogdomain.ItemRepository, publisher *kafka.Publisher) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases, items: items, publisher: publisher}
}

// HandleCreate records a purchase. The total value is recomputed from price
// and quantity, and the linked item's stock grows by the purchased quantity.
func (h *PurchaseHandler) HandleCreate(ctx context.Context, cmd CreatePurchaseCommand) (*domain.Purchase, error) {
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("purchase quantity must be positive: %w", apperr.ErrValidation)
	}
	if !domain.ValidCondition(cmd.Condition) {
		return nil, fmt.Errorf("invalid condition %q: %w", cmd.Condition, apperr.ErrValidation)
	}

	purchase := &domain.Purchase{
		VendorID:    cmd.VendorID,
		VendorName:  strings.TrimSpace(cmd.VendorName),
		ItemID:      cmd.ItemID,
		Description: cmd.Description,
		Price:       cmd.Price,
		Quantity:    cmd.Quantity,
		TotalValue:  cmd.Price * float64(cmd.Quantity),
		Condition:   cmd.Condition,
		OwnerID:     cmd.Scope.UserID,
	}
	if err := h.purchases.Create(purchase); err != nil {
		return nil, err
	}

	if err := h.applyStock(ctx, purchase); err != nil {
		return nil, err
	}
	h.publishCompleted(ctx, purchase)
	return purchase, nil
}

// HandleUpdate rewrites a purchase. Stock is incremented again on every
// save, matching the long-standing behavior receipt audits rely on.
func (h *PurchaseHandler) HandleUpdate(ctx context.Context, cmd UpdatePurchaseCommand) (*domain.Purchase, error) {
	purchase, err := h.purchases.FindByID(cmd.Scope, cmd.ID)
	if err != nil {
		return nil, err
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("purchase quantity must be positive: %w", apperr.ErrValidation)
	}
	if !domain.ValidCondition(cmd.Condition) {
		return nil, fmt.Errorf("invalid condition %q: %w", cmd.Condition, apperr.ErrValidation)
	}

	purchase.VendorID = cmd.VendorID
	purchase.VendorName = strings.TrimSpace(cmd.VendorName)
	purchase.ItemID = cmd.ItemID
	purchase.Description = cmd.Description
	purchase.Price = cmd.Price
	purchase.Quantity = cmd.Quantity
	purchase.TotalValue = cmd.Price * float64(cmd.Quantity)
	purchase.Condition = cmd.Condition

	if err := h.purchases.Update(purchase); err != nil {
		return nil, err
	}

	if err := h.applyStock(ctx, purchase); err != nil {
		return nil, err
	}
	h.publishCompleted(ctx, purchase)
	return purchase, nil
}

func (h *PurchaseHandler) HandleDelete(cmd DeletePurchaseCommand) error {
	if _, err := h.purchases.FindByID(cmd.Scope, cmd.ID); err != nil {
		return err
	}
	return h.purchases.SoftDelete(cmd.ID)
}

func (h *PurchaseHandler) applyStock(ctx context.Context, purchase *domain.Purchase) error {
	if purchase.ItemID == nil {
		return nil
	}
	if err := h.items.AddQuantity(*purchase.ItemID, purchase.Quantity); err != nil {
		return fmt.Errorf("failed to restock item %d: %w", *purchase.ItemID, err)
	}
	return nil
}

func (h *PurchaseHandler) publishCompleted(ctx context.Context, purchase *domain.Purchase) {
	var itemID uint
	if purchase.ItemID != nil {
		itemID = *purchase.ItemID
	}
	err := h.publisher.PublishPurchaseCompleted(ctx, kafka.PurchaseCompletedEvent{
		PurchaseID: purchase.ID,
		ItemID:     itemID,
		Quantity:   purchase.Quantity,
		TotalValue: purchase.TotalValue,
		UserID:     purchase.OwnerID,
		Timestamp:  time.Now(),
	})
	if err != nil {
		logger.Warn(ctx).Err(err).Uint("purchase_id", purchase.ID).Msg("failed to publish purchase event")
	}
}
