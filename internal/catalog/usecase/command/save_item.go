package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/mestakip/tiretrack/internal/catalog/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

type CreateItemCommand struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	CategoryID   uint       `json:"category_id"`
	Quantity     int        `json:"quantity"`
	Price        float64    `json:"price"`
	Currency     string     `json:"currency"`
	ExpiringDate *time.Time `json:"expiring_date"`
	VendorID     *uint      `json:"vendor_id"`
	Brand        string     `json:"brand"`
	Group        string     `json:"group"`
	Season       string     `json:"season"`
	Scope        authz.Scope
}

type UpdateItemCommand struct {
	ID           uint
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	CategoryID   uint       `json:"category_id"`
	Quantity     int        `json:"quantity"`
	Price        float64    `json:"price"`
	Currency     string     `json:"currency"`
	ExpiringDate *time.Time `json:"expiring_date"`
	VendorID     *uint      `json:"vendor_id"`
	Brand        string     `json:"brand"`
	Group        string     `json:"group"`
	Season       string     `json:"season"`
	Scope        authz.Scope
}

type DeleteItemCommand struct {
	ID    uint
	Scope authz.Scope
}

// ItemHandler covers item writes
type ItemHandler struct {
	items      domain.ItemRepository
	categories domain.CategoryRepository
}

func NewItemHandler(items domain.ItemRepository, categories domain.CategoryRepository) *ItemHandler {
	return &ItemHandler{items: items, categories: categories}
}

func (h *ItemHandler) HandleCreate(cmd CreateItemCommand) (*domain.Item, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("item name is required: %w", apperr.ErrValidation)
	}
	if _, err := h.categories.FindByID(cmd.Scope, cmd.CategoryID); err != nil {
		return nil, fmt.Errorf("category %d: %w", cmd.CategoryID, err)
	}

	slug, err := uniqueSlug(name, h.items.SlugExists)
	if err != nil {
		return nil, err
	}

	currency := cmd.Currency
	if currency == "" {
		currency = domain.CurrencyTRY
	}

	item := &domain.Item{
		Name:         name,
		Slug:         slug,
		Description:  cmd.Description,
		CategoryID:   cmd.CategoryID,
		Quantity:     cmd.Quantity,
		Price:        cmd.Price,
		Currency:     currency,
		ExpiringDate: cmd.ExpiringDate,
		VendorID:     cmd.VendorID,
		Brand:        strings.TrimSpace(cmd.Brand),
		Group:        cmd.Group,
		Season:       cmd.Season,
		OwnerID:      cmd.Scope.UserID,
	}
	if err := h.items.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (h *ItemHandler) HandleUpdate(cmd UpdateItemCommand) (*domain.Item, error) {
	item, err := h.items.FindByID(cmd.Scope, cmd.ID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("item name is required: %w", apperr.ErrValidation)
	}
	if cmd.CategoryID != item.CategoryID {
		if _, err := h.categories.FindByID(cmd.Scope, cmd.CategoryID); err != nil {
			return nil, fmt.Errorf("category %d: %w", cmd.CategoryID, err)
		}
	}

	item.Name = name
	item.Description = cmd.Description
	item.CategoryID = cmd.CategoryID
	item.Category = nil
	item.Quantity = cmd.Quantity
	item.Price = cmd.Price
	if cmd.Currency != "" {
		item.Currency = cmd.Currency
	}
	item.ExpiringDate = cmd.ExpiringDate
	item.VendorID = cmd.VendorID
	item.Brand = strings.TrimSpace(cmd.Brand)
	item.Group = cmd.Group
	item.Season = cmd.Season

	if err := h.items.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (h *ItemHandler) HandleDelete(cmd DeleteItemCommand) error {
	if _, err := h.items.FindByID(cmd.Scope, cmd.ID); err != nil {
		return err
	}
	return h.items.Delete(cmd.ID)
}
