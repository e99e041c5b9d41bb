package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/mestakip/tiretrack/internal/shipping/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

type CreateDeliveryCommand struct {
	ItemID       *uint      `json:"item_id"`
	CustomerName string     `json:"customer_name"`
	PhoneNumber  string     `json:"phone_number"`
	Location     string     `json:"location"`
	Date         *time.Time `json:"date"`
	Scope        authz.Scope
}

type UpdateDeliveryCommand struct {
	ID           uint
	ItemID       *uint      `json:"item_id"`
	CustomerName string     `json:"customer_name"`
	PhoneNumber  string     `json:"phone_number"`
	Location     string     `json:"location"`
	Date         *time.Time `json:"date"`
	IsDelivered  bool       `json:"is_delivered"`
	Scope        authz.Scope
}

type MarkDeliveredCommand struct {
	ID    uint
	Scope authz.Scope
}

type DeleteDeliveryCommand struct {
	ID    uint
	Scope authz.Scope
}

// DeliveryHandler covers delivery writes
type DeliveryHandler struct {
	deliveries domain.DeliveryRepository
}

func NewDeliveryHandler(deliveries domain.DeliveryRepository) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries}
}

func (h *DeliveryHandler) HandleCreate(cmd CreateDeliveryCommand) (*domain.Delivery, error) {
	name := strings.TrimSpace(cmd.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("customer name is required: %w", apperr.ErrValidation)
	}

	delivery := &domain.Delivery{
		ItemID:       cmd.ItemID,
		CustomerName: name,
		PhoneNumber:  strings.TrimSpace(cmd.PhoneNumber),
		Location:     cmd.Location,
		Date:         cmd.Date,
		OwnerID:      cmd.Scope.UserID,
	}
	if err := h.deliveries.Create(delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

func (h *DeliveryHandler) HandleUpdate(cmd UpdateDeliveryCommand) (*domain.Delivery, error) {
	delivery, err := h.deliveries.FindByID(cmd.Scope, cmd.ID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cmd.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("customer name is required: %w", apperr.ErrValidation)
	}

	delivery.ItemID = cmd.ItemID
	delivery.CustomerName = name
	delivery.PhoneNumber = strings.TrimSpace(cmd.PhoneNumber)
	delivery.Location = cmd.Location
	delivery.Date = cmd.Date
	delivery.IsDelivered = cmd.IsDelivered

	if err := h.deliveries.Update(delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

func (h *DeliveryHandler) HandleMarkDelivered(cmd MarkDeliveredCommand) (*domain.Delivery, error) {
	delivery, err := h.deliveries.FindByID(cmd.Scope, cmd.ID)
	if err != nil {
		return nil, err
	}
	if delivery.IsDelivered {
		return delivery, nil
	}
	delivery.IsDelivered = true
	if err := h.deliveries.Update(delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

func (h *DeliveryHandler) HandleDelete(cmd DeleteDeliveryCommand) error {
	if _, err := h.deliveries.FindByID(cmd.Scope, cmd.ID); err != nil {
		return err
	}
	return h.deliveries.Delete(cmd.ID)
}
