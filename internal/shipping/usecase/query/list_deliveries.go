package query

import (
	"strings"

	"github.com/mestakip/tiretrack/internal/shipping/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

type ListDeliveriesQuery struct {
	Search    string
	Delivered *bool
	Limit     int
	Offset    int
	Scope     authz.Scope
}

type ListDeliveriesHandler struct {
	deliveries domain.DeliveryRepository
}

func NewListDeliveriesHandler(deliveries domain.DeliveryRepository) *ListDeliveriesHandler {
	return &ListDeliveriesHandler{deliveries: deliveries}
}

func (h *ListDeliveriesHandler) Handle(q ListDeliveriesQuery) ([]domain.Delivery, error) {
	if search := strings.TrimSpace(q.Search); search != "" {
		return h.deliveries.SearchByCustomer(q.Scope, search, q.Limit, q.Offset)
	}
	return h.deliveries.FindAll(q.Scope, q.Delivered, q.Limit, q.Offset)
}

type GetDeliveryQuery struct {
	ID    uint
	Scope authz.Scope
}

type GetDeliveryHandler struct {
	deliveries domain.DeliveryRepository
}

func NewGetDeliveryHandler(deliveries domain.DeliveryRepository) *GetDeliveryHandler {
	return &GetDeliveryHandler{deliveries: deliveries}
}

func (h *GetDeliveryHandler) Handle(q GetDeliveryQuery) (*domain.Delivery, error) {
	return h.deliveries.FindByID(q.Scope, q.ID)
}
