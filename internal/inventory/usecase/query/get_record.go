package query

import (
	"context"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

type GetRecordQuery struct {
	ID    uint
	Scope authz.Scope
}

type GetRecordHandler struct {
	records domain.RecordRepository
}

func NewGetRecordHandler(records domain.RecordRepository) *GetRecordHandler {
	return &GetRecordHandler{records: records}
}

func (h *GetRecordHandler) Handle(ctx context.Context, q GetRecordQuery) (*domain.TireRecord, error) {
	if traced, ok := h.records.(domain.ContextRecordRepository); ok {
		return traced.FindByIDWithContext(ctx, q.Scope, q.ID)
	}
	return h.records.FindByID(q.Scope, q.ID)
}

type ListCancelledQuery struct {
	Limit  int
	Offset int
	Scope  authz.Scope
}

type ListCancelledHandler struct {
	records domain.RecordRepository
}

func NewListCancelledHandler(records domain.RecordRepository) *ListCancelledHandler {
	return &ListCancelledHandler{records: records}
}

func (h *ListCancelledHandler) Handle(q ListCancelledQuery) ([]domain.TireRecord, error) {
	return h.records.ListByStatus(q.Scope, domain.StatusCancelled, q.Limit, q.Offset)
}

type ListRemovedQuery struct {
	Limit  int
	Offset int
	Scope  authz.Scope
}

type ListRemovedHandler struct {
	records domain.RecordRepository
}

func NewListRemovedHandler(records domain.RecordRepository) *ListRemovedHandler {
	return &ListRemovedHandler{records: records}
}

func (h *ListRemovedHandler) Handle(q ListRemovedQuery) ([]domain.TireRecord, error) {
	return h.records.ListRemoved(q.Scope, q.Limit, q.Offset)
}
