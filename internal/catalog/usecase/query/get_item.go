package query

import (
	"github.com/mestakip/tiretrack/internal/catalog/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

type GetItemQuery struct {
	ID    uint
	Scope authz.Scope
}

type GetItemHandler struct {
	items domain.ItemRepository
}

func NewGetItemHandler(items domain.ItemRepository) *GetItemHandler {
	return &GetItemHandler{items: items}
}

func (h *GetItemHandler) Handle(q GetItemQuery) (*domain.Item, error) {
	return h.items.FindByID(q.Scope, q.ID)
}

type ListCategoriesQuery struct {
	Limit  int
	Offset int
	Scope  authz.Scope
}

type ListCategoriesHandler struct {
	categories domain.CategoryRepository
}

func NewListCategoriesHandler(categories domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{categories: categories}
}

func (h *ListCategoriesHandler) Handle(q ListCategoriesQuery) ([]domain.Category, error) {
	if q.Limit <= 0 {
		q.Limit = 100
	}
	return h.categories.FindAll(q.Scope, q.Limit, q.Offset)
}
