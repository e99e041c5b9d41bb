package query

import (
	"strings"

	"github.com/mestakip/tiretrack/internal/catalog/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

type ListItemsQuery struct {
	Search string
	Limit  int
	Offset int
	Scope  authz.Scope
}

type ListItemsHandler struct {
	items domain.ItemRepository
}

func NewListItemsHandler(items domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{items: items}
}

// Handle lists items, optionally filtered by a free-text search. Every
// whitespace-separated term must match the item name.
func (h *ListItemsHandler) Handle(q ListItemsQuery) ([]domain.Item, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}

	terms := searchTerms(q.Search)
	if len(terms) == 0 {
		return h.items.FindAll(q.Scope, q.Limit, q.Offset)
	}
	return h.items.Search(q.Scope, terms, q.Limit, q.Offset)
}

func searchTerms(search string) []string {
	fields := strings.Fields(strings.ToLower(search))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		terms = append(terms, f)
	}
	return terms
}
