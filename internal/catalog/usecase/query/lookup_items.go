package query

import (
	"strings"

	"github.com/mestakip/tiretrack/internal/catalog/domain"
)

// lookupLimit caps autocomplete responses
const lookupLimit = 10

type LookupItemsQuery struct {
	Term string
}

type LookupItemsHandler struct {
	items domain.ItemRepository
}

func NewLookupItemsHandler(items domain.ItemRepository) *LookupItemsHandler {
	return &LookupItemsHandler{items: items}
}

// Handle serves the sale-form item autocomplete. An empty term returns an
// empty, non-nil slice so the response encodes as [].
func (h *LookupItemsHandler) Handle(q LookupItemsQuery) ([]domain.LookupResult, error) {
	results := []domain.LookupResult{}

	term := strings.ToLower(strings.TrimSpace(q.Term))
	if term == "" {
		return results, nil
	}

	items, err := h.items.Lookup(term, lookupLimit)
	if err != nil {
		return nil, err
	}
	for i := range items {
		results = append(results, items[i].Lookup())
	}
	return results, nil
}
