package query

import (
	"context"
	"net/url"
	"time"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

// Date presets understood by the list endpoints
const (
	PresetOneMonth    = "1m"
	PresetThreeMonths = "3m"
	PresetSixMonths   = "6m"
	PresetCustom      = "custom"
)

const dateLayout = "2006-01-02"

type ListRecordsQuery struct {
	Filter domain.RecordFilter
	Scope  authz.Scope
}

type ListRecordsHandler struct {
	records domain.RecordRepository
}

func NewListRecordsHandler(records domain.RecordRepository) *ListRecordsHandler {
	return &ListRecordsHandler{records: records}
}

func (h *ListRecordsHandler) Handle(ctx context.Context, q ListRecordsQuery) ([]domain.TireRecord, error) {
	if traced, ok := h.records.(domain.ContextRecordRepository); ok {
		return traced.ListWithContext(ctx, q.Scope, q.Filter)
	}
	return h.records.List(q.Scope, q.Filter)
}

// ParseFilter builds a record filter from request query values. Malformed
// date values are skipped without error; the rest of the filter still
// applies.
func ParseFilter(values url.Values, now time.Time) domain.RecordFilter {
	filter := domain.RecordFilter{
		Search:    values.Get("search"),
		Brand:     values.Get("brand"),
		Status:    values.Get("status"),
		Group:     values.Get("group"),
		Season:    values.Get("season"),
		Warehouse: values.Get("warehouse"),
		Payment:   values.Get("payment"),
	}

	if raw := values.Get("featured"); raw == "true" || raw == "false" {
		featured := raw == "true"
		filter.Featured = &featured
	}

	switch values.Get("range") {
	case PresetOneMonth:
		start := now.AddDate(0, 0, -30)
		filter.Start = &start
	case PresetThreeMonths:
		start := now.AddDate(0, 0, -90)
		filter.Start = &start
	case PresetSixMonths:
		start := now.AddDate(0, 0, -180)
		filter.Start = &start
	case PresetCustom:
		if start, err := time.Parse(dateLayout, values.Get("start")); err == nil {
			filter.Start = &start
		}
		if end, err := time.Parse(dateLayout, values.Get("end")); err == nil {
			// the end day itself is included
			end = end.AddDate(0, 0, 1)
			filter.End = &end
		}
	}

	return filter
}
