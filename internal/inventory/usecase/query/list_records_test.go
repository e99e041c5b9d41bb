package query

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

func TestListExcludesReviewedAndRemoved(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo,
		domain.TireRecord{Counterparty: "Working", Status: domain.StatusEnRoute},
		domain.TireRecord{Counterparty: "Archived", Status: domain.StatusReviewed},
		domain.TireRecord{Counterparty: "Trashed", Status: domain.StatusEnRoute, IsRemoved: true},
	)

	handler := NewListRecordsHandler(repo)
	records, err := handler.Handle(context.Background(), ListRecordsQuery{Scope: authz.Scope{UserID: 1}})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "Working", records[0].Counterparty)
}

func TestReviewedListOnlyReviewed(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo,
		domain.TireRecord{Counterparty: "Working", Status: domain.StatusEnRoute},
		domain.TireRecord{Counterparty: "Archived", Status: domain.StatusReviewed},
	)

	handler := NewListRecordsHandler(repo)
	records, err := handler.Handle(context.Background(), ListRecordsQuery{
		Filter: domain.RecordFilter{Reviewed: true},
		Scope:  authz.Scope{UserID: 1},
	})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "Archived", records[0].Counterparty)
}

func TestListVisibilityScope(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo,
		domain.TireRecord{Counterparty: "Mine", OwnerID: 1},
		domain.TireRecord{Counterparty: "Theirs", OwnerID: 2},
	)

	handler := NewListRecordsHandler(repo)

	mine, err := handler.Handle(context.Background(), ListRecordsQuery{Scope: authz.Scope{UserID: 1}})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Counterparty)

	all, err := handler.Handle(context.Background(), ListRecordsQuery{Scope: authz.Scope{UserID: 3, Admin: true}})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListSearchMatchesCounterpartyAndProduct(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo,
		domain.TireRecord{Counterparty: "Yilmaz Auto", Product: "205/55 R16"},
		domain.TireRecord{Counterparty: "Demir Logistics", Product: "315/80 R22.5"},
	)

	handler := NewListRecordsHandler(repo)

	records, err := handler.Handle(context.Background(), ListRecordsQuery{
		Filter: domain.RecordFilter{Search: "yilmaz"},
		Scope:  authz.Scope{UserID: 1},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Yilmaz Auto", records[0].Counterparty)

	records, err = handler.Handle(context.Background(), ListRecordsQuery{
		Filter: domain.RecordFilter{Search: "315/80"},
		Scope:  authz.Scope{UserID: 1},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Demir Logistics", records[0].Counterparty)
}

func TestParseFilterPresets(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		preset string
		days   int
	}{
		{PresetOneMonth, 30},
		{PresetThreeMonths, 90},
		{PresetSixMonths, 180},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			filter := ParseFilter(url.Values{"range": {tt.preset}}, now)
			require.NotNil(t, filter.Start)
			assert.Equal(t, now.AddDate(0, 0, -tt.days), *filter.Start)
			assert.Nil(t, filter.End)
		})
	}
}

func TestParseFilterCustomRange(t *testing.T) {
	now := time.Now()

	filter := ParseFilter(url.Values{
		"range": {PresetCustom},
		"start": {"2026-01-01"},
		"end":   {"2026-01-31"},
	}, now)
	require.NotNil(t, filter.Start)
	require.NotNil(t, filter.End)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *filter.Start)
	// the end day is included, so the bound is the following midnight
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *filter.End)
}

func TestParseFilterSkipsMalformedDates(t *testing.T) {
	filter := ParseFilter(url.Values{
		"range":  {PresetCustom},
		"start":  {"01/01/2026"},
		"end":    {"not-a-date"},
		"status": {domain.StatusEnRoute},
	}, time.Now())

	assert.Nil(t, filter.Start)
	assert.Nil(t, filter.End)
	// the rest of the filter still applies
	assert.Equal(t, domain.StatusEnRoute, filter.Status)
}

func TestParseFilterFeatured(t *testing.T) {
	filter := ParseFilter(url.Values{"featured": {"true"}}, time.Now())
	require.NotNil(t, filter.Featured)
	assert.True(t, *filter.Featured)

	filter = ParseFilter(url.Values{"featured": {"maybe"}}, time.Now())
	assert.Nil(t, filter.Featured)
}
