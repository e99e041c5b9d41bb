package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

func TestNotifyBuildsLinkAndMarksRecord(t *testing.T) {
	repo := newTestRepo(t)
	record := &domain.TireRecord{
		Counterparty: "Yilmaz Auto",
		Product:      "205/55 R16",
		Brand:        "Michelin",
		Quantity:     4,
		Status:       domain.StatusDelivered,
		OwnerID:      1,
	}
	require.NoError(t, repo.Create(record))

	handler := NewNotifyRecordHandler(repo, nil)
	result, err := handler.Handle(context.Background(), NotifyRecordCommand{
		ID:    record.ID,
		Scope: authz.Scope{UserID: 1},
	})
	require.NoError(t, err)

	assert.Contains(t, result.Message, "Yilmaz Auto")
	assert.Contains(t, result.Message, "4 x Michelin 205/55 R16")
	assert.Contains(t, result.Message, "delivered")
	assert.Contains(t, result.URL, "https://wa.me/?text=")

	stored, err := repo.FindByID(authz.Scope{UserID: 1}, record.ID)
	require.NoError(t, err)
	assert.True(t, stored.NotificationSent)
}

func TestNotifyInvisibleRecordNotFound(t *testing.T) {
	repo := newTestRepo(t)
	record := seedRecord(t, repo, 1)

	handler := NewNotifyRecordHandler(repo, nil)
	_, err := handler.Handle(context.Background(), NotifyRecordCommand{
		ID:    record.ID,
		Scope: authz.Scope{UserID: 2},
	})
	assert.Error(t, err)
}
