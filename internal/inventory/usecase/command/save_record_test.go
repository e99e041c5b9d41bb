package command

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/internal/inventory/repository"
	"github.com/mestakip/tiretrack/pkg/authz"
)

// New records always enter the pipeline at EN_ROUTE; the creation form has
// no status field, so nothing a client posts can change that.
func TestCreateAlwaysStartsEnRoute(t *testing.T) {
	repo := newTestRepo(t)
	handler := NewSaveRecordHandler(repo)

	record, err := handler.HandleCreate(context.Background(), CreateRecordCommand{
		Counterparty: "Acme",
		Product:      "205/55 R16",
		Scope:        authz.Scope{UserID: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnRoute, record.Status)

	stored, err := repo.FindByID(authz.Scope{UserID: 1}, record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnRoute, stored.Status)
}

func TestUpdateChangesStatusAndNotificationSent(t *testing.T) {
	repo := newTestRepo(t)
	handler := NewSaveRecordHandler(repo)
	scope := authz.Scope{UserID: 1}

	record, err := handler.HandleCreate(context.Background(), CreateRecordCommand{
		Counterparty: "Acme",
		Product:      "205/55 R16",
		Scope:        scope,
	})
	require.NoError(t, err)

	updated, err := handler.HandleUpdate(context.Background(), UpdateRecordCommand{
		ID:               record.ID,
		Counterparty:     "Acme",
		Product:          "205/55 R16",
		Status:           domain.StatusReviewed,
		NotificationSent: true,
		Scope:            scope,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReviewed, updated.Status)
	assert.True(t, updated.NotificationSent)

	reverted, err := handler.HandleUpdate(context.Background(), UpdateRecordCommand{
		ID:           record.ID,
		Counterparty: "Acme",
		Product:      "205/55 R16",
		Status:       domain.StatusDelivered,
		Scope:        scope,
	})
	require.NoError(t, err)
	assert.False(t, reverted.NotificationSent)
}

// The traced repository is what the server wires in; the save path must
// work identically through it.
func TestSaveThroughTracedRepository(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	traced := repository.NewGormRecordRepositoryWithTracing(db)
	require.NoError(t, traced.AutoMigrate())

	handler := NewSaveRecordHandler(traced)
	scope := authz.Scope{UserID: 1}

	record, err := handler.HandleCreate(context.Background(), CreateRecordCommand{
		Counterparty: "Acme",
		Product:      "205/55 R16",
		Quantity:     4,
		Scope:        scope,
	})
	require.NoError(t, err)

	updated, err := handler.HandleUpdate(context.Background(), UpdateRecordCommand{
		ID:           record.ID,
		Counterparty: "Acme",
		Product:      "205/55 R16",
		Status:       domain.StatusInProgress,
		Scope:        scope,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, updated.Status)

	stored, err := traced.FindByIDWithContext(context.Background(), scope, record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, stored.Status)
}
