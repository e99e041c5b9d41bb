package command

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/internal/inventory/repository"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

func newTestRepo(t *testing.T) *repository.GormRecordRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	repo := repository.NewGormRecordRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func seedRecord(t *testing.T, repo *repository.GormRecordRepository, ownerID uint) *domain.TireRecord {
	t.Helper()
	record := &domain.TireRecord{
		Counterparty: "Acme",
		Product:      "205/55 R16",
		Status:       domain.StatusEnRoute,
		OwnerID:      ownerID,
	}
	require.NoError(t, repo.Create(record))
	return record
}

func TestCancelRequiresReason(t *testing.T) {
	repo := newTestRepo(t)
	record := seedRecord(t, repo, 1)
	handler := NewCancelRecordHandler(repo, nil)

	_, err := handler.Handle(context.Background(), CancelRecordCommand{
		ID:     record.ID,
		Reason: "ab",
		Scope:  authz.Scope{UserID: 1},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	// a reason padded with whitespace is trimmed before the length check
	_, err = handler.Handle(context.Background(), CancelRecordCommand{
		ID:     record.ID,
		Reason: "  ab  ",
		Scope:  authz.Scope{UserID: 1},
	})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	cancelled, err := handler.Handle(context.Background(), CancelRecordCommand{
		ID:     record.ID,
		Reason: "abc",
		Scope:  authz.Scope{UserID: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Equal(t, "abc", cancelled.CancelReason)
}

func TestCancelDeniedForNonOwner(t *testing.T) {
	repo := newTestRepo(t)
	record := seedRecord(t, repo, 1)
	handler := NewCancelRecordHandler(repo, nil)

	_, err := handler.Handle(context.Background(), CancelRecordCommand{
		ID:     record.ID,
		Reason: "not mine",
		Scope:  authz.Scope{UserID: 2},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrPermissionDenied))

	// the record is untouched
	stored, err := repo.FindByID(authz.Scope{Admin: true}, record.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnRoute, stored.Status)
	assert.Empty(t, stored.CancelReason)
}

func TestCancelAllowedForAdmin(t *testing.T) {
	repo := newTestRepo(t)
	record := seedRecord(t, repo, 1)
	handler := NewCancelRecordHandler(repo, nil)

	cancelled, err := handler.Handle(context.Background(), CancelRecordCommand{
		ID:     record.ID,
		Reason: "duplicate entry",
		Scope:  authz.Scope{UserID: 99, Admin: true},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
}

func TestCancelOverwritesReason(t *testing.T) {
	repo := newTestRepo(t)
	record := seedRecord(t, repo, 1)
	handler := NewCancelRecordHandler(repo, nil)
	scope := authz.Scope{UserID: 1}

	_, err := handler.Handle(context.Background(), CancelRecordCommand{ID: record.ID, Reason: "first reason", Scope: scope})
	require.NoError(t, err)

	cancelled, err := handler.Handle(context.Background(), CancelRecordCommand{ID: record.ID, Reason: "second reason", Scope: scope})
	require.NoError(t, err)
	assert.Equal(t, "second reason", cancelled.CancelReason)
}
