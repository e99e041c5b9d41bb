package command

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	catalogdomain "github.com/mestakip/tiretrack/internal/catalog/domain"
	catalogrepo "github.com/mestakip/tiretrack/internal/catalog/repository"
	salesrepo "github.com/mestakip/tiretrack/internal/sales/repository"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

func newPurchaseHandler(t *testing.T) (*PurchaseHandler, *catalogrepo.GormItemRepository, uint) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	categoryRepo := catalogrepo.NewGormCategoryRepository(db)
	require.NoError(t, categoryRepo.AutoMigrate())
	saleRepo := salesrepo.NewGormSaleRepository(db)
	require.NoError(t, saleRepo.AutoMigrate())

	itemRepo := catalogrepo.NewGormItemRepository(db)
	category := &catalogdomain.Category{Name: "Tires", Slug: "tires", OwnerID: 1}
	require.NoError(t, categoryRepo.Create(category))
	item := &catalogdomain.Item{
		Name:       "205/55 R16",
		Slug:       "205-55-r16",
		CategoryID: category.ID,
		Quantity:   10,
		OwnerID:    1,
	}
	require.NoError(t, itemRepo.Create(item))

	purchaseRepo := salesrepo.NewGormPurchaseRepository(db)
	return NewPurchaseHandler(purchaseRepo, itemRepo, nil), itemRepo, item.ID
}

func itemQuantity(t *testing.T, items *catalogrepo.GormItemRepository, id uint) int {
	t.Helper()
	item, err := items.FindByID(authz.Scope{Admin: true}, id)
	require.NoError(t, err)
	return item.Quantity
}

func TestPurchaseRecomputesTotalValue(t *testing.T) {
	handler, _, itemID := newPurchaseHandler(t)

	purchase, err := handler.HandleCreate(context.Background(), CreatePurchaseCommand{
		VendorName: "Acme Rubber",
		ItemID:     &itemID,
		Price:      80,
		Quantity:   5,
		Scope:      authz.Scope{UserID: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 400.0, purchase.TotalValue)
}

// Saving a purchase always adds its quantity to the linked item, including
// on updates of an existing purchase. Stock audits depend on this running
// total, so an edit after a 10-unit start with two 5-unit saves lands on 20.
func TestPurchaseStockAccumulatesOnEverySave(t *testing.T) {
	handler, items, itemID := newPurchaseHandler(t)
	scope := authz.Scope{UserID: 1}

	purchase, err := handler.HandleCreate(context.Background(), CreatePurchaseCommand{
		VendorName: "Acme Rubber",
		ItemID:     &itemID,
		Price:      80,
		Quantity:   5,
		Scope:      scope,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, itemQuantity(t, items, itemID))

	_, err = handler.HandleUpdate(context.Background(), UpdatePurchaseCommand{
		ID:         purchase.ID,
		VendorName: "Acme Rubber",
		ItemID:     &itemID,
		Price:      80,
		Quantity:   5,
		Scope:      scope,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, itemQuantity(t, items, itemID))
}

func TestPurchaseRejectsNonPositiveQuantity(t *testing.T) {
	handler, items, itemID := newPurchaseHandler(t)

	_, err := handler.HandleCreate(context.Background(), CreatePurchaseCommand{
		VendorName: "Acme Rubber",
		ItemID:     &itemID,
		Price:      80,
		Quantity:   0,
		Scope:      authz.Scope{UserID: 1},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
	assert.Equal(t, 10, itemQuantity(t, items, itemID))
}

func TestPurchaseWithoutItemSkipsStock(t *testing.T) {
	handler, items, itemID := newPurchaseHandler(t)

	_, err := handler.HandleCreate(context.Background(), CreatePurchaseCommand{
		VendorName: "Acme Rubber",
		Price:      80,
		Quantity:   5,
		Scope:      authz.Scope{UserID: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, itemQuantity(t, items, itemID))
}
