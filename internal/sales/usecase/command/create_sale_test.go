package command

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/sales/domain"
	salesrepo "github.com/mestakip/tiretrack/internal/sales/repository"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

func newSaleHandler(t *testing.T) (*SaleHandler, *salesrepo.GormSaleRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	repo := salesrepo.NewGormSaleRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return NewSaleHandler(repo), repo
}

func TestCreateSaleGeneratesReference(t *testing.T) {
	handler, _ := newSaleHandler(t)

	sale, err := handler.HandleCreate(CreateSaleCommand{
		CustomerName: "Yilmaz Auto",
		TotalAmount:  480,
		Lines:        []SaleLineInput{{ItemName: "205/55 R16", Quantity: 4, UnitPrice: 120, Total: 480}},
		Scope:        authz.Scope{UserID: 1},
	})
	require.NoError(t, err)

	_, err = uuid.Parse(sale.Reference)
	assert.NoError(t, err)
}

// The submitted total is stored untouched even when the line totals say
// otherwise; receipts show exactly what the operator entered.
func TestCreateSaleDoesNotReconcileTotals(t *testing.T) {
	handler, repo := newSaleHandler(t)

	sale, err := handler.HandleCreate(CreateSaleCommand{
		CustomerName: "Yilmaz Auto",
		TotalAmount:  100,
		Lines:        []SaleLineInput{{ItemName: "205/55 R16", Quantity: 4, UnitPrice: 120, Total: 480}},
		Scope:        authz.Scope{UserID: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, sale.TotalAmount)

	stored, err := repo.FindByID(authz.Scope{UserID: 1}, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stored.TotalAmount)
	require.Len(t, stored.Details, 1)
	assert.Equal(t, 480.0, stored.Details[0].Total)
}

func TestCreateSaleLineDefaults(t *testing.T) {
	handler, _ := newSaleHandler(t)

	sale, err := handler.HandleCreate(CreateSaleCommand{
		CustomerName: "Yilmaz Auto",
		Lines:        []SaleLineInput{{ItemName: "205/55 R16", Quantity: 0}},
		Scope:        authz.Scope{UserID: 1},
	})
	require.NoError(t, err)

	require.Len(t, sale.Details, 1)
	assert.Equal(t, 1, sale.Details[0].Quantity)
	assert.Equal(t, domain.LineStatusPending, sale.Details[0].DeliveryStatus)
}

func TestCreateSaleRequiresLines(t *testing.T) {
	handler, _ := newSaleHandler(t)

	_, err := handler.HandleCreate(CreateSaleCommand{
		CustomerName: "Yilmaz Auto",
		Scope:        authz.Scope{UserID: 1},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}
