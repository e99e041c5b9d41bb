package query

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/sales/domain"
	salesrepo "github.com/mestakip/tiretrack/internal/sales/repository"
	"github.com/mestakip/tiretrack/pkg/authz"
)

func newReportRepos(t *testing.T) (*salesrepo.GormSaleRepository, *salesrepo.GormPurchaseRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sales := salesrepo.NewGormSaleRepository(db)
	require.NoError(t, sales.AutoMigrate())
	return sales, salesrepo.NewGormPurchaseRepository(db)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestSalesByDateGroupsPerDay(t *testing.T) {
	sales, purchases := newReportRepos(t)

	for _, sale := range []domain.Sale{
		{Reference: "a", CustomerName: "Yilmaz Auto", TotalAmount: 100, OwnerID: 1, CreatedAt: day(2026, time.May, 3)},
		{Reference: "b", CustomerName: "Yilmaz Auto", TotalAmount: 250, OwnerID: 1, CreatedAt: day(2026, time.May, 3)},
		{Reference: "c", CustomerName: "Demir Tires", TotalAmount: 75, OwnerID: 1, CreatedAt: day(2026, time.May, 4)},
	} {
		require.NoError(t, sales.Create(&sale))
	}

	handler := NewTopPartnersHandler(sales, purchases)
	report, err := handler.Handle(TopPartnersQuery{Scope: authz.Scope{UserID: 1}})
	require.NoError(t, err)

	require.Len(t, report.SalesByDate, 2)
	assert.Equal(t, "2026-05-03", report.SalesByDate[0].Day)
	assert.Equal(t, 350.0, report.SalesByDate[0].Total)
	assert.Equal(t, int64(2), report.SalesByDate[0].Count)
	assert.Equal(t, "2026-05-04", report.SalesByDate[1].Day)
	assert.Equal(t, 75.0, report.SalesByDate[1].Total)
}

func TestSalesByDateHonorsRange(t *testing.T) {
	sales, purchases := newReportRepos(t)

	for _, sale := range []domain.Sale{
		{Reference: "a", CustomerName: "Yilmaz Auto", TotalAmount: 100, OwnerID: 1, CreatedAt: day(2026, time.May, 3)},
		{Reference: "b", CustomerName: "Demir Tires", TotalAmount: 75, OwnerID: 1, CreatedAt: day(2026, time.June, 4)},
	} {
		require.NoError(t, sales.Create(&sale))
	}

	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	handler := NewTopPartnersHandler(sales, purchases)
	report, err := handler.Handle(TopPartnersQuery{Scope: authz.Scope{UserID: 1}, Start: &start})
	require.NoError(t, err)

	require.Len(t, report.SalesByDate, 1)
	assert.Equal(t, "2026-06-04", report.SalesByDate[0].Day)
}

func TestTopCustomersRankedByTotal(t *testing.T) {
	sales, purchases := newReportRepos(t)

	for _, sale := range []domain.Sale{
		{Reference: "a", CustomerName: "Yilmaz Auto", TotalAmount: 100, OwnerID: 1},
		{Reference: "b", CustomerName: "Yilmaz Auto", TotalAmount: 250, OwnerID: 1},
		{Reference: "c", CustomerName: "Demir Tires", TotalAmount: 500, OwnerID: 1},
	} {
		require.NoError(t, sales.Create(&sale))
	}

	handler := NewTopPartnersHandler(sales, purchases)
	report, err := handler.Handle(TopPartnersQuery{Scope: authz.Scope{UserID: 1}})
	require.NoError(t, err)

	require.Len(t, report.Customers, 2)
	assert.Equal(t, "Demir Tires", report.Customers[0].Name)
	assert.Equal(t, 500.0, report.Customers[0].Total)
	assert.Equal(t, "Yilmaz Auto", report.Customers[1].Name)
	assert.Equal(t, int64(2), report.Customers[1].Count)
}
