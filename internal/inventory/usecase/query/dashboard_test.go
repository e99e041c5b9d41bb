package query

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/internal/inventory/repository"
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

func mustCreate(t *testing.T, repo *repository.GormRecordRepository, records ...domain.TireRecord) {
	t.Helper()
	for i := range records {
		if records[i].Counterparty == "" {
			records[i].Counterparty = "Acme"
		}
		if records[i].Product == "" {
			records[i].Product = "205/55 R16"
		}
		if records[i].OwnerID == 0 {
			records[i].OwnerID = 1
		}
		records[i].Normalize()
		require.NoError(t, repo.Create(&records[i]))
	}
}

func TestSeasonMatrixCountsReviewedOnly(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo,
		domain.TireRecord{Group: domain.GroupPassenger, Season: domain.SeasonSummer, Quantity: 2, Status: domain.StatusReviewed},
		domain.TireRecord{Group: domain.GroupPassenger, Season: domain.SeasonSummer, Quantity: 1, Status: domain.StatusReviewed},
		domain.TireRecord{Group: domain.GroupCommercial, Season: domain.SeasonSummer, Quantity: 2, Status: domain.StatusReviewed},
		// not reviewed: must not count
		domain.TireRecord{Group: domain.GroupPassenger, Season: domain.SeasonWinter, Quantity: 4, Status: domain.StatusDelivered},
		// battery rows never enter the matrix
		domain.TireRecord{Group: domain.GroupBattery, Quantity: 6, Status: domain.StatusReviewed},
	)

	handler := NewDashboardHandler(repo)
	dashboard, err := handler.Handle(DashboardQuery{Scope: authz.Scope{UserID: 1}})
	require.NoError(t, err)

	matrix := dashboard.SeasonMatrix
	assert.Equal(t, []string{domain.SeasonSummer, domain.SeasonWinter, domain.SeasonAllSeason}, matrix.Seasons)
	assert.Equal(t, []int64{3, 0, 0}, matrix.Groups[domain.GroupPassenger])
	assert.Equal(t, []int64{2, 0, 0}, matrix.Groups[domain.GroupCommercial])
	assert.NotContains(t, matrix.Groups, domain.GroupBattery)
}

func TestBrandDistributionMergesCase(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo,
		domain.TireRecord{Brand: "Michelin", Quantity: 4},
		domain.TireRecord{Brand: "michelin", Quantity: 2},
		domain.TireRecord{Brand: "MICHELIN", Quantity: 1},
		domain.TireRecord{Brand: "Goodyear", Quantity: 8},
	)

	handler := NewDashboardHandler(repo)
	dashboard, err := handler.Handle(DashboardQuery{Scope: authz.Scope{UserID: 1}})
	require.NoError(t, err)

	require.Len(t, dashboard.BrandCounts, 2)
	assert.Equal(t, "MICHELIN", dashboard.BrandCounts[0].Brand)
	assert.Equal(t, int64(3), dashboard.BrandCounts[0].Count)
	assert.Equal(t, int64(7), dashboard.BrandCounts[0].Quantity)
}

func TestPaymentDistributionReportsUnspecified(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo,
		domain.TireRecord{Payment: domain.PaymentCard, Quantity: 4, TotalPrice: 400},
		domain.TireRecord{Payment: domain.PaymentCard, Quantity: 6, TotalPrice: 600},
		domain.TireRecord{Payment: "", Quantity: 2, TotalPrice: 150},
	)

	handler := NewDashboardHandler(repo)
	dashboard, err := handler.Handle(DashboardQuery{Scope: authz.Scope{UserID: 1}})
	require.NoError(t, err)

	byPayment := map[string]domain.PaymentCount{}
	for _, pc := range dashboard.PaymentCounts {
		byPayment[pc.Payment] = pc
	}

	card := byPayment[domain.PaymentCard]
	assert.Equal(t, int64(2), card.Count)
	assert.Equal(t, int64(10), card.Quantity)
	assert.Equal(t, 1000.0, card.TotalPrice)

	unspecified := byPayment["UNSPECIFIED"]
	assert.Equal(t, int64(1), unspecified.Count)
	assert.Equal(t, int64(2), unspecified.Quantity)
	assert.Equal(t, 150.0, unspecified.TotalPrice)
}

func TestDashboardTotalsAndWarehouses(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo,
		domain.TireRecord{Quantity: 4, TotalPrice: 400, Warehouse: domain.WarehouseStock, Status: domain.StatusEnRoute},
		domain.TireRecord{Quantity: 2, TotalPrice: 300, Warehouse: domain.WarehouseSales, Status: domain.StatusInProgress},
		domain.TireRecord{Quantity: 6, TotalPrice: 900, Warehouse: domain.WarehouseStock, Status: domain.StatusEnRoute},
		// cancelled rows stay out of the totals
		domain.TireRecord{Quantity: 9, TotalPrice: 5000, Warehouse: domain.WarehouseStock, Status: domain.StatusCancelled, CancelReason: "duplicate"},
	)

	handler := NewDashboardHandler(repo)
	dashboard, err := handler.Handle(DashboardQuery{Scope: authz.Scope{UserID: 1}})
	require.NoError(t, err)

	assert.Equal(t, int64(12), dashboard.TotalQuantity)
	assert.Equal(t, 1600.0, dashboard.TotalValue)
	assert.Equal(t, int64(10), dashboard.StockQuantity)
	assert.Equal(t, int64(2), dashboard.SalesQuantity)
	assert.Equal(t, int64(2), dashboard.EnRouteCount)
	assert.Equal(t, int64(1), dashboard.InProgressCount)

	byStatus := map[string]int64{}
	for _, sc := range dashboard.StatusCounts {
		byStatus[sc.Status] = sc.Count
	}
	assert.Equal(t, int64(1), byStatus[domain.StatusCancelled])
}

func TestDashboardYearFilter(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo,
		domain.TireRecord{Quantity: 4, CreatedAt: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)},
		domain.TireRecord{Quantity: 6, CreatedAt: time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)},
	)

	handler := NewDashboardHandler(repo)

	filtered, err := handler.Handle(DashboardQuery{Scope: authz.Scope{UserID: 1}, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, int64(4), filtered.TotalQuantity)

	all, err := handler.Handle(DashboardQuery{Scope: authz.Scope{UserID: 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(10), all.TotalQuantity)
}

func TestDashboardRespectsVisibility(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo,
		domain.TireRecord{Quantity: 4, OwnerID: 1},
		domain.TireRecord{Quantity: 6, OwnerID: 2},
	)

	handler := NewDashboardHandler(repo)

	mine, err := handler.Handle(DashboardQuery{Scope: authz.Scope{UserID: 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(4), mine.TotalQuantity)

	all, err := handler.Handle(DashboardQuery{Scope: authz.Scope{UserID: 9, Admin: true}})
	require.NoError(t, err)
	assert.Equal(t, int64(10), all.TotalQuantity)
}
