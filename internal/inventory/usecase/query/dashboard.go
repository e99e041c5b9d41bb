package query

import (
	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/pkg/authz"
)

// seasonOrder fixes the column order of the season matrix
var seasonOrder = []string{domain.SeasonSummer, domain.SeasonWinter, domain.SeasonAllSeason}

// matrixGroups are the tire groups reported in the season matrix; batteries
// and wheels have no season
var matrixGroups = []string{domain.GroupPassenger, domain.GroupCommercial}

// SeasonMatrix holds reviewed quantities per group, ordered SUMMER, WINTER,
// ALL_SEASON. Groups without reviewed rows still appear with zero columns.
type SeasonMatrix struct {
	Seasons []string           `json:"seasons"`
	Groups  map[string][]int64 `json:"groups"`
}

// Dashboard aggregates the landing page numbers
type Dashboard struct {
	TotalQuantity     int64                 `json:"total_quantity"`
	TotalValue        float64               `json:"total_value"`
	StockQuantity     int64                 `json:"stock_quantity"`
	SalesQuantity     int64                 `json:"sales_quantity"`
	EnRouteCount      int64                 `json:"en_route_count"`
	InProgressCount   int64                 `json:"in_progress_count"`
	StatusCounts      []domain.StatusCount  `json:"status_counts"`
	BrandCounts       []domain.BrandCount   `json:"brand_counts"`
	PaymentCounts     []domain.PaymentCount `json:"payment_counts"`
	SeasonMatrix      SeasonMatrix          `json:"season_matrix"`
	RecentRecords     []domain.TireRecord   `json:"recent_records"`
}

type DashboardQuery struct {
	Scope authz.Scope
	// Year narrows every rollup to records created in that year; zero
	// means no restriction.
	Year int
}

type DashboardHandler struct {
	records domain.RecordRepository
}

func NewDashboardHandler(records domain.RecordRepository) *DashboardHandler {
	return &DashboardHandler{records: records}
}

func (h *DashboardHandler) Handle(q DashboardQuery) (*Dashboard, error) {
	dashboard := &Dashboard{}

	quantity, value, err := h.records.Totals(q.Scope, q.Year)
	if err != nil {
		return nil, err
	}
	dashboard.TotalQuantity = quantity
	dashboard.TotalValue = value

	byWarehouse, err := h.records.QuantityByWarehouse(q.Scope, q.Year)
	if err != nil {
		return nil, err
	}
	dashboard.StockQuantity = byWarehouse[domain.WarehouseStock]
	dashboard.SalesQuantity = byWarehouse[domain.WarehouseSales]

	dashboard.StatusCounts, err = h.records.CountByStatus(q.Scope, q.Year)
	if err != nil {
		return nil, err
	}
	for _, sc := range dashboard.StatusCounts {
		switch sc.Status {
		case domain.StatusEnRoute:
			dashboard.EnRouteCount = sc.Count
		case domain.StatusInProgress:
			dashboard.InProgressCount = sc.Count
		}
	}

	dashboard.BrandCounts, err = h.records.BrandDistribution(q.Scope, q.Year, 10)
	if err != nil {
		return nil, err
	}

	dashboard.PaymentCounts, err = h.records.PaymentDistribution(q.Scope, q.Year)
	if err != nil {
		return nil, err
	}

	cells, err := h.records.SeasonGroupQuantities(q.Scope, q.Year)
	if err != nil {
		return nil, err
	}
	dashboard.SeasonMatrix = buildSeasonMatrix(cells)

	dashboard.RecentRecords, err = h.records.Recent(q.Scope, 10)
	if err != nil {
		return nil, err
	}

	return dashboard, nil
}

func buildSeasonMatrix(cells []domain.SeasonCell) SeasonMatrix {
	matrix := SeasonMatrix{
		Seasons: seasonOrder,
		Groups:  make(map[string][]int64, len(matrixGroups)),
	}
	for _, group := range matrixGroups {
		matrix.Groups[group] = make([]int64, len(seasonOrder))
	}
	for _, cell := range cells {
		row, ok := matrix.Groups[cell.Group]
		if !ok {
			continue
		}
		for i, season := range seasonOrder {
			if cell.Season == season {
				row[i] += cell.Quantity
			}
		}
	}
	return matrix
}
