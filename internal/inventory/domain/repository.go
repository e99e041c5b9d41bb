package domain

import (
	"context"
	"time"

	"github.com/mestakip/tiretrack/pkg/authz"
)

// RecordFilter narrows record listings. Zero values mean "no filter"; the
// date bounds are inclusive of Start and exclusive of End. Reviewed selects
// the archive view (only REVIEWED rows) instead of the working list.
type RecordFilter struct {
	Search    string
	Brand     string
	Status    string
	Reviewed  bool
	Group     string
	Season    string
	Warehouse string
	Payment   string
	Featured  *bool
	Start     *time.Time
	End       *time.Time
	Limit     int
	Offset    int
}

// StatusCount pairs a status value with its row count
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// BrandCount aggregates records under an uppercased brand label
type BrandCount struct {
	Brand    string `json:"brand"`
	Count    int64  `json:"count"`
	Quantity int64  `json:"quantity"`
}

// PaymentCount rolls up rows per payment method: count, summed quantity and
// summed price. Records without a payment method are reported under
// UNSPECIFIED.
type PaymentCount struct {
	Payment    string  `json:"payment"`
	Count      int64   `json:"count"`
	Quantity   int64   `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// SeasonCell is one cell of the season by group matrix
type SeasonCell struct {
	Group    string `json:"group"`
	Season   string `json:"season"`
	Quantity int64  `json:"quantity"`
}

// RecordRepository defines the contract for tire record data access. Every
// read takes the caller's visibility scope; non-admin callers only see rows
// they own.
type RecordRepository interface {
	Create(record *TireRecord) error
	FindByID(scope authz.Scope, id uint) (*TireRecord, error)
	// List returns non-removed rows. The working list excludes REVIEWED;
	// filter.Reviewed flips to the archive view instead.
	List(scope authz.Scope, filter RecordFilter) ([]TireRecord, error)
	// ListByStatus returns non-removed rows in a single status
	ListByStatus(scope authz.Scope, status string, limit, offset int) ([]TireRecord, error)
	// ListRemoved returns the trash view
	ListRemoved(scope authz.Scope, limit, offset int) ([]TireRecord, error)
	Update(record *TireRecord) error

	// Aggregates take an optional year; zero means all years.
	Totals(scope authz.Scope, year int) (quantity int64, value float64, err error)
	QuantityByWarehouse(scope authz.Scope, year int) (map[string]int64, error)
	CountByStatus(scope authz.Scope, year int) ([]StatusCount, error)
	BrandDistribution(scope authz.Scope, year, limit int) ([]BrandCount, error)
	PaymentDistribution(scope authz.Scope, year int) ([]PaymentCount, error)
	// SeasonGroupQuantities sums quantities of REVIEWED rows per group and
	// season
	SeasonGroupQuantities(scope authz.Scope, year int) ([]SeasonCell, error)
	Recent(scope authz.Scope, limit int) ([]TireRecord, error)
}

// ContextRecordRepository is implemented by repositories that record a span
// per query. Request-path callers prefer these variants when available.
type ContextRecordRepository interface {
	CreateWithContext(ctx context.Context, record *TireRecord) error
	FindByIDWithContext(ctx context.Context, scope authz.Scope, id uint) (*TireRecord, error)
	ListWithContext(ctx context.Context, scope authz.Scope, filter RecordFilter) ([]TireRecord, error)
	UpdateWithContext(ctx context.Context, record *TireRecord) error
}
