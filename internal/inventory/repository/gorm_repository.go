package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

// GormRecordRepository implements domain.RecordRepository using GORM
type GormRecordRepository struct {
	db *gorm.DB
}

func NewGormRecordRepository(db *gorm.DB) *GormRecordRepository {
	return &GormRecordRepository{db: db}
}

func (r *GormRecordRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.TireRecord{})
}

func (r *GormRecordRepository) Create(record *domain.TireRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (r *GormRecordRepository) FindByID(scope authz.Scope, id uint) (*domain.TireRecord, error) {
	var record domain.TireRecord
	err := scope.Filter(r.db, "owner_id").First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record: %w", err)
	}
	return &record, nil
}

// visible scopes a query to non-removed rows the caller may see
func (r *GormRecordRepository) visible(scope authz.Scope) *gorm.DB {
	return scope.Filter(r.db.Model(&domain.TireRecord{}), "owner_id").
		Where("is_removed = ?", false)
}

func (r *GormRecordRepository) List(scope authz.Scope, filter domain.RecordFilter) ([]domain.TireRecord, error) {
	query := r.visible(scope)
	if filter.Reviewed {
		query = query.Where("status = ?", domain.StatusReviewed)
	} else {
		query = query.Where("status <> ?", domain.StatusReviewed)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(counterparty) LIKE ? OR LOWER(product) LIKE ?", pattern, pattern)
	}
	if filter.Brand != "" {
		query = query.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(filter.Brand)+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Group != "" {
		query = query.Where("\"group\" = ?", filter.Group)
	}
	if filter.Season != "" {
		query = query.Where("season = ?", filter.Season)
	}
	if filter.Warehouse != "" {
		query = query.Where("warehouse = ?", filter.Warehouse)
	}
	if filter.Payment != "" {
		query = query.Where("payment = ?", filter.Payment)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Start != nil {
		query = query.Where("created_at >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("created_at < ?", *filter.End)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var records []domain.TireRecord
	err := query.Order("created_at desc").Limit(limit).Offset(filter.Offset).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

func (r *GormRecordRepository) ListByStatus(scope authz.Scope, status string, limit, offset int) ([]domain.TireRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []domain.TireRecord
	err := r.visible(scope).Where("status = ?", status).
		Order("updated_at desc").
		Limit(limit).Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records by status: %w", err)
	}
	return records, nil
}

func (r *GormRecordRepository) ListRemoved(scope authz.Scope, limit, offset int) ([]domain.TireRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []domain.TireRecord
	err := scope.Filter(r.db.Model(&domain.TireRecord{}), "owner_id").
		Where("is_removed = ?", true).
		Order("updated_at desc").
		Limit(limit).Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list removed records: %w", err)
	}
	return records, nil
}

func (r *GormRecordRepository) Update(record *domain.TireRecord) error {
	if err := r.db.Save(record).Error; err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

// byYear restricts a query to rows created in the given year; zero leaves
// the query untouched.
func byYear(query *gorm.DB, year int) *gorm.DB {
	if year <= 0 {
		return query
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return query.Where("created_at >= ? AND created_at < ?", start, start.AddDate(1, 0, 0))
}

func (r *GormRecordRepository) Totals(scope authz.Scope, year int) (int64, float64, error) {
	var row struct {
		Quantity int64
		Value    float64
	}
	err := byYear(r.visible(scope), year).
		Where("status <> ?", domain.StatusCancelled).
		Select("COALESCE(SUM(quantity), 0) AS quantity, COALESCE(SUM(total_price), 0) AS value").
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to compute totals: %w", err)
	}
	return row.Quantity, row.Value, nil
}

func (r *GormRecordRepository) QuantityByWarehouse(scope authz.Scope, year int) (map[string]int64, error) {
	var rows []struct {
		Warehouse string
		Quantity  int64
	}
	err := byYear(r.visible(scope), year).
		Where("status <> ?", domain.StatusCancelled).
		Select("warehouse, COALESCE(SUM(quantity), 0) AS quantity").
		Group("warehouse").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum warehouse quantities: %w", err)
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Warehouse] = row.Quantity
	}
	return result, nil
}

func (r *GormRecordRepository) CountByStatus(scope authz.Scope, year int) ([]domain.StatusCount, error) {
	var counts []domain.StatusCount
	err := byYear(r.visible(scope), year).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count records by status: %w", err)
	}
	return counts, nil
}

func (r *GormRecordRepository) BrandDistribution(scope authz.Scope, year, limit int) ([]domain.BrandCount, error) {
	if limit <= 0 {
		limit = 10
	}
	var counts []domain.BrandCount
	err := byYear(r.visible(scope), year).
		Where("brand <> ''").
		Select("UPPER(brand) AS brand, COUNT(*) AS count, COALESCE(SUM(quantity), 0) AS quantity").
		Group("UPPER(brand)").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate brands: %w", err)
	}
	return counts, nil
}

func (r *GormRecordRepository) PaymentDistribution(scope authz.Scope, year int) ([]domain.PaymentCount, error) {
	var counts []domain.PaymentCount
	err := byYear(r.visible(scope), year).
		Select("CASE WHEN payment = '' THEN 'UNSPECIFIED' ELSE payment END AS payment, COUNT(*) AS count, COALESCE(SUM(quantity), 0) AS quantity, COALESCE(SUM(total_price), 0) AS total_price").
		Group("CASE WHEN payment = '' THEN 'UNSPECIFIED' ELSE payment END").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payments: %w", err)
	}
	return counts, nil
}

func (r *GormRecordRepository) SeasonGroupQuantities(scope authz.Scope, year int) ([]domain.SeasonCell, error) {
	var cells []domain.SeasonCell
	err := byYear(r.visible(scope), year).
		Where("status = ?", domain.StatusReviewed).
		Select("\"group\", season, COALESCE(SUM(quantity), 0) AS quantity").
		Group("\"group\", season").
		Scan(&cells).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate season quantities: %w", err)
	}
	return cells, nil
}

func (r *GormRecordRepository) Recent(scope authz.Scope, limit int) ([]domain.TireRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var records []domain.TireRecord
	err := r.visible(scope).
		Order("created_at desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent records: %w", err)
	}
	return records, nil
}
