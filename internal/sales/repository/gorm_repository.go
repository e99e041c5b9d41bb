package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/sales/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

// GormSaleRepository implements domain.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

func (r *GormSaleRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Sale{}, &domain.SaleDetail{}, &domain.Purchase{})
}

func (r *GormSaleRepository) Create(sale *domain.Sale) error {
	if err := r.db.Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

func (r *GormSaleRepository) FindByID(scope authz.Scope, id uint) (*domain.Sale, error) {
	var sale domain.Sale
	err := scope.Filter(r.db.Where("is_removed = ?", false), "owner_id").
		Preload("Details").
		First(&sale, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}
	return &sale, nil
}

func (r *GormSaleRepository) FindAll(scope authz.Scope, start, end *time.Time, limit, offset int) ([]domain.Sale, error) {
	if limit <= 0 {
		limit = 50
	}
	query := scope.Filter(r.db.Where("is_removed = ?", false), "owner_id").Preload("Details")
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("created_at < ?", *end)
	}
	var sales []domain.Sale
	err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func (r *GormSaleRepository) Update(sale *domain.Sale) error {
	if err := r.db.Save(sale).Error; err != nil {
		return fmt.Errorf("failed to update sale: %w", err)
	}
	return nil
}

func (r *GormSaleRepository) SoftDelete(id uint) error {
	result := r.db.Model(&domain.Sale{}).Where("id = ?", id).Update("is_removed", true)
	if result.Error != nil {
		return fmt.Errorf("failed to remove sale: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *GormSaleRepository) TopCustomers(scope authz.Scope, limit int) ([]domain.PartnerTotal, error) {
	if limit <= 0 {
		limit = 10
	}
	var totals []domain.PartnerTotal
	err := scope.Filter(r.db.Model(&domain.Sale{}), "owner_id").
		Where("is_removed = ? AND customer_name <> ''", false).
		Select("customer_name AS name, COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Group("customer_name").
		Order("total DESC").
		Limit(limit).
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank customers: %w", err)
	}
	return totals, nil
}

func (r *GormSaleRepository) SalesByDate(scope authz.Scope, start, end *time.Time) ([]domain.DateTotal, error) {
	query := scope.Filter(r.db.Model(&domain.Sale{}), "owner_id").
		Where("is_removed = ?", false)
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("created_at < ?", *end)
	}

	var totals []domain.DateTotal
	err := query.
		Select("SUBSTR(CAST(created_at AS TEXT), 1, 10) AS day, COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Group("SUBSTR(CAST(created_at AS TEXT), 1, 10)").
		Order("day ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales by date: %w", err)
	}
	return totals, nil
}

// GormPurchaseRepository implements domain.PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

func (r *GormPurchaseRepository) Create(purchase *domain.Purchase) error {
	if err := r.db.Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

func (r *GormPurchaseRepository) FindByID(scope authz.Scope, id uint) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := scope.Filter(r.db.Where("is_removed = ?", false), "owner_id").
		First(&purchase, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}
	return &purchase, nil
}

func (r *GormPurchaseRepository) FindAll(scope authz.Scope, limit, offset int) ([]domain.Purchase, error) {
	if limit <= 0 {
		limit = 50
	}
	var purchases []domain.Purchase
	err := scope.Filter(r.db.Where("is_removed = ?", false), "owner_id").
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

func (r *GormPurchaseRepository) Update(purchase *domain.Purchase) error {
	if err := r.db.Save(purchase).Error; err != nil {
		return fmt.Errorf("failed to update purchase: %w", err)
	}
	return nil
}

func (r *GormPurchaseRepository) SoftDelete(id uint) error {
	result := r.db.Model(&domain.Purchase{}).Where("id = ?", id).Update("is_removed", true)
	if result.Error != nil {
		return fmt.Errorf("failed to remove purchase: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *GormPurchaseRepository) TopVendors(scope authz.Scope, limit int) ([]domain.PartnerTotal, error) {
	if limit <= 0 {
		limit = 10
	}
	var totals []domain.PartnerTotal
	err := scope.Filter(r.db.Model(&domain.Purchase{}), "owner_id").
		Where("is_removed = ? AND vendor_name <> ''", false).
		Select("vendor_name AS name, COALESCE(SUM(total_value), 0) AS total, COUNT(*) AS count").
		Group("vendor_name").
		Order("total DESC").
		Limit(limit).
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank vendors: %w", err)
	}
	return totals, nil
}
