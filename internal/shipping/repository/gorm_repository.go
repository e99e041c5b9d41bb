package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/shipping/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

// GormDeliveryRepository implements domain.DeliveryRepository using GORM
type GormDeliveryRepository struct {
	db *gorm.DB
}

func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

func (r *GormDeliveryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Delivery{})
}

func (r *GormDeliveryRepository) Create(delivery *domain.Delivery) error {
	if err := r.db.Create(delivery).Error; err != nil {
		return fmt.Errorf("failed to create delivery: %w", err)
	}
	return nil
}

func (r *GormDeliveryRepository) FindByID(scope authz.Scope, id uint) (*domain.Delivery, error) {
	var delivery domain.Delivery
	err := scope.Filter(r.db, "owner_id").First(&delivery, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find delivery: %w", err)
	}
	return &delivery, nil
}

func (r *GormDeliveryRepository) FindAll(scope authz.Scope, delivered *bool, limit, offset int) ([]domain.Delivery, error) {
	if limit <= 0 {
		limit = 50
	}
	query := scope.Filter(r.db, "owner_id")
	if delivered != nil {
		query = query.Where("is_delivered = ?", *delivered)
	}
	var deliveries []domain.Delivery
	err := query.Order("date asc, created_at desc").
		Limit(limit).Offset(offset).
		Find(&deliveries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	return deliveries, nil
}

func (r *GormDeliveryRepository) SearchByCustomer(scope authz.Scope, name string, limit, offset int) ([]domain.Delivery, error) {
	if limit <= 0 {
		limit = 50
	}
	var deliveries []domain.Delivery
	err := scope.Filter(r.db, "owner_id").
		Where("LOWER(customer_name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&deliveries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search deliveries: %w", err)
	}
	return deliveries, nil
}

func (r *GormDeliveryRepository) Update(delivery *domain.Delivery) error {
	if err := r.db.Save(delivery).Error; err != nil {
		return fmt.Errorf("failed to update delivery: %w", err)
	}
	return nil
}

func (r *GormDeliveryRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Delivery{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete delivery: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
