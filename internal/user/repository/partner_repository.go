package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/user/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

// GormVendorRepository implements VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

func (r *GormVendorRepository) Create(vendor *domain.Vendor) error {
	if err := r.db.Create(vendor).Error; err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

func (r *GormVendorRepository) FindByID(scope authz.Scope, id uint) (*domain.Vendor, error) {
	var vendor domain.Vendor
	query := scope.Filter(r.db.Where("is_removed = ?", false), "owner_id")
	if err := query.First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vendor %d", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}
	return &vendor, nil
}

func (r *GormVendorRepository) FindAll(scope authz.Scope, limit, offset int) ([]domain.Vendor, error) {
	var vendors []domain.Vendor
	query := scope.Filter(r.db.Where("is_removed = ?", false), "owner_id").
		Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("failed to find vendors: %w", err)
	}
	return vendors, nil
}

func (r *GormVendorRepository) Update(vendor *domain.Vendor) error {
	if err := r.db.Save(vendor).Error; err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	return nil
}

func (r *GormVendorRepository) SoftDelete(id uint) error {
	result := r.db.Model(&domain.Vendor{}).Where("id = ?", id).Update("is_removed", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vendor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: vendor %d", apperr.ErrNotFound, id)
	}
	return nil
}

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Create(customer *domain.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *GormCustomerRepository) FindByID(scope authz.Scope, id uint) (*domain.Customer, error) {
	var customer domain.Customer
	query := scope.Filter(r.db.Where("is_removed = ?", false), "owner_id")
	if err := query.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindAll(scope authz.Scope, limit, offset int) ([]domain.Customer, error) {
	var customers []domain.Customer
	query := scope.Filter(r.db.Where("is_removed = ?", false), "owner_id").
		Order("first_name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}
	return customers, nil
}

func (r *GormCustomerRepository) Update(customer *domain.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (r *GormCustomerRepository) SoftDelete(id uint) error {
	result := r.db.Model(&domain.Customer{}).Where("id = ?", id).Update("is_removed", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: customer %d", apperr.ErrNotFound, id)
	}
	return nil
}
