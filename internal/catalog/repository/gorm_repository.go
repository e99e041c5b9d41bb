package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/catalog/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

// GormCategoryRepository implements domain.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Category{}, &domain.Item{})
}

func (r *GormCategoryRepository) Create(category *domain.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *GormCategoryRepository) FindByID(scope authz.Scope, id uint) (*domain.Category, error) {
	var category domain.Category
	err := scope.Filter(r.db, "owner_id").First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindAll(scope authz.Scope, limit, offset int) ([]domain.Category, error) {
	var categories []domain.Category
	err := scope.Filter(r.db, "owner_id").
		Order("name asc").
		Limit(limit).Offset(offset).
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *GormCategoryRepository) Update(category *domain.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (r *GormCategoryRepository) Delete(id uint) error {
	count, err := r.CountItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("category has %d items: %w", count, apperr.ErrValidation)
	}
	result := r.db.Delete(&domain.Category{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *GormCategoryRepository) CountItems(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Item{}).Where("category_id = ?", categoryID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count category items: %w", err)
	}
	return count, nil
}

func (r *GormCategoryRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Category{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check category slug: %w", err)
	}
	return count > 0, nil
}

// GormItemRepository implements domain.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) Create(item *domain.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

func (r *GormItemRepository) FindByID(scope authz.Scope, id uint) (*domain.Item, error) {
	var item domain.Item
	err := scope.Filter(r.db, "owner_id").Preload("Category").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return &item, nil
}

func (r *GormItemRepository) FindBySlug(scope authz.Scope, slug string) (*domain.Item, error) {
	var item domain.Item
	err := scope.Filter(r.db, "owner_id").Preload("Category").
		Where("slug = ?", slug).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by slug: %w", err)
	}
	return &item, nil
}

func (r *GormItemRepository) FindAll(scope authz.Scope, limit, offset int) ([]domain.Item, error) {
	var items []domain.Item
	err := scope.Filter(r.db, "owner_id").Preload("Category").
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (r *GormItemRepository) Search(scope authz.Scope, terms []string, limit, offset int) ([]domain.Item, error) {
	query := scope.Filter(r.db, "owner_id").Preload("Category")
	for _, term := range terms {
		query = query.Where("LOWER(name) LIKE ?", "%"+term+"%")
	}
	var items []domain.Item
	err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return items, nil
}

func (r *GormItemRepository) Lookup(term string, limit int) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Preload("Category").
		Where("LOWER(name) LIKE ?", "%"+term+"%").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up items: %w", err)
	}
	return items, nil
}

func (r *GormItemRepository) Update(item *domain.Item) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

func (r *GormItemRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Item{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *GormItemRepository) AddQuantity(id uint, delta int) error {
	result := r.db.Model(&domain.Item{}).Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust item quantity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *GormItemRepository) Count(scope authz.Scope) (int64, error) {
	var count int64
	err := scope.Filter(r.db.Model(&domain.Item{}), "owner_id").Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

func (r *GormItemRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Item{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check item slug: %w", err)
	}
	return count > 0, nil
}
