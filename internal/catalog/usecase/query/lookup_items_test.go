package query

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/catalog/domain"
	"github.com/mestakip/tiretrack/internal/catalog/repository"
)

func newItemRepo(t *testing.T) (*repository.GormItemRepository, uint) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	categoryRepo := repository.NewGormCategoryRepository(db)
	require.NoError(t, categoryRepo.AutoMigrate())

	category := &domain.Category{Name: "Tires", Slug: "tires", OwnerID: 1}
	require.NoError(t, categoryRepo.Create(category))
	return repository.NewGormItemRepository(db), category.ID
}

func TestLookupShape(t *testing.T) {
	items, categoryID := newItemRepo(t)
	require.NoError(t, items.Create(&domain.Item{
		Name:       "205/55 R16 Michelin",
		Slug:       "205-55-r16-michelin",
		CategoryID: categoryID,
		Price:      120,
		Quantity:   40,
		OwnerID:    1,
	}))

	handler := NewLookupItemsHandler(items)
	results, err := handler.Handle(LookupItemsQuery{Term: "michelin"})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "205/55 R16 Michelin", results[0].Text)
	assert.Equal(t, "Tires", results[0].Category)
	// the sale form seeds each row with a single unit regardless of stock
	assert.Equal(t, 1, results[0].Quantity)
	assert.Equal(t, 0, results[0].TotalProduct)
}

func TestLookupCapsAtTen(t *testing.T) {
	items, categoryID := newItemRepo(t)
	for i := 0; i < 15; i++ {
		require.NoError(t, items.Create(&domain.Item{
			Name:       fmt.Sprintf("Winter tire %02d", i),
			Slug:       fmt.Sprintf("winter-tire-%02d", i),
			CategoryID: categoryID,
			OwnerID:    1,
		}))
	}

	handler := NewLookupItemsHandler(items)
	results, err := handler.Handle(LookupItemsQuery{Term: "winter"})
	require.NoError(t, err)
	assert.Len(t, results, 10)
}

func TestLookupEmptyTermReturnsEmptySlice(t *testing.T) {
	items, _ := newItemRepo(t)
	handler := NewLookupItemsHandler(items)

	results, err := handler.Handle(LookupItemsQuery{Term: "   "})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "205-55-r16-michelin", domain.Slugify("205/55 R16 Michelin"))
	assert.Equal(t, "winter-tire", domain.Slugify("  Winter   Tire!  "))
	assert.Equal(t, "", domain.Slugify("!!!"))
}
