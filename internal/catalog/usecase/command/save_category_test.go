package command

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/catalog/repository"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

func newRepos(t *testing.T) (*repository.GormCategoryRepository, *repository.GormItemRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	categories := repository.NewGormCategoryRepository(db)
	require.NoError(t, categories.AutoMigrate())
	return categories, repository.NewGormItemRepository(db)
}

func TestCreateCategorySlugsAreUnique(t *testing.T) {
	categories, _ := newRepos(t)
	handler := NewCategoryHandler(categories)
	scope := authz.Scope{UserID: 1}

	first, err := handler.HandleCreate(CreateCategoryCommand{Name: "Winter Tires", Scope: scope})
	require.NoError(t, err)
	assert.Equal(t, "winter-tires", first.Slug)

	second, err := handler.HandleCreate(CreateCategoryCommand{Name: "Winter  Tires!", Scope: scope})
	require.NoError(t, err)
	assert.Equal(t, "winter-tires-2", second.Slug)
}

func TestDeleteCategoryRestrictedWhileItemsExist(t *testing.T) {
	categories, items := newRepos(t)
	categoryHandler := NewCategoryHandler(categories)
	itemHandler := NewItemHandler(items, categories)
	scope := authz.Scope{UserID: 1}

	category, err := categoryHandler.HandleCreate(CreateCategoryCommand{Name: "Tires", Scope: scope})
	require.NoError(t, err)

	item, err := itemHandler.HandleCreate(CreateItemCommand{
		Name:       "205/55 R16",
		CategoryID: category.ID,
		Scope:      scope,
	})
	require.NoError(t, err)

	err = categoryHandler.HandleDelete(DeleteCategoryCommand{ID: category.ID, Scope: scope})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	// once the item is gone the category can be deleted
	require.NoError(t, itemHandler.HandleDelete(DeleteItemCommand{ID: item.ID, Scope: scope}))
	require.NoError(t, categoryHandler.HandleDelete(DeleteCategoryCommand{ID: category.ID, Scope: scope}))
}

func TestUpdateCategoryKeepsSlug(t *testing.T) {
	categories, _ := newRepos(t)
	handler := NewCategoryHandler(categories)
	scope := authz.Scope{UserID: 1}

	category, err := handler.HandleCreate(CreateCategoryCommand{Name: "Tires", Scope: scope})
	require.NoError(t, err)

	updated, err := handler.HandleUpdate(UpdateCategoryCommand{ID: category.ID, Name: "Premium Tires", Scope: scope})
	require.NoError(t, err)
	assert.Equal(t, "Premium Tires", updated.Name)
	assert.Equal(t, "tires", updated.Slug)
}
