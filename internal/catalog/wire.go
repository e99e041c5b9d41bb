//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	catalogdelivery "github.com/mestakip/tiretrack/internal/catalog/delivery/http"
	"github.com/mestakip/tiretrack/internal/catalog/domain"
	"github.com/mestakip/tiretrack/internal/catalog/repository"
	"github.com/mestakip/tiretrack/internal/catalog/usecase/command"
	"github.com/mestakip/tiretrack/internal/catalog/usecase/query"
)

var RepositorySet = wire.NewSet(
	repository.NewGormCategoryRepository,
	wire.Bind(new(domain.CategoryRepository), new(*repository.GormCategoryRepository)),
	repository.NewGormItemRepository,
	wire.Bind(new(domain.ItemRepository), new(*repository.GormItemRepository)),
)

func InitializeHTTPHandler(db *gorm.DB) *catalogdelivery.CatalogHandler {
	wire.Build(
		RepositorySet,
		command.NewCategoryHandler,
		command.NewItemHandler,
		query.NewListItemsHandler,
		query.NewGetItemHandler,
		query.NewListCategoriesHandler,
		query.NewLookupItemsHandler,
		catalogdelivery.NewCatalogHandler,
	)
	return nil
}
