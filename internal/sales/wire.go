//go:build wireinject
// +build wireinject

package sales

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	catalogdomain "github.com/mestakip/tiretrack/internal/catalog/domain"
	catalogrepo "github.com/mestakip/tiretrack/internal/catalog/repository"
	salesdelivery "github.com/mestakip/tiretrack/internal/sales/delivery/http"
	"github.com/mestakip/tiretrack/internal/sales/domain"
	"github.com/mestakip/tiretrack/internal/sales/repository"
	"github.com/mestakip/tiretrack/internal/sales/usecase/command"
	"github.com/mestakip/tiretrack/internal/sales/usecase/query"
	"github.com/mestakip/tiretrack/kafka"
)

var RepositorySet = wire.NewSet(
	repository.NewGormSaleRepository,
	wire.Bind(new(domain.SaleRepository), new(*repository.GormSaleRepository)),
	repository.NewGormPurchaseRepository,
	wire.Bind(new(domain.PurchaseRepository), new(*repository.GormPurchaseRepository)),
	catalogrepo.NewGormItemRepository,
	wire.Bind(new(catalogdomain.ItemRepository), new(*catalogrepo.GormItemRepository)),
)

func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) *salesdelivery.SalesHandler {
	wire.Build(
		RepositorySet,
		command.NewSaleHandler,
		command.NewPurchaseHandler,
		query.NewListSalesHandler,
		query.NewGetSaleHandler,
		query.NewListPurchasesHandler,
		query.NewTopPartnersHandler,
		salesdelivery.NewSalesHandler,
	)
	return nil
}
