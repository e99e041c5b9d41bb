//go:build wireinject
// +build wireinject

package shipping

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	shippingdelivery "github.com/mestakip/tiretrack/internal/shipping/delivery/http"
	"github.com/mestakip/tiretrack/internal/shipping/domain"
	"github.com/mestakip/tiretrack/internal/shipping/repository"
	"github.com/mestakip/tiretrack/internal/shipping/usecase/command"
	"github.com/mestakip/tiretrack/internal/shipping/usecase/query"
)

var RepositorySet = wire.NewSet(
	repository.NewGormDeliveryRepository,
	wire.Bind(new(domain.DeliveryRepository), new(*repository.GormDeliveryRepository)),
)

func InitializeHTTPHandler(db *gorm.DB) *shippingdelivery.DeliveryHandler {
	wire.Build(
		RepositorySet,
		command.NewDeliveryHandler,
		query.NewListDeliveriesHandler,
		query.NewGetDeliveryHandler,
		shippingdelivery.NewDeliveryHandler,
	)
	return nil
}
