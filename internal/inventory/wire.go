//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/mestakip/tiretrack/internal/inventory/delivery/http"
	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/internal/inventory/repository"
	"github.com/mestakip/tiretrack/internal/inventory/usecase/command"
	"github.com/mestakip/tiretrack/internal/inventory/usecase/query"
	"github.com/mestakip/tiretrack/kafka"
)

var RepositorySet = wire.NewSet(
	repository.NewGormRecordRepositoryWithTracing,
	wire.Bind(new(domain.RecordRepository), new(*repository.GormRecordRepositoryWithTracing)),
)

func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) *http.RecordHandler {
	wire.Build(
		RepositorySet,
		command.NewSaveRecordHandler,
		command.NewCancelRecordHandler,
		command.NewRemoveRecordHandler,
		command.NewNotifyRecordHandler,
		query.NewListRecordsHandler,
		query.NewGetRecordHandler,
		query.NewListCancelledHandler,
		query.NewListRemovedHandler,
		query.NewReviewedReportHandler,
		query.NewDashboardHandler,
		http.NewRecordHandler,
	)
	return nil
}
