//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/mestakip/tiretrack/internal/user/delivery/http"
	"github.com/mestakip/tiretrack/internal/user/domain"
	"github.com/mestakip/tiretrack/internal/user/repository"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// ProvideVendorRepository provides the vendor repository
func ProvideVendorRepository(db *gorm.DB) domain.VendorRepository {
	return repository.NewGormVendorRepository(db)
}

// ProvideCustomerRepository provides the customer repository
func ProvideCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return repository.NewGormCustomerRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideVendorRepository,
	ProvideCustomerRepository,
)

// InitializeHTTPHandler initializes the account HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*httpDelivery.UserHandler, error) {
	wire.Build(
		RepositorySet,
		httpDelivery.NewUserHandler,
	)
	return nil, nil
}
