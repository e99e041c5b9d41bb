package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	catalogdelivery "github.com/mestakip/tiretrack/internal/catalog/delivery/http"
	catalogcommand "github.com/mestakip/tiretrack/internal/catalog/usecase/command"
	catalogquery "github.com/mestakip/tiretrack/internal/catalog/usecase/query"
	"github.com/mestakip/tiretrack/internal/config"
	inventorydelivery "github.com/mestakip/tiretrack/internal/inventory/delivery/http"
	inventorycommand "github.com/mestakip/tiretrack/internal/inventory/usecase/command"
	inventoryquery "github.com/mestakip/tiretrack/internal/inventory/usecase/query"
	salesdelivery "github.com/mestakip/tiretrack/internal/sales/delivery/http"
	salescommand "github.com/mestakip/tiretrack/internal/sales/usecase/command"
	salesquery "github.com/mestakip/tiretrack/internal/sales/usecase/query"
	shippingdelivery "github.com/mestakip/tiretrack/internal/shipping/delivery/http"
	shippingcommand "github.com/mestakip/tiretrack/internal/shipping/usecase/command"
	shippingquery "github.com/mestakip/tiretrack/internal/shipping/usecase/query"
	userdelivery "github.com/mestakip/tiretrack/internal/user/delivery/http"

	catalogrepo "github.com/mestakip/tiretrack/internal/catalog/repository"
	inventoryrepo "github.com/mestakip/tiretrack/internal/inventory/repository"
	salesrepo "github.com/mestakip/tiretrack/internal/sales/repository"
	shippingrepo "github.com/mestakip/tiretrack/internal/shipping/repository"
	userrepo "github.com/mestakip/tiretrack/internal/user/repository"

	_ "github.com/mestakip/tiretrack/docs"
	"github.com/mestakip/tiretrack/kafka"
	"github.com/mestakip/tiretrack/pkg/database"
	"github.com/mestakip/tiretrack/pkg/logger"
	"github.com/mestakip/tiretrack/pkg/ratelimit"
	"github.com/mestakip/tiretrack/pkg/tracing"
)

// @title TireTrack API
// @version 1.0
// @description Multi-tenant tire inventory and sales tracking service
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Warn().Err(err).Msg("tracer shutdown failed")
		}
	}()

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to get database instance")
	}
	defer sqlDB.Close()

	// Repositories
	userRepo := userrepo.NewGormUserRepository(db)
	vendorRepo := userrepo.NewGormVendorRepository(db)
	customerRepo := userrepo.NewGormCustomerRepository(db)
	categoryRepo := catalogrepo.NewGormCategoryRepository(db)
	itemRepo := catalogrepo.NewGormItemRepository(db)
	recordRepo := inventoryrepo.NewGormRecordRepositoryWithTracing(db)
	deliveryRepo := shippingrepo.NewGormDeliveryRepository(db)
	saleRepo := salesrepo.NewGormSaleRepository(db)
	purchaseRepo := salesrepo.NewGormPurchaseRepository(db)

	for name, migrate := range map[string]func() error{
		"user":      userRepo.AutoMigrate,
		"catalog":   categoryRepo.AutoMigrate,
		"inventory": recordRepo.AutoMigrate,
		"shipping":  deliveryRepo.AutoMigrate,
		"sales":     saleRepo.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Logger.Fatal().Err(err).Str("schema", name).Msg("failed to run migrations")
		}
	}

	// Kafka is optional; without brokers events are dropped
	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("kafka unavailable, events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Handlers
	userHandler := userdelivery.NewUserHandler(userRepo)
	partnerHandler := userdelivery.NewPartnerHandler(vendorRepo, customerRepo)
	catalogHandler := catalogdelivery.NewCatalogHandler(
		catalogcommand.NewCategoryHandler(categoryRepo),
		catalogcommand.NewItemHandler(itemRepo, categoryRepo),
		catalogquery.NewListItemsHandler(itemRepo),
		catalogquery.NewGetItemHandler(itemRepo),
		catalogquery.NewListCategoriesHandler(categoryRepo),
		catalogquery.NewLookupItemsHandler(itemRepo),
	)
	recordHandler := inventorydelivery.NewRecordHandler(
		inventorycommand.NewSaveRecordHandler(recordRepo),
		inventorycommand.NewCancelRecordHandler(recordRepo, publisher),
		inventorycommand.NewRemoveRecordHandler(recordRepo),
		inventorycommand.NewNotifyRecordHandler(recordRepo, publisher),
		inventoryquery.NewListRecordsHandler(recordRepo),
		inventoryquery.NewGetRecordHandler(recordRepo),
		inventoryquery.NewListCancelledHandler(recordRepo),
		inventoryquery.NewListRemovedHandler(recordRepo),
		inventoryquery.NewReviewedReportHandler(recordRepo),
		inventoryquery.NewDashboardHandler(recordRepo),
	)
	deliveryHandler := shippingdelivery.NewDeliveryHandler(
		shippingcommand.NewDeliveryHandler(deliveryRepo),
		shippingquery.NewListDeliveriesHandler(deliveryRepo),
		shippingquery.NewGetDeliveryHandler(deliveryRepo),
	)
	salesHandler := salesdelivery.NewSalesHandler(
		salescommand.NewSaleHandler(saleRepo),
		salescommand.NewPurchaseHandler(purchaseRepo, itemRepo, publisher),
		salesquery.NewListSalesHandler(saleRepo),
		salesquery.NewGetSaleHandler(saleRepo),
		salesquery.NewListPurchasesHandler(purchaseRepo),
		salesquery.NewTopPartnersHandler(saleRepo, purchaseRepo),
	)

	router := mux.NewRouter()
	userHandler.RegisterRoutes(router)
	partnerHandler.RegisterRoutes(router)
	catalogHandler.RegisterRoutes(router)
	recordHandler.RegisterRoutes(router)
	deliveryHandler.RegisterRoutes(router)
	salesHandler.RegisterRoutes(router)

	// Health checks use a plain connection outside the ORM pool
	healthDB, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to open health check connection")
	}
	defer healthDB.Close()

	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := healthDB.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	var handler http.Handler = router

	// Redis-backed rate limiting is optional as well
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
		})
		defer redisClient.Close()
		limiter := ratelimit.NewLimiter(redisClient, 100, time.Minute)
		handler = limiter.Middleware(handler)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler = c.Handler(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
