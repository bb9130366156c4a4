package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/example/marketplace/internal/domain/usecase/auth"
	catalogUseCase "github.com/example/marketplace/internal/domain/usecase/catalog"
	earningsUseCase "github.com/example/marketplace/internal/domain/usecase/earnings"
	orderUseCase "github.com/example/marketplace/internal/domain/usecase/order"
	paymentUseCase "github.com/example/marketplace/internal/domain/usecase/payment"

	"github.com/example/marketplace/internal/infrastructure/adapter/api/handler"
	"github.com/example/marketplace/internal/infrastructure/adapter/api/routes"
	authAdapter "github.com/example/marketplace/internal/infrastructure/adapter/auth"
	"github.com/example/marketplace/internal/infrastructure/adapter/database"
	"github.com/example/marketplace/internal/infrastructure/adapter/database/migration"
	"github.com/example/marketplace/internal/infrastructure/adapter/logger"
	paymentAdapter "github.com/example/marketplace/internal/infrastructure/adapter/payment"
	"github.com/example/marketplace/internal/infrastructure/adapter/repository"
	timeProvider "github.com/example/marketplace/internal/infrastructure/adapter/time"
	"github.com/example/marketplace/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations; transient startup races with the database are retried
	err = database.RetryOnTransientError(context.Background(), database.DefaultRetryConfig(), func() error {
		return dbManager.MigrationManager().MigrateAll()
	}, appLogger)
	if err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Auth adapters
	hasher := authAdapter.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := authAdapter.NewJWTManager(cfg.Auth.JWTSecret, tp)

	// Seed reference data and the superuser account
	seeder := migration.NewSeeder(dbManager.DB(), hasher, tp, appLogger)
	if err := seeder.SeedAll(context.Background(), cfg.Seed.SuperuserEmail, cfg.Seed.SuperuserPassword); err != nil {
		appLogger.Error("Failed to seed initial data", map[string]any{
			"error": err.Error(),
		})
	}

	// Repositories and unit of work
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	productRepo := repository.NewProductRepository(dbManager.DB(), tp, appLogger)
	categoryRepo := repository.NewCategoryRepository(dbManager.DB(), appLogger)
	orderRepo := repository.NewOrderRepository(dbManager.DB(), tp, appLogger)
	txRepo := repository.NewTransactionRepository(dbManager.DB(), tp, appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Payment adapters
	signer := paymentAdapter.NewHMACSigner(cfg.Payment.MerchantSecret)
	providerClient := paymentAdapter.NewSimulatedProviderClient(signer, tp, appLogger)

	// Use cases
	authService := authUseCase.NewService(userRepo, tokens, hasher, tp, appLogger)
	catalogService := catalogUseCase.NewService(productRepo, categoryRepo, tp, appLogger)
	orderService := orderUseCase.NewService(uow, orderRepo, tp, appLogger)
	earningsService := earningsUseCase.NewService(uow, userRepo, orderRepo, productRepo, hasher, tp, appLogger)
	paymentService := paymentUseCase.NewService(uow, orderRepo, txRepo, providerClient, signer, tp, appLogger)

	// API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	productHandler := handler.NewProductHandler(catalogService, appLogger)
	orderHandler := handler.NewOrderHandler(orderService, appLogger)
	paymentHandler := handler.NewPaymentHandler(paymentService, appLogger)
	adminHandler := handler.NewAdminHandler(earningsService, appLogger)

	// Router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, authService, authHandler, productHandler, orderHandler, paymentHandler, adminHandler, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Flush()
	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or MKT_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or MKT_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or MKT_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or MKT_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Token and webhook verification cannot run without their secrets
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or MKT_JWT_SECRET environment variable)")
	}
	if cfg.Payment.MerchantSecret == "" {
		missingConfigs = append(missingConfigs, "payment.merchantSecret (or MKT_PAYMENT_MERCHANT_SECRET environment variable)")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
