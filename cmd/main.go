package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	claimapp "github.com/wastenot/wastenot/application/claim"
	listingapp "github.com/wastenot/wastenot/application/listing"
	pickupapp "github.com/wastenot/wastenot/application/pickup"
	productapp "github.com/wastenot/wastenot/application/product"
	userapp "github.com/wastenot/wastenot/application/user"
	"github.com/wastenot/wastenot/cmd/config"
	redisclient "github.com/wastenot/wastenot/cmd/redis"
	_ "github.com/wastenot/wastenot/docs"
	claimRepo "github.com/wastenot/wastenot/repository/claim"
	listingRepo "github.com/wastenot/wastenot/repository/listing"
	pickupRepo "github.com/wastenot/wastenot/repository/pickup"
	productRepo "github.com/wastenot/wastenot/repository/product"
	redisRepo "github.com/wastenot/wastenot/repository/redis"
	txRepo "github.com/wastenot/wastenot/repository/tx"
	userRepo "github.com/wastenot/wastenot/repository/user"
	"github.com/wastenot/wastenot/thirdparty/rabbitmq"
	"github.com/wastenot/wastenot/transport"
	"github.com/wastenot/wastenot/utils/logger"
	"go.uber.org/zap"
)

// @title WasteNot API
// @version 1.0
// @description Food surplus listing, claim and pickup API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Claim expiration publisher; the API still works without it, claims
	// just never expire until the consumer comes back.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, claim expiration disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	ListingRepo := listingRepo.NewListingRepository(db)
	ClaimRepo := claimRepo.NewClaimRepository(db)
	PickupRepo := pickupRepo.NewPickupRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	ListingApp := listingapp.NewListingApp(TxRepo, ListingRepo, RedisRepo)
	ClaimApp := claimapp.NewClaimApp(cfg, TxRepo, ClaimRepo, ListingRepo, PickupRepo, RedisRepo, publisher)
	PickupApp := pickupapp.NewPickupApp(TxRepo, ClaimRepo, PickupRepo)

	httpTransport := transport.NewTransport(UserApp, ProductApp, ListingApp, ClaimApp, PickupApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
