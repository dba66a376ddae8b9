package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	accountapp "github.com/Samu0104/loucura-total/application/account"
	productapp "github.com/Samu0104/loucura-total/application/product"
	purchaseapp "github.com/Samu0104/loucura-total/application/purchase"
	"github.com/Samu0104/loucura-total/cmd/config"
	dbclient "github.com/Samu0104/loucura-total/cmd/db"
	_ "github.com/Samu0104/loucura-total/docs"
	accountRepo "github.com/Samu0104/loucura-total/repository/account"
	productRepo "github.com/Samu0104/loucura-total/repository/product"
	purchaseRepo "github.com/Samu0104/loucura-total/repository/purchase"
	"github.com/Samu0104/loucura-total/repository/schema"
	txRepo "github.com/Samu0104/loucura-total/repository/tx"
	"github.com/Samu0104/loucura-total/thirdparty/rabbitmq"
	"github.com/Samu0104/loucura-total/transport"
	"github.com/Samu0104/loucura-total/utils/logger"
)

// @title Loucura Total Storefront API
// @version 1.0
// @description Storefront backend: accounts, purchases and catalog search
// @host localhost:8080
// @BasePath /
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

	// Open the file-backed store
	db, err := dbclient.Connect(cfg.Database.Path)
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Ensure the account and purchase tables exist. An unwritable store is
	// fatal, nothing can run without the schema.
	if err := schema.Init(context.Background(), db); err != nil {
		logger.Fatal("err init schema", zap.Error(err))
	}

	// Initialize repositories
	AccountRepo := accountRepo.NewAccountRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	PurchaseRepo := purchaseRepo.NewPurchaseRepository(db)
	TxRepo := txRepo.NewTxRepository(db)

	// Purchase events are optional; run without a broker when unset
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Host != "" {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Warn("err connect rabbitmq, purchase events disabled", zap.Error(err))
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Initialize application layers
	AccountApp := accountapp.NewAccountApp(AccountRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	PurchaseApp := purchaseapp.NewPurchaseApp(TxRepo, AccountRepo, ProductRepo, PurchaseRepo, publisher)

	httpTransport := transport.NewTransport(AccountApp, ProductApp, PurchaseApp)

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
