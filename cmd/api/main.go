package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/palettelab/retint/internal/adapter"
	"github.com/palettelab/retint/internal/api/middleware"
	"github.com/palettelab/retint/internal/api/server"
	"github.com/palettelab/retint/internal/auth"
	"github.com/palettelab/retint/internal/config"
	"github.com/palettelab/retint/internal/events"
	"github.com/palettelab/retint/internal/logger"
	ethereum "github.com/palettelab/retint/internal/providers/ethereum"
	"github.com/palettelab/retint/internal/providers/jetstream"
	"github.com/palettelab/retint/internal/registry"
	"github.com/palettelab/retint/internal/settlement"
	"github.com/palettelab/retint/internal/store"
	"github.com/palettelab/retint/internal/workflow"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Retint API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Migrate schema, then seed the singleton rows
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database schema", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)
	if err := dataStore.Bootstrap(ctx, cfg.Fees.ColorizationFee, cfg.Fees.AdjustmentFee, cfg.Fees.MintFee); err != nil {
		logger.FatalCtx(ctx, "Failed to bootstrap store", zap.Error(err))
	}

	// Connect to NATS JetStream for event publishing
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

	// Event dispatch pool
	dispatcher := events.NewPoolDispatcher(publisher, cfg.Events.PoolSize)
	defer dispatcher.Close()

	// Connect to the collectible contract
	minter, err := ethereum.NewMinter(ctx, ethereum.Config{
		RPCURL:          cfg.Ethereum.RPCURL,
		ContractAddress: cfg.Ethereum.ContractAddress,
		PrivateKey:      cfg.Ethereum.PrivateKey,
		ChainID:         cfg.Ethereum.ChainID,
		ReceiptTimeout:  cfg.Ethereum.ReceiptTimeout,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to collectible contract", zap.Error(err))
	}
	defer minter.Close()
	logger.InfoCtx(ctx, "Connected to collectible contract",
		zap.String("contract", cfg.Ethereum.ContractAddress),
		zap.Int64("chain_id", cfg.Ethereum.ChainID))

	// The administrative capability: configured subjects plus the operator
	// identity assumed by API key requests
	adminSubjects := append([]string{middleware.OperatorSubject}, cfg.Auth.AdminSubjects...)
	authorizer := auth.NewStaticAuthorizer(adminSubjects)

	// Assemble services
	clock := adapter.NewClock()
	engine := workflow.NewEngine(dataStore, minter, dispatcher, clock)
	processorRegistry := registry.NewService(dataStore, authorizer, dispatcher, clock)
	settlementService := settlement.NewService(dataStore, authorizer, dispatcher, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, engine, processorRegistry, settlementService)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
