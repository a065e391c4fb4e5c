package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gartstein/organisations/internal/organisations/config"
	"github.com/gartstein/organisations/internal/organisations/controller"
	gorm "github.com/gartstein/organisations/internal/organisations/db"
	"github.com/gartstein/organisations/internal/organisations/events"
	"github.com/gartstein/organisations/internal/organisations/handlers"
	"github.com/gartstein/organisations/internal/organisations/metrics"
	"github.com/gartstein/organisations/internal/organisations/migration"
	"github.com/gartstein/organisations/internal/organisations/registry"
	"github.com/gartstein/organisations/internal/organisations/sync"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	logger := initLogger()
	defer func(logger *zap.Logger) {
		err := logger.Sync()
		if err != nil {
			logger.Error("failed to sync logger", zap.Error(err))
		}
	}(logger)

	cfgPath := filepath.Join("internal", "organisations", "config", "config.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	repo, err := gorm.NewRepository(initDatabase(cfg))
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	producer, err := events.NewProducer(cfg.KafkaBrokers, cfg.Topic, m, logger)
	if err != nil {
		log.Fatal("failed to initialize Kafka producer", err)
	}
	defer producer.Close()

	notifier := events.NewService(producer, eventConfig(cfg), m, logger)

	register := registry.NewClient(cfg.PrisonRegisterURL, logger)

	handler := handlers.New(
		controller.NewOrganisationService(repo, notifier, register, logger),
		sync.NewOrganisationService(repo, notifier, m, logger),
		sync.NewAddressService(repo, notifier, m, logger),
		sync.NewPhoneService(repo, notifier, m, logger),
		sync.NewEmailService(repo, notifier, m, logger),
		sync.NewWebService(repo, notifier, m, logger),
		sync.NewTypesService(repo, notifier, m, logger),
		sync.NewAddressPhoneService(repo, notifier, m, logger),
		migration.NewService(repo, logger),
		logger,
	)

	server := handlers.NewServer(cfg.HTTPPort, handler.Router(cfg.JWTSecret), logger)

	go waitForShutdown(server, logger)

	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// initLogger initializes a Zap production logger.
func initLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

// initDatabase initializes the database connection settings.
func initDatabase(cfg *config.Config) *gorm.Config {
	return &gorm.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}
}

// eventConfig translates the YAML event settings into the publisher config.
func eventConfig(cfg *config.Config) events.Config {
	disabled := make(map[events.Kind]bool, len(cfg.DisabledEvents))
	for _, kind := range cfg.DisabledEvents {
		disabled[events.Kind(kind)] = true
	}
	return events.Config{
		Enabled:  cfg.OutboundEventsEnabled,
		Disabled: disabled,
	}
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, then shuts
// down the server.
func waitForShutdown(server *handlers.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	server.Stop()
	logger.Info("Server stopped properly")
}
