package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gartstein/hrms/internal/hrms/config"
	"github.com/gartstein/hrms/internal/hrms/controller"
	"github.com/gartstein/hrms/internal/hrms/db"
	"github.com/gartstein/hrms/internal/hrms/events"
	"github.com/gartstein/hrms/internal/hrms/handlers"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const dbConnectRetries = 8

// eventProducer is the publishing side the services need plus shutdown.
type eventProducer interface {
	controller.EventProducer
	Close()
}

func main() {
	logger := initLogger()
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	cfg, err := config.Load(config.Path())
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	repo, err := initDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	producer := initProducer(cfg, logger)
	defer producer.Close()

	employeeSvc := controller.NewEmployeeService(repo, producer, logger)
	attendanceSvc := controller.NewAttendanceService(repo, producer, logger)
	dashboardSvc := controller.NewDashboardService(repo)

	gin.SetMode(gin.ReleaseMode)
	h := handlers.NewHandler(employeeSvc, attendanceSvc, dashboardSvc, repo, logger)
	router := handlers.NewRouter(h, logger)

	server := handlers.NewServer(cfg.GRPCPort, cfg.HTTPPort, logger)
	if err := server.RegisterHTTPHandler(router, []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}); err != nil {
		logger.Fatal("failed to register HTTP handler", zap.Error(err))
	}
	server.SetServing(true)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	waitForShutdown(server, errCh, logger)
}

// initLogger initializes a Zap production logger.
func initLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

// initDatabase opens the store, retrying while the database comes up.
func initDatabase(cfg *config.Config, logger *zap.Logger) (*db.Repository, error) {
	dbConf := cfg.Database()
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = time.Minute

	var repo *db.Repository
	err := backoff.RetryNotify(func() error {
		var err error
		repo, err = db.NewRepository(dbConf)
		return err
	}, backoff.WithMaxRetries(policy, dbConnectRetries), func(err error, wait time.Duration) {
		logger.Warn("database not ready, retrying",
			zap.String("driver", dbConf.Driver),
			zap.Duration("wait", wait),
			zap.Error(err))
	})
	if err != nil {
		return nil, err
	}
	logger.Info("database ready", zap.String("driver", dbConf.Driver))
	return repo, nil
}

// initProducer connects to Kafka when brokers are configured and falls back to
// a producer that only logs.
func initProducer(cfg *config.Config, logger *zap.Logger) eventProducer {
	if !cfg.KafkaEnabled() {
		logger.Info("kafka brokers not configured, events will not be published")
		return events.NewNoopProducer(logger)
	}
	producer, err := events.NewProducer(cfg.KafkaBrokers, logger, cfg.Topic)
	if err != nil {
		logger.Fatal("failed to initialize Kafka producer", zap.Error(err))
	}
	return producer
}

// waitForShutdown blocks until an interrupt, SIGTERM or a server failure, then shuts down servers.
func waitForShutdown(server *handlers.Server, errCh <-chan error, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
		}
	}

	server.SetServing(false)
	server.Stop()
	logger.Info("Servers stopped properly")
}
