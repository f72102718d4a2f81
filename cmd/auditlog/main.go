// Command auditlog consumes HRMS domain events from Kafka and writes them to
// the structured log.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gartstein/hrms/internal/hrms/config"
	"github.com/gartstein/hrms/internal/hrms/events"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(config.Path())
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if !cfg.KafkaEnabled() {
		logger.Fatal("KAFKA_BROKERS must be set for the audit log")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := events.NewConsumer(cfg.KafkaBrokers, cfg.GroupID, cfg.Topic, logger)
	defer consumer.Close()

	audit := logger.Named("audit")
	consumer.RegisterHandler(func(_ context.Context, event events.Event) error {
		fields := []zap.Field{
			zap.String("event_id", event.ID.String()),
			zap.String("type", string(event.Type)),
			zap.Time("occurred_at", event.OccurredAt),
			zap.String("employee_id", event.Key()),
		}
		if event.Attendance != nil {
			fields = append(fields,
				zap.String("date", event.Attendance.Date.String()),
				zap.String("status", event.Attendance.Status))
		}
		audit.Info("hrms event", fields...)
		return nil
	})

	logger.Info("audit log consumer started",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.Topic),
		zap.String("group_id", cfg.GroupID))
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("consumer stopped", zap.Error(err))
	}
	logger.Info("audit log consumer stopped")
}
