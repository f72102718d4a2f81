package events

import "go.uber.org/zap"

// NoopProducer discards events. It is used when no Kafka brokers are
// configured.
type NoopProducer struct {
	logger *zap.Logger
}

func NewNoopProducer(logger *zap.Logger) *NoopProducer {
	return &NoopProducer{logger: logger.Named("noop_producer")}
}

func (p *NoopProducer) Produce(event Event) {
	p.logger.Debug("event discarded",
		zap.String("event_type", string(event.Type)),
		zap.String("employee_id", event.Key()),
	)
}

func (p *NoopProducer) Close() {}
