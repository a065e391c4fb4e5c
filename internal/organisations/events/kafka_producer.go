package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/gartstein/organisations/internal/organisations/metrics"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var jsonMarshal = json.Marshal

// KafkaWriter abstracts the kafka writer for testing.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer sends outbound events to Kafka through a buffered queue. Send
// failures are logged and counted, never surfaced to the caller; a full queue
// drops the event with a warning.
type Producer struct {
	writer    KafkaWriter
	events    chan OutboundEvent
	metrics   *metrics.Metrics
	logger    *zap.Logger
	closeChan chan struct{}
}

func NewProducer(brokers []string, topic string, m *metrics.Metrics, logger *zap.Logger) (*Producer, error) {
	// Create topic if it doesn't exist
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topic,
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
	}

	err = conn.CreateTopics(topicConfigs...)
	if err != nil {
		logger.Warn("failed to create topic (may already exist)", zap.Error(err))
	}
	p := &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
			Topic:    topic,
		},
		events:    make(chan OutboundEvent, 1000),
		metrics:   m,
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
	}

	go p.eventLoop()
	return p, nil
}

func (p *Producer) Publish(event OutboundEvent) {
	select {
	case p.events <- event:
	default:
		p.logger.Warn("Kafka producer queue full, dropping event",
			zap.String("event_type", event.EventType),
			zap.Int64("organisation_id", event.AdditionalInformation.OrganisationID),
		)
	}
}

func (p *Producer) eventLoop() {
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event OutboundEvent) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("Failed to serialize event",
			zap.Error(err),
			zap.String("event_type", event.EventType),
		)
		return
	}
	key := strconv.FormatInt(event.AdditionalInformation.OrganisationID, 10)
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		p.metrics.IncrementEventPublishFailure()
		p.logger.Error("Failed to produce event",
			zap.Error(err),
			zap.String("event_type", event.EventType),
			zap.String("organisation_id", key),
		)
		return
	}
}

func (p *Producer) Close() {
	close(p.closeChan)
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka writer", zap.Error(err))
	}
}
