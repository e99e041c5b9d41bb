package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/mestakip/tiretrack/pkg/logger"
)

// Publisher wraps a Kafka sync producer. A nil *Publisher is valid and
// silently drops events, so callers do not need to guard for a missing broker.
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishRecordCancelled publishes a record cancellation event
func (p *Publisher) PublishRecordCancelled(ctx context.Context, event RecordCancelledEvent) error {
	if p == nil {
		return nil
	}
	event.EventID = newEventID()
	event.EventType = EventTypeRecordCancelled
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicRecordCancelled, event.EventType, event.EventID,
		fmt.Sprintf("record_%d", event.RecordID), event,
		attribute.Int64("record.id", int64(event.RecordID)),
	)
}

// PublishPurchaseCompleted publishes a purchase completion event
func (p *Publisher) PublishPurchaseCompleted(ctx context.Context, event PurchaseCompletedEvent) error {
	if p == nil {
		return nil
	}
	event.EventID = newEventID()
	event.EventType = EventTypePurchaseCompleted
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicPurchaseCompleted, event.EventType, event.EventID,
		fmt.Sprintf("purchase_%d", event.PurchaseID), event,
		attribute.Int64("purchase.id", int64(event.PurchaseID)),
		attribute.Int("purchase.quantity", event.Quantity),
	)
}

// PublishNotificationRequested publishes a notification composition event
func (p *Publisher) PublishNotificationRequested(ctx context.Context, event NotificationRequestedEvent) error {
	if p == nil {
		return nil
	}
	event.EventID = newEventID()
	event.EventType = EventTypeNotificationRequested
	event.Timestamp = time.Now()

	return p.publish(ctx, TopicNotificationRequested, event.EventType, event.EventID,
		fmt.Sprintf("record_%d", event.RecordID), event,
		attribute.Int64("record.id", int64(event.RecordID)),
	)
}

func (p *Publisher) publish(ctx context.Context, topic, eventType, eventID, key string, event interface{}, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(append([]attribute.KeyValue{
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		}, attrs...)...),
	)
	defer span.End()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Propagate trace context through Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_id", eventID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.Logger.Info().
		Str("topic", topic).
		Str("event_id", eventID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close shuts down the underlying producer
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}

func newEventID() string {
	return "evt_" + uuid.NewString()
}
