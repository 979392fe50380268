// Package pubsub publishes domain events to downstream consumers over RabbitMQ.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/config"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// EventPublisher sends a JSON payload under a routing key such as
// "entitlement.granted".
type EventPublisher interface {
	Publish(ctx context.Context, routingKey, messageID string, payload any) error
	Close() error
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  channel
	exchange string
	mu       sync.Mutex
	logger   logger.Interface
}

// NewRabbitMQPublisher dials with retry and declares a durable topic exchange.
func NewRabbitMQPublisher(ctx context.Context, cfg *config.RabbitMQConfig, log logger.Interface) (*RabbitMQPublisher, error) {
	interval := time.Duration(cfg.ReconnectInterval) * time.Second

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		conn, err := amqp.Dial(cfg.URL)
		if err != nil {
			lastErr = fmt.Errorf("failed to connect to rabbitmq: %w", err)
			log.Warnw("rabbitmq connection attempt failed", "attempt", attempt+1, "error", err)
			if attempt < cfg.MaxRetries {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(interval):
				}
			}
			continue
		}

		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to open channel: %w", err)
		}
		if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("failed to declare exchange: %w", err)
		}

		log.Infow("rabbitmq publisher ready", "exchange", cfg.Exchange)
		return &RabbitMQPublisher{
			conn:     conn,
			channel:  ch,
			exchange: cfg.Exchange,
			logger:   log,
		}, nil
	}
	return nil, lastErr
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, routingKey, messageID string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    biztime.NowUTC(),
		Type:         routingKey,
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishes.
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}

	p.logger.Debugw("event published", "routing_key", routingKey, "message_id", messageID)
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher is used when rabbitmq is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, any) error { return nil }
func (NoopPublisher) Close() error                                    { return nil }
