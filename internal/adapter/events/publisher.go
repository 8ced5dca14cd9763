package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/saudaghar/marketplace-backend/internal/config"
)

const exchangeKind = "topic"

// Publisher sends events to a durable topic exchange. The event type is the routing key.
type Publisher struct {
	log       *slog.Logger
	contracts *Contracts
	exchange  string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher dials RabbitMQ and declares the exchange.
func NewPublisher(logger *slog.Logger, cfg config.EventsConfig, contracts *Contracts) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", cfg.Exchange, err)
	}

	return &Publisher{
		log:       logger.With("component", "events"),
		contracts: contracts,
		exchange:  cfg.Exchange,
		conn:      conn,
		ch:        ch,
	}, nil
}

// Publish validates and sends one event as a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, e Event) error {
	body, err := p.contracts.Encode(e)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         e.EventType(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.conn.IsClosed() {
		return errors.New("publisher is closed")
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, e.EventType(), false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", e.EventType(), err)
	}

	p.log.DebugContext(ctx, "event published",
		slog.String("type", e.EventType()),
		slog.String("message_id", msg.MessageId))
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
		p.ch = nil
	}
	if p.conn != nil && !p.conn.IsClosed() {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}

// Ping reports whether the broker connection is still open.
func (p *Publisher) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.conn == nil || p.conn.IsClosed() {
		return errors.New("rabbitmq connection closed")
	}
	return nil
}
