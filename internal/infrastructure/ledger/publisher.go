package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"recurring_finance/internal/domain/entities"
	"recurring_finance/internal/usecase/interfaces"

	"github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "recurring_events"
	FiredRoutingKey = "recurring.item.fired"
	dialTimeout     = 10 * time.Second
	jsonContentType = "application/json"
)

type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher hands firings to the ledger over a durable RabbitMQ topic
// exchange.
type Publisher struct {
	mu       sync.Mutex
	exchange string
	channel  amqpChannel
	reopen   func() (amqpChannel, error)
	closeFn  func() error
	logger   *slog.Logger
}

var _ interfaces.ILedgerPublisher = (*Publisher)(nil)

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	if idx := strings.Index(strings.ToLower(clean), "amqp"); idx > 0 {
		clean = clean[idx:]
	}
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

// NewPublisher dials RabbitMQ and declares the exchange.
func NewPublisher(amqpURL, exchange string, logger *slog.Logger) (*Publisher, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, err
	}
	open := func() (amqpChannel, error) { return conn.Channel() }

	ch, err := open()
	if err != nil {
		conn.Close()
		return nil, err
	}

	p := newPublisher(ch, open, exchange, logger)
	p.closeFn = conn.Close
	if err := p.declare(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func newPublisher(ch amqpChannel, reopen func() (amqpChannel, error), exchange string, logger *slog.Logger) *Publisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &Publisher{
		exchange: exchange,
		channel:  ch,
		reopen:   reopen,
		logger:   logger.With("component", "ledger_publisher"),
	}
}

func (p *Publisher) declare() error {
	return p.channel.ExchangeDeclare(
		p.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	)
}

// PublishFiring publishes one firing. The message id is item id plus
// occurrence date, which consumers use to drop duplicates.
func (p *Publisher) PublishFiring(ctx context.Context, firing entities.Firing) error {
	body, err := json.Marshal(firing)
	if err != nil {
		return fmt.Errorf("encode firing %s: %w", firing.ItemID, err)
	}
	msg := amqp091.Publishing{
		ContentType:  jsonContentType,
		DeliveryMode: amqp091.Persistent,
		MessageId:    firing.ItemID + ":" + firing.OccurrenceDate.String(),
		Timestamp:    firing.FiredAt,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, p.exchange, FiredRoutingKey, false, false, msg)
	if err == nil {
		return nil
	}

	p.logger.Warn("publish failed; reopening channel",
		"exchange", p.exchange, "routing_key", FiredRoutingKey, "item_id", firing.ItemID, "error", err)
	// One-shot retry on a fresh channel.
	ch, chErr := p.reopen()
	if chErr != nil {
		return fmt.Errorf("publish firing %s: %w", firing.ItemID, errors.Join(err, chErr))
	}
	p.channel = ch
	if exErr := p.declare(); exErr != nil {
		return fmt.Errorf("publish firing %s: %w", firing.ItemID, exErr)
	}
	if err := p.channel.PublishWithContext(ctx, p.exchange, FiredRoutingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish firing %s: %w", firing.ItemID, err)
	}
	return nil
}

// Close gracefully closes the channel and connection to RabbitMQ.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		p.channel.Close()
	}
	if p.closeFn != nil {
		p.closeFn()
	}
}

// FallbackPublisher is used when RabbitMQ is not configured or unreachable at
// startup. It only logs the firing.
type FallbackPublisher struct {
	logger *slog.Logger
}

var _ interfaces.ILedgerPublisher = (*FallbackPublisher)(nil)

func NewFallbackPublisher(logger *slog.Logger) *FallbackPublisher {
	return &FallbackPublisher{logger: logger.With("component", "ledger_publisher", "mode", "fallback")}
}

func (p *FallbackPublisher) PublishFiring(_ context.Context, firing entities.Firing) error {
	p.logger.Warn("firing not published",
		"item_id", firing.ItemID,
		"owner_space_id", firing.OwnerSpaceID,
		"occurrence_date", firing.OccurrenceDate.String(),
		"amount", firing.Amount.String(),
		"kind", firing.Kind,
	)
	return nil
}
