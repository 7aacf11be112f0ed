package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"transit-booking/internal/pkg/config"
	"transit-booking/internal/pkg/errs"
	"transit-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

var (
	ErrPublishNacked = errs.New("broker rejected the message")
	ErrBrokerClosed  = errs.New("broker connection closed")
)

// RabbitMQPublisher publishes outbox jobs to a durable topic exchange with publisher confirms.
// The connection is redialled lazily after the broker drops it.
type RabbitMQPublisher struct {
	url      string
	exchange string
	logger   *slog.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  bool
}

func NewRabbitMQPublisher(cfg config.RabbitMQConfig, logger *slog.Logger) (*RabbitMQPublisher, error) {
	p := &RabbitMQPublisher{url: cfg.URL, exchange: cfg.Exchange, logger: logger}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *RabbitMQPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "rabbitmq dial")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "rabbitmq channel")
	}

	if err := ch.ExchangeDeclare(p.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "rabbitmq exchange declare")
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "rabbitmq confirm mode")
	}

	p.conn = conn
	p.channel = ch
	return nil
}

func (p *RabbitMQPublisher) ensureChannel() (*amqp.Channel, error) {
	if p.closed {
		return nil, ErrBrokerClosed
	}
	if p.conn == nil || p.conn.IsClosed() || p.channel == nil || p.channel.IsClosed() {
		p.logger.Warn("rabbitmq connection lost, reconnecting", "exchange", p.exchange)
		if p.conn != nil {
			_ = p.conn.Close()
		}
		if err := p.connect(); err != nil {
			return nil, err
		}
	}
	return p.channel, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, job shared.NotificationJob) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.ensureChannel()
	if err != nil {
		return err
	}

	confirm, err := ch.PublishWithDeferredConfirmWithContext(
		ctx,
		p.exchange,
		job.Topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    job.ID.String(),
			Type:         job.Kind,
			Timestamp:    time.Now(),
			Body:         job.Payload,
		},
	)
	if err != nil {
		return errs.Wrap(err, "publish message")
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return errs.Wrap(err, "wait for publish confirm")
	}
	if !acked {
		return ErrPublishNacked
	}

	p.logger.Debug("published notification", "exchange", p.exchange, "routing_key", job.Topic, "job_id", job.ID)
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
