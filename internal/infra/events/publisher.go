package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"field-booking/internal/pkg/config"
	"field-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// session is one connection plus the channel published on. closed fires when
// the broker or the network drops the channel; a dropped connection closes
// every channel on it.
type session struct {
	conn   io.Closer
	ch     publishChannel
	closed <-chan *amqp.Error
}

func (s *session) broken() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

func (s *session) close() {
	_ = s.ch.Close()
	_ = s.conn.Close()
}

type dialFunc func(cfg config.AMQPConfig) (*session, error)

func dialSession(cfg config.AMQPConfig) (*session, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &session{
		conn:   conn,
		ch:     ch,
		closed: ch.NotifyClose(make(chan *amqp.Error, 1)),
	}, nil
}

// AMQPPublisher sends booking events to a durable topic exchange, using the
// event type as routing key. A closed channel or connection is replaced on the
// next Publish.
type AMQPPublisher struct {
	cfg    config.AMQPConfig
	dial   dialFunc
	logger *slog.Logger

	// amqp channels are not safe for concurrent publishing
	mu   sync.Mutex
	sess *session
}

func NewAMQPPublisher(cfg config.AMQPConfig, logger *slog.Logger) (*AMQPPublisher, error) {
	return newAMQPPublisher(cfg, dialSession, logger)
}

func newAMQPPublisher(cfg config.AMQPConfig, dial dialFunc, logger *slog.Logger) (*AMQPPublisher, error) {
	sess, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &AMQPPublisher{cfg: cfg, dial: dial, logger: logger, sess: sess}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event shared.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.Type, err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		MessageId:    event.BookingID.String(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	sess, err := p.session(ctx)
	if err != nil {
		return err
	}
	err = sess.ch.PublishWithContext(ctx, p.cfg.Exchange, string(event.Type), false, false, msg)
	if err == nil || !sess.broken() {
		return err
	}

	// the channel died under this publish; retry once on a fresh one
	p.drop()
	if sess, err = p.session(ctx); err != nil {
		return err
	}
	return sess.ch.PublishWithContext(ctx, p.cfg.Exchange, string(event.Type), false, false, msg)
}

// session returns a live session, redialling when the current one is gone.
// Callers hold mu.
func (p *AMQPPublisher) session(ctx context.Context) (*session, error) {
	if p.sess != nil && p.sess.broken() {
		p.logger.WarnContext(ctx, "amqp channel closed, reconnecting", "exchange", p.cfg.Exchange)
		p.drop()
	}
	if p.sess != nil {
		return p.sess, nil
	}
	sess, err := p.dial(p.cfg)
	if err != nil {
		return nil, fmt.Errorf("reconnect: %w", err)
	}
	p.sess = sess
	return sess, nil
}

func (p *AMQPPublisher) drop() {
	if p.sess != nil {
		p.sess.close()
		p.sess = nil
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sess == nil {
		return nil
	}
	_ = p.sess.ch.Close()
	err := p.sess.conn.Close()
	p.sess = nil
	return err
}

// LogPublisher stands in when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event shared.BookingEvent) error {
	p.logger.DebugContext(ctx, "booking event",
		"type", string(event.Type),
		"booking_id", event.BookingID.String(),
		"status", event.Status)
	return nil
}
