package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"weekly-booking/internal/domain/reservation"
	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/config"
	"weekly-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the subset of *amqp.Channel used for publishing.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type dialFunc func(url, queue string, timeout time.Duration) (*amqp.Connection, channel, error)

// AMQPNotifier publishes reservation events as persistent JSON messages to a
// durable queue on the default exchange.
//
// The broker is dialled in the background and callers wait for it only as
// long as their context allows. A failed dial is not retried until
// RetryBackoff has passed, and a broken channel is redialled on the next
// publish.
type AMQPNotifier struct {
	url            string
	queue          string
	dialTimeout    time.Duration
	publishTimeout time.Duration
	retryBackoff   time.Duration
	dial           dialFunc
	clock          clock.Clock
	logger         *slog.Logger

	mu         sync.Mutex
	conn       *amqp.Connection
	ch         channel
	dialing    chan struct{}
	dialErr    error
	retryAfter time.Time
	closed     bool
}

func NewAMQPNotifier(cfg config.AMQPConfig, clk clock.Clock, logger *slog.Logger) *AMQPNotifier {
	return &AMQPNotifier{
		url:            cfg.URL,
		queue:          cfg.Queue,
		dialTimeout:    cfg.DialTimeout,
		publishTimeout: cfg.PublishTimeout,
		retryBackoff:   cfg.RetryBackoff,
		dial:           dialQueue,
		clock:          clk,
		logger:         logger,
	}
}

func dialQueue(url, queue string, timeout time.Duration) (*amqp.Connection, channel, error) {
	amqpCfg := amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	}
	if timeout > 0 {
		amqpCfg.Dial = amqp.DefaultDial(timeout)
	}

	conn, err := amqp.DialConfig(url, amqpCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "amqp dial failed")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "amqp channel open failed")
	}

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "amqp queue declare failed")
	}

	return conn, ch, nil
}

func (n *AMQPNotifier) ReservationCreated(ctx context.Context, res *reservation.Reservation) error {
	body, err := json.Marshal(NewReservationCreatedEvent(res))
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}

	if n.publishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.publishTimeout)
		defer cancel()
	}

	ch, err := n.connect(ctx)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", n.queue, false, false, msg); err != nil {
		n.mu.Lock()
		if n.ch == ch {
			n.resetLocked()
		}
		n.mu.Unlock()
		return errs.Wrap(err, "amqp publish failed")
	}

	n.logger.Debug("reservation event published", "queue", n.queue, "reservation_id", res.ID())
	return nil
}

// connect returns the open channel, starting a dial if none is in flight.
// The lock is never held across the dial itself.
func (n *AMQPNotifier) connect(ctx context.Context) (channel, error) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil, errs.New("amqp notifier closed")
	}
	if n.ch != nil {
		ch := n.ch
		n.mu.Unlock()
		return ch, nil
	}
	if n.dialing == nil {
		if n.dialErr != nil && n.clock.Now().Before(n.retryAfter) {
			err := n.dialErr
			n.mu.Unlock()
			return nil, errs.Wrap(err, "amqp broker unavailable")
		}
		n.dialing = make(chan struct{})
		go n.redial(n.dialing)
	}
	done := n.dialing
	n.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		return nil, errs.Wrap(ctx.Err(), "amqp connect abandoned")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.ch == nil {
		if n.dialErr == nil {
			return nil, errs.New("amqp notifier closed")
		}
		return nil, n.dialErr
	}
	return n.ch, nil
}

func (n *AMQPNotifier) redial(done chan struct{}) {
	conn, ch, err := n.dial(n.url, n.queue, n.dialTimeout)

	n.mu.Lock()
	defer n.mu.Unlock()
	defer close(done)
	n.dialing = nil

	if err != nil {
		n.dialErr = err
		n.retryAfter = n.clock.Now().Add(n.retryBackoff)
		n.logger.Warn("amqp dial failed", "error", err, "retry_after", n.retryAfter)
		return
	}
	if n.closed {
		if ch != nil {
			_ = ch.Close()
		}
		if conn != nil {
			_ = conn.Close()
		}
		return
	}
	n.conn, n.ch, n.dialErr = conn, ch, nil
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.resetLocked()
	return nil
}

func (n *AMQPNotifier) resetLocked() {
	if n.ch != nil {
		_ = n.ch.Close()
		n.ch = nil
	}
	if n.conn != nil {
		_ = n.conn.Close()
		n.conn = nil
	}
}
