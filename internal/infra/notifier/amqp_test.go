//go:build unit

package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"weekly-booking/internal/pkg/clock"
	"weekly-booking/internal/pkg/config"
	"weekly-booking/tests/common/builder"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	mu        sync.Mutex
	published []amqp.Publishing
	keys      []string
	failNext  error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _ string, key string, _, _ bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

type fakeDialer struct {
	mu       sync.Mutex
	dials    int
	channels []*fakeChannel
	err      error
	release  chan struct{}
}

func (d *fakeDialer) dial(string, string, time.Duration) (*amqp.Connection, channel, error) {
	if d.release != nil {
		<-d.release
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.dials++
	if d.err != nil {
		return nil, nil, d.err
	}
	ch := &fakeChannel{}
	d.channels = append(d.channels, ch)
	return nil, ch, nil
}

func (d *fakeDialer) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dials
}

func newTestNotifier(d *fakeDialer, clk clock.Clock) *AMQPNotifier {
	cfg := config.AMQPConfig{
		URL:            "amqp://test",
		Queue:          "reservation.created",
		DialTimeout:    time.Second,
		PublishTimeout: time.Second,
		RetryBackoff:   30 * time.Second,
	}
	n := NewAMQPNotifier(cfg, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
	n.dial = d.dial
	return n
}

func TestAMQPNotifier_ReservationCreated(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	id := uuid.New()
	res, err := builder.NewReservationBuilder().
		With(func(b *builder.ReservationBuilder) { b.CreatedAt = createdAt }).
		WithSlot(42, 2026, 17).
		BuildPersisted(id)
	require.NoError(t, err)

	t.Run("publishes a persistent json event to the queue", func(t *testing.T) {
		d := &fakeDialer{}
		n := newTestNotifier(d, clock.NewMockClock(createdAt))

		require.NoError(t, n.ReservationCreated(ctx, res))
		require.NoError(t, n.ReservationCreated(ctx, res))

		assert.Equal(t, 1, d.count())
		require.Len(t, d.channels, 1)
		require.Len(t, d.channels[0].published, 2)
		assert.Equal(t, "reservation.created", d.channels[0].keys[0])

		msg := d.channels[0].published[0]
		assert.Equal(t, "application/json", msg.ContentType)
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

		var event ReservationCreatedEvent
		require.NoError(t, json.Unmarshal(msg.Body, &event))
		assert.Equal(t, ReservationCreatedEvent{
			ReservationID: id,
			Name:          res.Name().String(),
			WeekNumber:    42,
			Year:          2026,
			CellID:        17,
			CreatedAt:     createdAt,
		}, event)
	})

	t.Run("publish failure resets the channel and redials next time", func(t *testing.T) {
		d := &fakeDialer{}
		n := newTestNotifier(d, clock.NewMockClock(createdAt))

		require.NoError(t, n.ReservationCreated(ctx, res))
		d.channels[0].failNext = errors.New("channel closed")

		require.Error(t, n.ReservationCreated(ctx, res))
		assert.True(t, d.channels[0].closed)

		require.NoError(t, n.ReservationCreated(ctx, res))
		assert.Equal(t, 2, d.count())
		require.Len(t, d.channels, 2)
		assert.Len(t, d.channels[1].published, 1)
	})

	t.Run("dial failure is returned", func(t *testing.T) {
		d := &fakeDialer{err: errors.New("connection refused")}
		n := newTestNotifier(d, clock.NewMockClock(createdAt))

		err := n.ReservationCreated(ctx, res)
		require.Error(t, err)
		assert.ErrorContains(t, err, "connection refused")
		assert.Equal(t, 1, d.count())
	})

	t.Run("failed dial is not retried within the backoff window", func(t *testing.T) {
		clk := clock.NewMockClock(createdAt)
		d := &fakeDialer{err: errors.New("connection refused")}
		n := newTestNotifier(d, clk)

		require.Error(t, n.ReservationCreated(ctx, res))
		require.Error(t, n.ReservationCreated(ctx, res))
		assert.Equal(t, 1, d.count())

		clk.Add(31 * time.Second)
		d.mu.Lock()
		d.err = nil
		d.mu.Unlock()

		require.NoError(t, n.ReservationCreated(ctx, res))
		assert.Equal(t, 2, d.count())
	})

	t.Run("unreachable broker does not outlast the caller deadline", func(t *testing.T) {
		d := &fakeDialer{release: make(chan struct{})}
		n := newTestNotifier(d, clock.NewMockClock(createdAt))

		callCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		began := time.Now()
		err := n.ReservationCreated(callCtx, res)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(began), time.Second)

		close(d.release)
		require.Eventually(t, func() bool {
			return n.ReservationCreated(ctx, res) == nil
		}, time.Second, 10*time.Millisecond)
		assert.Equal(t, 1, d.count())
	})

	t.Run("concurrent callers share one dial", func(t *testing.T) {
		d := &fakeDialer{release: make(chan struct{})}
		n := newTestNotifier(d, clock.NewMockClock(createdAt))

		var wg sync.WaitGroup
		errCh := make(chan error, 5)
		for _i := 0; _i < 5; _i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errCh <- n.ReservationCreated(ctx, res)
			}()
		}
		time.Sleep(20 * time.Millisecond)
		close(d.release)
		wg.Wait()
		close(errCh)

		for err := range errCh {
			assert.NoError(t, err)
		}
		assert.Equal(t, 1, d.count())
	})

	t.Run("closed notifier rejects publishes", func(t *testing.T) {
		d := &fakeDialer{}
		n := newTestNotifier(d, clock.NewMockClock(createdAt))

		require.NoError(t, n.ReservationCreated(ctx, res))
		require.NoError(t, n.Close())
		assert.True(t, d.channels[0].closed)

		require.Error(t, n.ReservationCreated(ctx, res))
		assert.Equal(t, 1, d.count())
	})
}
