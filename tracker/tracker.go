// Package tracker implements the customer-side order tracking loop: a
// fixed-interval poll of the track endpoint for one phone number.
package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"tavola/entity"
)

// DefaultInterval matches the tracking view refresh.
const DefaultInterval = 5 * time.Second

type Tracker struct {
	client   *resty.Client
	interval time.Duration
	log      *logrus.Logger

	mu     sync.RWMutex
	phone  string
	orders []entity.Order

	snapshots chan []entity.Order
}

type Option func(*Tracker)

func WithInterval(d time.Duration) Option {
	return func(t *Tracker) { t.interval = d }
}

func WithLogger(log *logrus.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

func New(baseURL string, opts ...Option) *Tracker {
	t := &Tracker{
		client:    resty.New().SetBaseURL(baseURL),
		interval:  DefaultInterval,
		log:       logrus.StandardLogger(),
		snapshots: make(chan []entity.Order, 1),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetPhone starts tracking orders for the given phone number on the
// next tick.
func (t *Tracker) SetPhone(phone string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phone = phone
}

// Clear stops polling until a phone number is set again and drops the
// held snapshot.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phone = ""
	t.orders = nil
}

// Active returns the last snapshot of non-terminal orders.
func (t *Tracker) Active() []entity.Order {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.orders
}

// Snapshots delivers each new snapshot; when the consumer lags, older
// snapshots are dropped in favor of the latest one.
func (t *Tracker) Snapshots() <-chan []entity.Order {
	return t.snapshots
}

// Run polls until ctx is done. Every poll is independent: a failed
// request is logged and the next tick tries again, with no backoff and
// no retry state.
func (t *Tracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.pollOnce(ctx)
		}
	}
}

type trackResponse struct {
	OK   bool   `json:"ok"`
	Err  string `json:"error"`
	Data struct {
		Orders []entity.Order `json:"orders"`
	} `json:"data"`
}

func (t *Tracker) pollOnce(ctx context.Context) {
	t.mu.RLock()
	phone := t.phone
	t.mu.RUnlock()
	if phone == "" {
		return
	}

	orders, err := t.fetch(ctx, phone)
	if err != nil {
		t.log.WithError(err).Debug("tracking poll failed")
		return
	}

	// Replace the snapshot wholesale; readers never see a half-merged
	// view.
	t.mu.Lock()
	if t.phone != phone {
		t.mu.Unlock()
		return
	}
	t.orders = orders
	t.mu.Unlock()

	select {
	case t.snapshots <- orders:
	default:
		// Drop the stale snapshot and publish the fresh one.
		select {
		case <-t.snapshots:
		default:
		}
		select {
		case t.snapshots <- orders:
		default:
		}
	}
}

func (t *Tracker) fetch(ctx context.Context, phone string) ([]entity.Order, error) {
	var out trackResponse
	res, err := t.client.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		Get("/api/orders/track/" + phone)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("track request: status %d: %s", res.StatusCode(), out.Err)
	}

	// The server already hides terminal orders; filter again so a
	// lagging or differently configured server can't leak them into
	// the active view.
	active := make([]entity.Order, 0, len(out.Data.Orders))
	for _, o := range out.Data.Orders {
		if !o.Status.Terminal() {
			active = append(active, o)
		}
	}
	return active, nil
}
