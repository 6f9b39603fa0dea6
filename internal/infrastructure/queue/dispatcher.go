package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/pkg/metrics"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
)

// Sink receives delivered notifications.
type Sink interface {
	Deliver(ctx context.Context, n domain.Notification)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, n domain.Notification)

func (f SinkFunc) Deliver(ctx context.Context, n domain.Notification) { f(ctx, n) }

// Dispatcher is the fire-and-forget notification channel. Notifications are sharded
// by title onto a fixed set of workers, so repeats of the same message keep their order.
// Notify never blocks: when a worker buffer is full the notification is dropped.
type Dispatcher struct {
	workers []chan domain.Notification
	sinks   []Sink
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers workers delivering to sinks.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger, sinks ...Sink) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Notification, numWorkers),
		sinks:   sinks,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Notify enqueues n without blocking.
func (d *Dispatcher) Notify(n domain.Notification) {
	idx := d.shardIndex(n.Title)
	select {
	case d.workers[idx] <- n:
		metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "dropped").Inc()
		d.log.Warn().Str("title", n.Title).Int("worker_id", idx).Msg("notification buffer full, dropping")
	}
}

func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Notification) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-ch:
			metrics.NotificationQueueDepth.WithLabelValues(label).Dec()
			for _, s := range d.sinks {
				s.Deliver(ctx, n)
			}
			metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "delivered").Inc()
		}
	}
}

// LogSink writes notifications to the structured log.
func LogSink(log zerolog.Logger) Sink {
	return SinkFunc(func(_ context.Context, n domain.Notification) {
		log.Info().
			Str("kind", string(n.Kind)).
			Str("title", n.Title).
			Str("description", n.Description).
			Msg("notification")
	})
}
