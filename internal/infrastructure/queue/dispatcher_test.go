package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamslot/booking/internal/core/domain"
)

type collectingSink struct {
	mu    sync.Mutex
	items []domain.Notification
	done  chan struct{}
	want  int
}

func newCollectingSink(want int) *collectingSink {
	return &collectingSink{done: make(chan struct{}), want: want}
}

func (s *collectingSink) Deliver(_ context.Context, n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, n)
	if len(s.items) == s.want {
		close(s.done)
	}
}

func TestDispatcher_DeliversToAllSinks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, b := newCollectingSink(3), newCollectingSink(3)
	d := NewDispatcher(2, zerolog.Nop(), a, b)
	d.Start(ctx)

	for _, title := range []string{"Welcome back!", "Signed out", "Demo mode"} {
		d.Notify(domain.Notification{Kind: domain.NotifyInfo, Title: title})
	}

	for _, s := range []*collectingSink{a, b} {
		select {
		case <-s.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("notifications not delivered")
		}
	}

	cancel()
	d.Wait()
}

func TestDispatcher_PreservesOrderPerTitle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCollectingSink(5)
	d := NewDispatcher(4, zerolog.Nop(), sink)
	d.Start(ctx)

	for i := 0; i < 5; i++ {
		d.Notify(domain.Notification{Kind: domain.NotifySuccess, Title: "Saved", Description: string(rune('a' + i))})
	}

	select {
	case <-sink.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("notifications not delivered")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	var got string
	for _, n := range sink.items {
		got += n.Description
	}
	assert.Equal(t, "abcde", got)
}

func TestDispatcher_NotifyNeverBlocks(t *testing.T) {
	d := NewDispatcher(1, zerolog.Nop())

	finished := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Notify(domain.Notification{Kind: domain.NotifyInfo, Title: "x"})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("Notify blocked on a full buffer")
	}
}

func TestNewDispatcher_DefaultWorkers(t *testing.T) {
	d := NewDispatcher(0, zerolog.Nop())
	require.Len(t, d.workers, defaultWorkers)
}
