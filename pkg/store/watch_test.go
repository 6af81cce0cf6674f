package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/note"
)

func TestDiskvWatchEmitsDayChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Open(NewConfig(base, BackendDiskv))
	require.NoError(t, err)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	require.NoError(t, err)

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	_, err = p.Create(ctx, &note.Note{DateCreated: "2025-10-07", UserID: "ada", Text: "hello"})
	require.NoError(t, err)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			require.Equal(t, note.Day("2025-10-07"), evt.Day)
			return
		case <-deadline:
			t.Fatal("timed out waiting for day change event")
		}
	}
}

func TestThrottleCollapsesToInvalidate(t *testing.T) {
	th := newEventThrottle(10 * time.Millisecond)
	defer th.Stop()
	got := make(chan Event, 4)
	send := func(ev Event) { got <- ev }

	th.Enqueue(Event{Type: EventDayChanged, Day: "2025-10-07"}, send)
	th.Enqueue(Event{Type: EventInvalidated}, send)

	select {
	case ev := <-got:
		require.Equal(t, EventInvalidated, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("throttle never flushed")
	}
	select {
	case ev := <-got:
		t.Fatalf("expected a single flushed event, got extra %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
