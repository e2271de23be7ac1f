package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/lexiconlabs/counsel/pkg/genui"
	"github.com/lexiconlabs/counsel/pkg/session"
)

// FakeEventSource replays a scripted sequence of stream events, standing
// in for the agent transport in tests.
type FakeEventSource struct {
	events     []genui.StreamEvent
	eventDelay time.Duration
}

func NewFakeEventSource(events ...genui.StreamEvent) *FakeEventSource {
	return &FakeEventSource{events: events}
}

// WithDelay makes the source pause between events, mimicking a live
// stream's pacing.
func (f *FakeEventSource) WithDelay(d time.Duration) *FakeEventSource {
	f.eventDelay = d
	return f
}

// Subscribe streams the scripted events on a channel, closing it after
// the last one or when ctx is cancelled.
func (f *FakeEventSource) Subscribe(ctx context.Context) <-chan genui.StreamEvent {
	events := make(chan genui.StreamEvent, len(f.events))

	go func() {
		defer close(events)
		for _, ev := range f.events {
			if f.eventDelay > 0 {
				select {
				case <-ctx.Done():
					return
				case <-time.After(f.eventDelay):
				}
			}
			select {
			case <-ctx.Done():
				return
			case events <- ev:
			}
		}
	}()

	return events
}

// RecordingSender captures dispatched interaction events for assertions.
type RecordingSender struct {
	mu      sync.Mutex
	sent    []session.InteractionEvent
	sendErr error
}

func NewRecordingSender() *RecordingSender {
	return &RecordingSender{}
}

// FailWith makes every subsequent send return err.
func (r *RecordingSender) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sendErr = err
}

func (r *RecordingSender) SendInteraction(ctx context.Context, ev session.InteractionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sendErr != nil {
		return r.sendErr
	}
	r.sent = append(r.sent, ev)
	return nil
}

// Sent returns a copy of the captured events.
func (r *RecordingSender) Sent() []session.InteractionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]session.InteractionEvent, len(r.sent))
	copy(out, r.sent)
	return out
}

var _ session.InteractionSender = (*RecordingSender)(nil)
