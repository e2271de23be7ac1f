package session

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lexiconlabs/counsel/pkg/genui"
	"github.com/lexiconlabs/counsel/pkg/logger"
)

// Session owns the stream registry for one user session. Run is the
// single writer: all registry mutations happen on its goroutine in
// transport delivery order, while snapshot reads can come from anywhere.
type Session struct {
	registry *genui.Registry
	sender   InteractionSender
}

// NewSession creates a session with an empty registry. The sender may be
// nil for sessions that never forward interactions (debug replays).
func NewSession(sender InteractionSender) *Session {
	return &Session{
		registry: genui.NewRegistry(),
		sender:   sender,
	}
}

// Registry exposes the underlying registry for diagnostics.
func (s *Session) Registry() *genui.Registry {
	return s.registry
}

// Run drains the event channel, applying each event in arrival order. It
// returns when the channel closes or the context is cancelled. Streams
// still marked streaming at that point are simply abandoned; there is no
// mid-stream cancellation, only reap or teardown.
func (s *Session) Run(ctx context.Context, events <-chan genui.StreamEvent) {
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Session event loop stopped: %v", ctx.Err())
			return
		case ev, ok := <-events:
			if !ok {
				logger.Debug("Session event channel closed")
				return
			}
			genui.Apply(s.registry, ev)
		}
	}
}

// Apply feeds a single event through the engine. Tests and the debug
// replay use this directly instead of Run.
func (s *Session) Apply(ev genui.StreamEvent) {
	genui.Apply(s.registry, ev)
}

// Snapshot projects the current document for one stream, synchronized
// against the Run goroutine's writes.
func (s *Session) Snapshot(streamID string) (genui.Document, bool) {
	return genui.ProjectStream(s.registry, streamID)
}

// Snapshots projects every live document, ordered by stream id so render
// output is stable across calls.
func (s *Session) Snapshots() []genui.Document {
	ids := s.registry.Entries()
	sort.Strings(ids)

	docs := make([]genui.Document, 0, len(ids))
	for _, id := range ids {
		if doc, exists := genui.ProjectStream(s.registry, id); exists {
			docs = append(docs, doc)
		}
	}
	return docs
}

// Dispatch forwards a user interaction on the given document, unless the
// document has expired. Expired interactions are dropped with a
// diagnostic; the document itself keeps rendering. Events without an id
// get one assigned.
func (s *Session) Dispatch(ctx context.Context, doc genui.Document, ev InteractionEvent) error {
	if genui.Expired(doc, time.Now()) {
		logger.Info("Dropping %s interaction on expired document %s", ev.Type, doc.ID)
		return nil
	}
	if ev.EventID == "" {
		ev.EventID = uuid.New().String()
	}
	if s.sender == nil {
		logger.Debug("No interaction sender configured, dropping event %s", ev.EventID)
		return nil
	}
	return s.sender.SendInteraction(ctx, ev)
}

// Reap removes finished streams from the registry.
func (s *Session) Reap() []string {
	reaped := genui.Reap(s.registry)
	if len(reaped) > 0 {
		logger.Debug("Reaped %d finished streams", len(reaped))
	}
	return reaped
}

// Teardown clears the registry. The session can be reused afterwards but
// every accumulated stream is gone.
func (s *Session) Teardown() {
	for _, id := range s.registry.Entries() {
		s.registry.Delete(id)
	}
}
