package genui

// StreamState is the accumulating document for one in-flight agent turn.
// Components keep arrival order and are never re-sorted. ExpectedTypes is
// a placeholder hint for renderers while streaming; it is never enforced
// against the components that actually arrive.
type StreamState struct {
	StreamID      string
	Components    []Component
	Agent         string
	IsStreaming   bool
	ExpectedTypes []Kind
	Metadata      map[string]any
}

// NewStreamState creates a fresh streaming state with an empty component
// list. A start event always goes through here, so restarting an existing
// stream discards whatever had accumulated.
func NewStreamState(streamID string, ev StreamEvent) *StreamState {
	return &StreamState{
		StreamID:      streamID,
		Components:    []Component{},
		Agent:         ev.Agent,
		IsStreaming:   true,
		ExpectedTypes: ev.ExpectedTypes,
		Metadata:      ev.Metadata,
	}
}

// findComponent returns the index of the first component whose id matches,
// or -1. First match wins when duplicate ids coexist.
func (s *StreamState) findComponent(id string) int {
	for i := range s.Components {
		if s.Components[i].ID == id {
			return i
		}
	}
	return -1
}
