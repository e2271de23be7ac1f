package genui

// Action selects which lifecycle transition a stream event requests.
type Action string

const (
	ActionStart     Action = "stream_start"
	ActionComponent Action = "stream_component"
	ActionDelta     Action = "stream_delta"
	ActionEnd       Action = "stream_end"
)

// StreamEvent is one inbound partial update from the agent transport.
// Which optional fields are meaningful depends on Action: Component for
// stream_component, ComponentID and Delta for stream_delta, everything
// else for stream_start.
type StreamEvent struct {
	StreamID      string         `json:"streamId"`
	Action        Action         `json:"action"`
	Agent         string         `json:"agent,omitempty"`
	ComponentID   string         `json:"componentId,omitempty"`
	Delta         map[string]any `json:"delta,omitempty"`
	Component     *Component     `json:"component,omitempty"`
	ExpectedTypes []Kind         `json:"expectedTypes,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}
