package session

import "context"

// InteractionType classifies a user-originated interaction event.
type InteractionType string

const (
	InteractionAction     InteractionType = "action"
	InteractionFormSubmit InteractionType = "form-submit"
	InteractionSelection  InteractionType = "selection"
	InteractionDismiss    InteractionType = "dismiss"
)

// InteractionEvent is the outbound event forwarded to the agent when the
// user interacts with a rendered component.
type InteractionEvent struct {
	EventID     string          `json:"eventId,omitempty"`
	Type        InteractionType `json:"type"`
	ActionID    string          `json:"actionId"`
	ComponentID string          `json:"componentId"`
	Payload     map[string]any  `json:"payload,omitempty"`
	FormData    map[string]any  `json:"formData,omitempty"`
}

// InteractionSender forwards interaction events to the agent service.
type InteractionSender interface {
	SendInteraction(ctx context.Context, ev InteractionEvent) error
}
