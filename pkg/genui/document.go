package genui

import "time"

// Document is the render-ready projection of a stream at a point in time.
// It is derived, never stored: renderers pull a fresh projection on every
// read instead of the engine pushing updates.
type Document struct {
	ID         string           `json:"id"`
	Components []Component      `json:"components"`
	Metadata   DocumentMetadata `json:"metadata"`
}

// DocumentMetadata carries the document-level fields renderers key off.
// ExpiresAt is promoted out of the opaque start metadata at projection
// time; Extra holds the rest of that metadata untouched.
type DocumentMetadata struct {
	Agent         string         `json:"agent,omitempty"`
	Collapsible   bool           `json:"collapsible"`
	ExpiresAt     *time.Time     `json:"expiresAt,omitempty"`
	ExpectedTypes []Kind         `json:"expectedTypes,omitempty"`
	Extra         map[string]any `json:"extra,omitempty"`
}

// Project derives a Document from the stream's current state. The
// component slice is copied so a renderer holding the snapshot never sees
// later mutations; the opaque payloads inside stay shared, renderers treat
// them as read-only. A finished stream projects as collapsible.
//
// Project alone does not synchronize against the session writer; use
// ProjectStream when the state lives in a shared registry.
func Project(state *StreamState) Document {
	components := make([]Component, len(state.Components))
	copy(components, state.Components)

	meta := DocumentMetadata{
		Agent:         state.Agent,
		Collapsible:   !state.IsStreaming,
		ExpectedTypes: state.ExpectedTypes,
		Extra:         state.Metadata,
	}
	if deadline, ok := expiryFromMetadata(state.Metadata); ok {
		meta.ExpiresAt = &deadline
	}

	return Document{
		ID:         state.StreamID,
		Components: components,
		Metadata:   meta,
	}
}

// ProjectStream projects one stream's document under the registry's read
// lock, so a render tick never observes a transition mid-write.
func ProjectStream(reg *Registry, streamID string) (Document, bool) {
	var doc Document
	ok := reg.View(streamID, func(state *StreamState) {
		doc = Project(state)
	})
	return doc, ok
}
