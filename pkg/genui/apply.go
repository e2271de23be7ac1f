package genui

import "github.com/lexiconlabs/counsel/pkg/logger"

// Apply routes one inbound event to its lifecycle transition. Every
// transition is total: a malformed or stale reference (unknown stream,
// unknown component id, missing payload) degrades to a logged no-op so
// that one bad network event can never take down a live session. Each
// transition runs under the registry's write lock, so concurrent
// projections never observe a half-applied event.
func Apply(reg *Registry, ev StreamEvent) {
	switch ev.Action {
	case ActionStart:
		applyStart(reg, ev)
	case ActionComponent:
		applyComponent(reg, ev)
	case ActionDelta:
		applyDelta(reg, ev)
	case ActionEnd:
		applyEnd(reg, ev)
	default:
		logger.Debug("Ignoring stream event with unknown action %q for stream %s", ev.Action, ev.StreamID)
	}
}

// applyStart unconditionally creates the stream entry. Starting a stream
// that already exists overwrites it with an empty component list: last
// start wins, the earlier accumulation is discarded.
func applyStart(reg *Registry, ev StreamEvent) {
	if _, exists := reg.Get(ev.StreamID); exists {
		logger.Debug("Restarting stream %s, discarding accumulated components", ev.StreamID)
	}
	reg.Set(ev.StreamID, NewStreamState(ev.StreamID, ev))
}

// applyComponent appends the declared component to the end of the stream's
// list. Components are not deduplicated by id; two components delivered
// with the same id legally coexist, and only delta resolves by id.
func applyComponent(reg *Registry, ev StreamEvent) {
	if ev.Component == nil {
		logger.Debug("Dropping component event without payload for stream %s", ev.StreamID)
		return
	}
	ok := reg.Mutate(ev.StreamID, func(state *StreamState) {
		state.Components = append(state.Components, *ev.Component)
	})
	if !ok {
		logger.Debug("Dropping component event for unknown stream %s", ev.StreamID)
	}
}

// applyDelta shallow-merges the delta payload into the first component
// whose id matches. Top-level keys in the delta replace existing keys
// wholesale; nested structures are never combined field by field.
func applyDelta(reg *Registry, ev StreamEvent) {
	if ev.ComponentID == "" || len(ev.Delta) == 0 {
		logger.Debug("Dropping delta event without target or payload for stream %s", ev.StreamID)
		return
	}
	found := false
	ok := reg.Mutate(ev.StreamID, func(state *StreamState) {
		idx := state.findComponent(ev.ComponentID)
		if idx < 0 {
			return
		}
		state.Components[idx].Data = MergeData(state.Components[idx].Data, ev.Delta)
		found = true
	})
	if !ok {
		logger.Debug("Dropping delta event for unknown stream %s", ev.StreamID)
		return
	}
	if !found {
		logger.Debug("Dropping delta for unknown component %s in stream %s", ev.ComponentID, ev.StreamID)
	}
}

// applyEnd marks the stream as finished. Components are untouched, and the
// entry stays queryable until an explicit reap removes it.
func applyEnd(reg *Registry, ev StreamEvent) {
	ok := reg.Mutate(ev.StreamID, func(state *StreamState) {
		state.IsStreaming = false
	})
	if !ok {
		logger.Debug("Dropping end event for unknown stream %s", ev.StreamID)
	}
}
