package genui

// Reap removes every finished stream from the registry and returns the ids
// it removed. The sweep runs under one write lock, so a stream restarted
// while reaping is never mistaken for a finished one. Streams still marked
// streaming are untouched, so repeated calls are harmless. Reaping is
// always on demand; an end event never triggers it, which keeps finished
// documents queryable until the host decides otherwise.
func Reap(reg *Registry) []string {
	return reg.Sweep(func(state *StreamState) bool {
		return !state.IsStreaming
	})
}
