package chainfmt

import (
	"io"
	"sync/atomic"
)

// WriteFailure describes one printed line that did not fully reach its
// output.
type WriteFailure struct {
	Route     Route
	Err       error
	Written   int
	Attempted int
}

// WriteStats counts failed and short writes of one route.
type WriteStats struct {
	Failures    uint64
	ShortWrites uint64
}

type routeCounters struct {
	failures    atomic.Uint64
	shortWrites atomic.Uint64
}

// ObservedWriter wraps an output and counts failed writes per route. Lines
// printed by a Formatter are attributed to the route of the chain that
// printed them; direct Write calls are attributed to the writer's own route.
type ObservedWriter struct {
	dst       io.Writer
	route     Route
	onFailure func(WriteFailure)
	counters  [routeCount]routeCounters
}

// NewObservedWriter wraps dst. route attributes direct Write calls; onFailure
// may be nil.
func NewObservedWriter(dst io.Writer, route Route, onFailure func(WriteFailure)) *ObservedWriter {
	if dst == nil {
		dst = io.Discard
	}
	return &ObservedWriter{
		dst:       dst,
		route:     route.valid(),
		onFailure: onFailure,
	}
}

func (w *ObservedWriter) Write(p []byte) (int, error) {
	return w.writeRoute(w.route, p)
}

func (w *ObservedWriter) writeRoute(route Route, p []byte) (int, error) {
	if w == nil {
		return len(p), nil
	}
	route = route.valid()
	n, err := w.dst.Write(p)
	if n == len(p) && err == nil {
		return n, nil
	}
	counters := &w.counters[route]
	if n != len(p) {
		counters.shortWrites.Add(1)
		if err == nil {
			err = io.ErrShortWrite
		}
	}
	counters.failures.Add(1)
	if w.onFailure != nil {
		w.onFailure(WriteFailure{Route: route, Err: err, Written: n, Attempted: len(p)})
	}
	return n, err
}

// Stats returns the counters of route.
func (w *ObservedWriter) Stats(route Route) WriteStats {
	if w == nil {
		return WriteStats{}
	}
	counters := &w.counters[route.valid()]
	return WriteStats{
		Failures:    counters.failures.Load(),
		ShortWrites: counters.shortWrites.Load(),
	}
}

// Close releases dst when a formatter opened it (see FromEnv); other writers
// stay open.
func (w *ObservedWriter) Close() error {
	return w.closeOwned()
}

func (w *ObservedWriter) closeOwned() error {
	if w == nil {
		return nil
	}
	return closeOutput(w.dst)
}
