// Package timing provides a small monotonic stopwatch for measuring single
// operations. It wraps the stdlib time package; readings use the monotonic
// clock, so wall-clock adjustments cannot skew a measurement.
package timing

import "time"

// Stopwatch measures elapsed time between Start and Stop. The zero value is
// usable; Start may be called again to reuse the watch for a new measurement.
type Stopwatch struct {
	started time.Time
	stopped time.Time
	running bool
}

// Start begins (or restarts) a measurement.
// Complexity: O(1).
func (s *Stopwatch) Start() {
	s.started = time.Now()
	s.running = true
}

// Stop ends the measurement and returns the elapsed duration. Stopping an
// idle watch returns the previously recorded duration (zero if none).
// Complexity: O(1).
func (s *Stopwatch) Stop() time.Duration {
	if s.running {
		s.stopped = time.Now()
		s.running = false
	}

	return s.stopped.Sub(s.started)
}

// Elapsed returns the running duration without stopping the watch, or the
// recorded duration if the watch is already stopped.
// Complexity: O(1).
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return time.Since(s.started)
	}

	return s.stopped.Sub(s.started)
}

// Measure runs fn and returns how long it took.
// Complexity: O(fn).
func Measure(fn func()) time.Duration {
	var sw Stopwatch
	sw.Start()
	fn()

	return sw.Stop()
}
