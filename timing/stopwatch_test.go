package timing_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/blockseq/timing"
	"github.com/stretchr/testify/assert"
)

// TestStopwatch_StartStop verifies a basic measurement brackets the slept
// interval and that Stop is idempotent.
func TestStopwatch_StartStop(t *testing.T) {
	var sw timing.Stopwatch

	sw.Start()
	time.Sleep(10 * time.Millisecond)
	d := sw.Stop()

	assert.GreaterOrEqual(t, d, 10*time.Millisecond, "measurement covers the sleep")
	assert.Less(t, d, 5*time.Second, "sanity upper bound")

	// A second Stop returns the same recorded duration.
	assert.Equal(t, d, sw.Stop())
	assert.Equal(t, d, sw.Elapsed(), "Elapsed after Stop returns the recording")
}

// TestStopwatch_ZeroValue verifies the zero value reports zero before use.
func TestStopwatch_ZeroValue(t *testing.T) {
	var sw timing.Stopwatch
	assert.Equal(t, time.Duration(0), sw.Stop())
}

// TestStopwatch_ElapsedWhileRunning verifies readings grow monotonically on
// a running watch.
func TestStopwatch_ElapsedWhileRunning(t *testing.T) {
	var sw timing.Stopwatch
	sw.Start()

	first := sw.Elapsed()
	time.Sleep(time.Millisecond)
	second := sw.Elapsed()

	assert.GreaterOrEqual(t, second, first, "elapsed never moves backwards")
}

// TestMeasure verifies the convenience wrapper times the callback.
func TestMeasure(t *testing.T) {
	d := timing.Measure(func() { time.Sleep(5 * time.Millisecond) })
	assert.GreaterOrEqual(t, d, 5*time.Millisecond)
}
