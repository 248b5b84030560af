package tabletop

import (
	"math"
	"time"
)

// tickLogger counts passes and reports when a fixed interval of host time
// has elapsed. Time is measured in passes at a fixed TPS, so headless runs
// tick exactly like windowed ones.
type tickLogger struct {
	every  int
	passes int
	count  int
}

// newTickLogger returns a ticker firing every interval at tps passes per
// second. A non-positive interval or tps disables it.
func newTickLogger(interval time.Duration, tps int) tickLogger {
	if interval <= 0 || tps <= 0 {
		return tickLogger{}
	}
	every := int(math.Round(interval.Seconds() * float64(tps)))
	if every < 1 {
		every = 1
	}
	return tickLogger{every: every}
}

// advance counts one pass and reports whether the interval just elapsed.
func (t *tickLogger) advance() bool {
	if t.every == 0 {
		return false
	}
	t.passes++
	if t.passes < t.every {
		return false
	}
	t.passes = 0
	t.count++
	return true
}
