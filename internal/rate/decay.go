package rate

import (
	"math"
	"time"

	"github.com/pako-23/throughput-meter/internal/clock"
)

// decayEstimator keeps a single accumulator attenuated by exp(-elapsed/window)
// on every operation. Memory use is constant regardless of event frequency, at
// the cost of a smoothed estimate instead of an exact windowed sum.
type decayEstimator struct {
	window      time.Duration
	clock       clock.Clock
	accumulator float64
	last        time.Time
}

func (d *decayEstimator) decay(now time.Time) {
	elapsed := now.Sub(d.last)
	if elapsed <= 0 {
		return
	}

	d.accumulator *= math.Exp(-elapsed.Seconds() / d.window.Seconds())
	d.last = now
}

func (d *decayEstimator) Record(magnitude float64) error {
	if magnitude < 0 {
		return ErrNegativeMagnitude
	}

	d.decay(d.clock.Now())
	d.accumulator += magnitude

	return nil
}

func (d *decayEstimator) Rate() float64 {
	d.decay(d.clock.Now())

	return d.accumulator / d.window.Seconds()
}

func (d *decayEstimator) Reset() {
	d.accumulator = 0
	d.last = d.clock.Now()
}
