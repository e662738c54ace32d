package rate

import (
	"time"

	"github.com/pako-23/throughput-meter/internal/clock"
)

type sample struct {
	instant   time.Time
	magnitude float64
}

// windowEstimator retains the samples recorded within the trailing window in
// insertion order. The clock is monotonic, so insertion order is also time
// order: new samples enter at the back and stale ones leave from the front,
// which makes eviction amortized O(1) per call.
type windowEstimator struct {
	window  time.Duration
	clock   clock.Clock
	samples []sample
	sum     float64
}

// evict drops every sample older than the window. A sample at exactly
// now - window is still inside the window and stays.
func (w *windowEstimator) evict(now time.Time) {
	evicted := 0
	for evicted < len(w.samples) && now.Sub(w.samples[evicted].instant) > w.window {
		w.sum -= w.samples[evicted].magnitude
		evicted++
	}

	if evicted == len(w.samples) {
		w.samples = w.samples[:0]
		w.sum = 0
		return
	}

	w.samples = w.samples[evicted:]
}

func (w *windowEstimator) Record(magnitude float64) error {
	if magnitude < 0 {
		return ErrNegativeMagnitude
	}

	now := w.clock.Now()
	w.evict(now)
	w.samples = append(w.samples, sample{instant: now, magnitude: magnitude})
	w.sum += magnitude

	return nil
}

func (w *windowEstimator) Rate() float64 {
	w.evict(w.clock.Now())

	return w.sum / w.window.Seconds()
}

func (w *windowEstimator) Reset() {
	w.samples = w.samples[:0]
	w.sum = 0
}
