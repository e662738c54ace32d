// Package rate estimates the throughput of a stream of events over a trailing
// time window. Each recorded event carries a magnitude: pass the transferred
// byte count to measure volume, or 1 to measure pure event rate.
package rate

import (
	"errors"
	"time"

	"github.com/pako-23/throughput-meter/internal/clock"
)

var (
	ErrInvalidWindow     = errors.New("rate: window duration must be positive")
	ErrNegativeMagnitude = errors.New("rate: magnitude must be non-negative")
	ErrUnknownAlgorithm  = errors.New("rate: unknown estimation algorithm")
)

// Estimator is the common surface of both estimation algorithms, so callers
// are insulated from the choice made at construction. Estimators are not safe
// for concurrent use; wrap one with Synchronize when multiple goroutines
// share it.
type Estimator interface {
	// Record registers an event with the given magnitude at the current
	// instant. A negative magnitude is rejected with ErrNegativeMagnitude
	// and leaves the estimate unchanged.
	Record(magnitude float64) error

	// Rate returns the current estimate in magnitude units per second. It
	// accounts for time elapsed since the last call, so a long idle period
	// reports a correspondingly low rate. It never fails.
	Rate() float64

	// Reset discards all recorded history; Rate reports 0 immediately after.
	Reset()
}

// Algorithm selects the estimation semantics. The two algorithms are not
// numerically interchangeable: SlidingWindow computes an exact sum over the
// window, ExponentialDecay a smoothed weighted estimate.
type Algorithm int

const (
	// SlidingWindow keeps every sample recorded within the trailing window
	// and reports their exact sum divided by the window length. Memory grows
	// with the number of events inside one window.
	SlidingWindow Algorithm = iota

	// ExponentialDecay keeps a single accumulator attenuated by
	// exp(-elapsed/window) and reports a continuous exponentially weighted
	// estimate. Constant memory regardless of event frequency.
	ExponentialDecay
)

type config struct {
	algorithm Algorithm
	clock     clock.Clock
}

type Option func(*config)

func WithAlgorithm(algorithm Algorithm) Option {
	return func(c *config) {
		c.algorithm = algorithm
	}
}

func WithClock(clk clock.Clock) Option {
	return func(c *config) {
		c.clock = clk
	}
}

// New builds an estimator over the given trailing window. The algorithm
// defaults to SlidingWindow and the clock to the system clock.
func New(window time.Duration, options ...Option) (Estimator, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	conf := &config{
		algorithm: SlidingWindow,
		clock:     clock.System{},
	}
	for _, option := range options {
		option(conf)
	}

	switch conf.algorithm {
	case SlidingWindow:
		return &windowEstimator{window: window, clock: conf.clock}, nil

	case ExponentialDecay:
		return &decayEstimator{
			window: window,
			clock:  conf.clock,
			last:   conf.clock.Now(),
		}, nil

	default:
		return nil, ErrUnknownAlgorithm
	}
}
