package rate_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/pako-23/throughput-meter/internal/clock"
	"github.com/pako-23/throughput-meter/internal/rate"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

func compareFloats(value float64, expected float64, eps float64) cmp.Comparison {
	return func() cmp.Result {
		if math.Abs(expected-value) > eps {
			return cmp.ResultFailure(fmt.Sprintf("expected %f, but got %f", expected, value))
		}

		return cmp.ResultSuccess
	}
}

type step struct {
	advance   time.Duration
	magnitude float64
}

func TestWindowRate(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name     string
		window   time.Duration
		steps    []step
		advance  time.Duration
		expected float64
	}{
		{
			name:     "no samples",
			window:   10 * time.Second,
			steps:    nil,
			advance:  0,
			expected: 0.0,
		},
		{
			name:   "all samples inside the window",
			window: 10 * time.Second,
			steps: []step{
				{advance: 0, magnitude: 5},
				{advance: 4 * time.Second, magnitude: 5},
			},
			advance:  time.Second,
			expected: 1.0,
		},
		{
			name:   "oldest sample evicted",
			window: 10 * time.Second,
			steps: []step{
				{advance: 0, magnitude: 5},
				{advance: 4 * time.Second, magnitude: 5},
			},
			advance:  7 * time.Second,
			expected: 0.5,
		},
		{
			name:   "zero magnitude samples count nothing",
			window: 10 * time.Second,
			steps: []step{
				{advance: 0, magnitude: 0},
				{advance: time.Second, magnitude: 2},
				{advance: time.Second, magnitude: 0},
			},
			advance:  0,
			expected: 0.2,
		},
		{
			name:   "event counting with unit magnitudes",
			window: 2 * time.Second,
			steps: []step{
				{advance: 0, magnitude: 1},
				{advance: time.Second, magnitude: 1},
				{advance: time.Second, magnitude: 1},
			},
			advance:  0,
			expected: 1.5,
		},
		{
			name:   "everything outside the window",
			window: time.Second,
			steps: []step{
				{advance: 0, magnitude: 10},
				{advance: time.Second, magnitude: 10},
			},
			advance:  5 * time.Second,
			expected: 0.0,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			clk := clock.NewManual(time.Unix(0, 0))
			estimator, err := rate.New(test.window, rate.WithClock(clk))
			assert.NilError(t, err)

			for _, step := range test.steps {
				clk.Advance(step.advance)
				assert.NilError(t, estimator.Record(step.magnitude))
			}

			clk.Advance(test.advance)
			assert.Assert(t, compareFloats(estimator.Rate(), test.expected, 10e-9))
		})
	}
}

func TestWindowBoundaryInclusive(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Unix(0, 0))
	estimator, err := rate.New(10*time.Second, rate.WithClock(clk))
	assert.NilError(t, err)

	assert.NilError(t, estimator.Record(5))

	clk.Advance(10 * time.Second)
	assert.Assert(t, compareFloats(estimator.Rate(), 0.5, 10e-9),
		"a sample at exactly now - window should still be retained")

	clk.Advance(time.Nanosecond)
	assert.Assert(t, compareFloats(estimator.Rate(), 0.0, 10e-9))
}

func TestWindowEvictionAfterIdle(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Unix(0, 0))
	estimator, err := rate.New(time.Second, rate.WithClock(clk))
	assert.NilError(t, err)

	for i := 0; i < 100; i++ {
		assert.NilError(t, estimator.Record(float64(i)))
	}
	assert.Assert(t, estimator.Rate() > 0)

	clk.Advance(2 * time.Second)
	assert.Assert(t, compareFloats(estimator.Rate(), 0.0, 10e-9))
}

func TestWindowSameInstantSamples(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Unix(0, 0))
	estimator, err := rate.New(time.Second, rate.WithClock(clk))
	assert.NilError(t, err)

	for i := 0; i < 10; i++ {
		assert.NilError(t, estimator.Record(1))
	}
	assert.Assert(t, compareFloats(estimator.Rate(), 10.0, 10e-9))

	clk.Advance(time.Second + time.Nanosecond)
	assert.Assert(t, compareFloats(estimator.Rate(), 0.0, 10e-9),
		"samples sharing an instant should be evicted together")
}

func TestWindowReset(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Unix(0, 0))
	estimator, err := rate.New(10*time.Second, rate.WithClock(clk))
	assert.NilError(t, err)

	assert.NilError(t, estimator.Record(5))
	assert.NilError(t, estimator.Record(5))

	estimator.Reset()
	assert.Assert(t, compareFloats(estimator.Rate(), 0.0, 10e-9))

	estimator.Reset()
	assert.Assert(t, compareFloats(estimator.Rate(), 0.0, 10e-9))

	assert.NilError(t, estimator.Record(5))
	assert.Assert(t, compareFloats(estimator.Rate(), 0.5, 10e-9))
}

func TestWindowNegativeMagnitude(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Unix(0, 0))
	estimator, err := rate.New(10*time.Second, rate.WithClock(clk))
	assert.NilError(t, err)

	assert.NilError(t, estimator.Record(5))
	before := estimator.Rate()

	assert.ErrorIs(t, estimator.Record(-1), rate.ErrNegativeMagnitude)
	assert.Assert(t, compareFloats(estimator.Rate(), before, 10e-9),
		"a rejected record should leave the estimate unchanged")
}

func TestWindowNonNegative(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Unix(0, 0))
	estimator, err := rate.New(time.Second, rate.WithClock(clk))
	assert.NilError(t, err)

	for i := 0; i < 1000; i++ {
		assert.NilError(t, estimator.Record(float64(i%7)))
		assert.Assert(t, estimator.Rate() >= 0)
		clk.Advance(100 * time.Millisecond)
	}
}
