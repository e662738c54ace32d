// Package meter keeps one throughput estimate per observed service, fed by
// events coming out of the receiver.
package meter

import (
	"time"

	"github.com/pako-23/throughput-meter/internal/clock"
	"github.com/pako-23/throughput-meter/internal/rate"
	"github.com/pako-23/throughput-meter/internal/receiver"
)

const DefaultWindow = 10 * time.Second

// Rates is the current throughput of one service.
type Rates struct {
	Events float64 // occurrences per second
	Volume float64 // magnitude units per second, bytes for HTTP spans
}

type serviceMeter struct {
	events rate.Estimator
	volume rate.Estimator
}

// Meters is a per-service table of estimators. Services are added lazily the
// first time an event for them is observed. Not safe for concurrent use.
type Meters struct {
	window    time.Duration
	algorithm rate.Algorithm
	clock     clock.Clock
	services  map[string]*serviceMeter
}

type Option func(*Meters)

func NewMeters(options ...Option) (*Meters, error) {
	meters := &Meters{
		window:    DefaultWindow,
		algorithm: rate.SlidingWindow,
		clock:     clock.System{},
		services:  map[string]*serviceMeter{},
	}

	for _, option := range options {
		option(meters)
	}

	if meters.window <= 0 {
		return nil, rate.ErrInvalidWindow
	}

	switch meters.algorithm {
	case rate.SlidingWindow, rate.ExponentialDecay:
	default:
		return nil, rate.ErrUnknownAlgorithm
	}

	return meters, nil
}

func WithWindow(window time.Duration) Option {
	return func(meters *Meters) {
		meters.window = window
	}
}

func WithAlgorithm(algorithm rate.Algorithm) Option {
	return func(meters *Meters) {
		meters.algorithm = algorithm
	}
}

func WithClock(clk clock.Clock) Option {
	return func(meters *Meters) {
		meters.clock = clk
	}
}

func (m *Meters) newEstimator() (rate.Estimator, error) {
	return rate.New(m.window,
		rate.WithAlgorithm(m.algorithm),
		rate.WithClock(m.clock))
}

// Observe records one event: 1 on the service's event meter and the event's
// magnitude on its volume meter.
func (m *Meters) Observe(event *receiver.Event) error {
	service, ok := m.services[event.ServiceName]
	if !ok {
		events, err := m.newEstimator()
		if err != nil {
			return err
		}

		volume, err := m.newEstimator()
		if err != nil {
			return err
		}

		service = &serviceMeter{events: events, volume: volume}
		m.services[event.ServiceName] = service
	}

	if err := service.events.Record(1); err != nil {
		return err
	}

	return service.volume.Record(event.Magnitude)
}

func (m *Meters) Rates() map[string]Rates {
	rates := make(map[string]Rates, len(m.services))
	for name, service := range m.services {
		rates[name] = Rates{
			Events: service.events.Rate(),
			Volume: service.volume.Rate(),
		}
	}

	return rates
}

func (m *Meters) Reset() {
	for _, service := range m.services {
		service.events.Reset()
		service.volume.Reset()
	}
}
