package monitor

import (
	"time"

	"github.com/pako-23/throughput-meter/internal/meter"
	"github.com/pako-23/throughput-meter/internal/report"
)

const DefaultInterval = 5 * time.Second

type Monitor struct {
	Interval time.Duration
	Meters   *meter.Meters
	reporter report.Reporter
}

type Option func(*Monitor)

func NewMonitor(options ...Option) *Monitor {
	// The default meter configuration is always valid.
	meters, _ := meter.NewMeters()

	monitor := &Monitor{
		Interval: DefaultInterval,
		Meters:   meters,
		reporter: &report.NullReporter{},
	}

	for _, opt := range options {
		opt(monitor)
	}

	return monitor
}

func WithReporter(reporter report.Reporter) Option {
	return func(monitor *Monitor) {
		monitor.reporter = reporter
	}
}

func WithInterval(interval time.Duration) Option {
	return func(monitor *Monitor) {
		monitor.Interval = interval
	}
}

func WithMeters(meters *meter.Meters) Option {
	return func(monitor *Monitor) {
		monitor.Meters = meters
	}
}
