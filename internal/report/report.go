package report

import "github.com/pako-23/throughput-meter/internal/meter"

// Reporter consumes the rates sampled on every monitor tick.
type Reporter interface {
	Report(rates map[string]meter.Rates) error
}
