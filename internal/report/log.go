package report

import (
	"log"

	"github.com/pako-23/throughput-meter/internal/meter"
)

// LogReporter writes the rendered rate table to the standard logger.
type LogReporter struct{}

func (l *LogReporter) Report(rates map[string]meter.Rates) error {
	log.Printf("current rates:\n%s", meter.Render(rates))
	return nil
}
