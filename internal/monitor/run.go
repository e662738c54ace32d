package monitor

import (
	"context"
	"log"
	"time"

	"github.com/pako-23/throughput-meter/internal/receiver"
)

// Run feeds incoming events into the meters and reports the current rates at
// every interval until the context is cancelled.
func (m *Monitor) Run(ctx context.Context, ch <-chan *receiver.Event) {
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.reporter.Report(m.Meters.Rates()); err != nil {
				log.Println(err)
			}

		case event := <-ch:
			if err := m.Meters.Observe(event); err != nil {
				log.Println(err)
			}

		case <-ctx.Done():
			return
		}
	}
}
