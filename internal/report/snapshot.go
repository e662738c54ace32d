package report

import (
	"sync"

	"github.com/pako-23/throughput-meter/internal/meter"
)

// Snapshot keeps the latest rendered rate table. Report and State may be
// called from different goroutines.
type Snapshot struct {
	mutex sync.RWMutex
	state string
}

func NewSnapshot() *Snapshot {
	return &Snapshot{state: meter.Render(nil)}
}

func (s *Snapshot) Report(rates map[string]meter.Rates) error {
	rendered := meter.Render(rates)

	s.mutex.Lock()
	s.state = rendered
	s.mutex.Unlock()

	return nil
}

func (s *Snapshot) State() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.state
}
