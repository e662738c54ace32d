package rate

import "sync"

// Synchronized wraps an estimator so that every call is individually atomic.
// Interleaved calls from multiple goroutines each observe a consistent
// snapshot; no ordering between them is guaranteed beyond that.
type Synchronized struct {
	mutex     sync.Mutex
	estimator Estimator
}

// Synchronize takes ownership of est, which must not be used directly
// afterwards.
func Synchronize(est Estimator) *Synchronized {
	return &Synchronized{estimator: est}
}

func (s *Synchronized) Record(magnitude float64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.estimator.Record(magnitude)
}

func (s *Synchronized) Rate() float64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.estimator.Rate()
}

func (s *Synchronized) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.estimator.Reset()
}
