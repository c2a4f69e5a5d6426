package workload

import "time"

// Clock is a monotonic timestamp source. The traffic generators and the
// experiment loop consult it at every poll, so tests can substitute a
// simulated clock and drive elapsed time without real delays.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
