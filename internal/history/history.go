package history

import (
	"sync"

	"github.com/MikuMikuMe/smart-energy-monitor/internal/domain"
)

// History is the in-process log of every reading generated this run.
// It is append-only and unbounded; nothing is persisted across restarts.
// The publish loop is the sole writer, but the status API reads snapshots
// concurrently, hence the lock.
type History struct {
	mu       sync.RWMutex
	readings []domain.Reading
}

func New() *History {
	return &History{}
}

// Append records a reading at the end of the log.
func (h *History) Append(r domain.Reading) {
	h.mu.Lock()
	h.readings = append(h.readings, r)
	h.mu.Unlock()
}

// Snapshot returns a copy of the readings in generation order.
func (h *History) Snapshot() []domain.Reading {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]domain.Reading, len(h.readings))
	copy(out, h.readings)
	return out
}

// Len reports how many readings have been collected so far.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.readings)
}
