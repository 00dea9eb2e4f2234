package history

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MikuMikuMe/smart-energy-monitor/internal/domain"
)

func reading(heating float64) domain.Reading {
	return domain.Reading{
		Timestamp:  time.Now(),
		Appliances: map[domain.Category]float64{domain.Heating: heating},
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	h := New()
	h.Append(reading(1.0))
	h.Append(reading(2.0))
	h.Append(reading(3.0))

	snap := h.Snapshot()
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 1.0, snap[0].Appliances[domain.Heating])
	assert.Equal(t, 2.0, snap[1].Appliances[domain.Heating])
	assert.Equal(t, 3.0, snap[2].Appliances[domain.Heating])
}

func TestSnapshotIsACopy(t *testing.T) {
	h := New()
	h.Append(reading(1.0))

	snap := h.Snapshot()
	h.Append(reading(2.0))

	assert.Len(t, snap, 1)
	assert.Equal(t, 2, h.Len())
}

func TestConcurrentReadersAndWriter(t *testing.T) {
	h := New()
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			h.Append(reading(float64(i)))
		}
	}()
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = h.Snapshot()
				_ = h.Len()
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 100, h.Len())
}
