package monitor

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikuMikuMe/smart-energy-monitor/internal/domain"
	"github.com/MikuMikuMe/smart-energy-monitor/internal/history"
	"github.com/MikuMikuMe/smart-energy-monitor/internal/mqtt"
	"github.com/MikuMikuMe/smart-energy-monitor/internal/simulator"
)

type fakePublisher struct {
	mu       sync.Mutex
	topics   []string
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

func newRunner(pub Publisher, hist *history.History) *Runner {
	gen := simulator.New(rand.New(rand.NewSource(1)))
	return New(gen, hist, pub, "home/energy", time.Millisecond)
}

func TestRunPublishesAndRecordsReadings(t *testing.T) {
	pub := &fakePublisher{}
	hist := history.New()
	r := newRunner(pub, hist)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, pub.count(), 1)
	assert.Equal(t, pub.count(), hist.Len())

	for _, topic := range pub.topics {
		assert.Equal(t, "home/energy", topic)
	}
	for _, payload := range pub.payloads {
		reading, err := domain.DecodeReading(payload)
		require.NoError(t, err)
		assert.Len(t, reading.Appliances, len(domain.Categories))
	}
}

func TestRunStopsOnPublishError(t *testing.T) {
	wantErr := errors.New("broker gone")
	pub := &fakePublisher{err: wantErr}
	hist := history.New()
	r := newRunner(pub, hist)

	err := r.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)

	// The reading is recorded before the failed send.
	assert.Equal(t, 1, hist.Len())
}

func TestRunReturnsNilOnCancellation(t *testing.T) {
	pub := &fakePublisher{}
	hist := history.New()
	r := newRunner(pub, hist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, r.Run(ctx))
}

func TestLogInboundReturnsWhenChannelCloses(t *testing.T) {
	msgs := make(chan mqtt.InboundMessage, 1)
	msgs <- mqtt.InboundMessage{Topic: "home/energy"}
	close(msgs)

	done := make(chan struct{})
	go func() {
		LogInbound(context.Background(), msgs)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("LogInbound did not return after channel close")
	}
}
