package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MikuMikuMe/smart-energy-monitor/internal/history"
	"github.com/MikuMikuMe/smart-energy-monitor/internal/mqtt"
	"github.com/MikuMikuMe/smart-energy-monitor/internal/simulator"
)

// Publisher is the transmit half of the MQTT client.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// Runner drives the fixed-interval publish loop: generate a reading, record
// it, send it to the broker, wait.
type Runner struct {
	gen      *simulator.Generator
	hist     *history.History
	pub      Publisher
	topic    string
	interval time.Duration
}

func New(gen *simulator.Generator, hist *history.History, pub Publisher, topic string, interval time.Duration) *Runner {
	return &Runner{
		gen:      gen,
		hist:     hist,
		pub:      pub,
		topic:    topic,
		interval: interval,
	}
}

// Run publishes one reading per interval until ctx is cancelled or an
// iteration fails. Failures are not retried; the caller decides what they
// mean for the process. Cancellation is a clean shutdown and returns nil.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if err := r.step(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (r *Runner) step() error {
	reading := r.gen.Generate()
	r.hist.Append(reading)

	payload, err := reading.Encode()
	if err != nil {
		return fmt.Errorf("encode reading: %w", err)
	}
	if err := r.pub.Publish(r.topic, payload); err != nil {
		return fmt.Errorf("publish reading: %w", err)
	}

	log.Info().
		Str("topic", r.topic).
		Time("timestamp", reading.Timestamp).
		Interface("appliances", reading.Appliances).
		Msg("published reading")
	return nil
}

// LogInbound drains msgs until the channel closes or ctx is cancelled,
// logging each received reading.
func LogInbound(ctx context.Context, msgs <-chan mqtt.InboundMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-msgs:
			if !ok {
				return
			}
			log.Info().
				Str("topic", m.Topic).
				Time("timestamp", m.Reading.Timestamp).
				Interface("appliances", m.Reading.Appliances).
				Msg("received reading")
		}
	}
}
