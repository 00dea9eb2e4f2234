package mqtt

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/MikuMikuMe/smart-energy-monitor/internal/domain"
)

// Config collects the broker settings the client needs.
type Config struct {
	Scheme         string
	Host           string
	Port           int
	ClientID       string
	ConnectTimeout time.Duration
	InboundBuffer  int
}

// InboundMessage is a decoded reading received from the broker.
type InboundMessage struct {
	Topic   string
	Reading domain.Reading
}

// Client wraps the paho MQTT client. Inbound messages land on a bounded
// queue instead of being handled inline, so consumers never run on paho's
// receive goroutine.
type Client struct {
	cli     mqtt.Client
	inbound chan InboundMessage
}

func New(cfg Config) *Client {
	c := &Client{inbound: make(chan InboundMessage, cfg.InboundBuffer)}

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("%s://%s:%d", cfg.Scheme, cfg.Host, cfg.Port)).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetOnConnectHandler(func(mqtt.Client) {
			log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("connected to MQTT broker")
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Error().Err(err).Msg("MQTT connection lost")
		})

	c.cli = mqtt.NewClient(opts)
	return c
}

// Connect blocks until the handshake completes or the configured timeout
// expires.
func (c *Client) Connect() error {
	if token := c.cli.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return nil
}

// Publish sends payload on topic at QoS 0 and waits for the send to finish.
func (c *Client) Publish(topic string, payload []byte) error {
	if token := c.cli.Publish(topic, 0, false, payload); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt publish %s: %w", topic, token.Error())
	}
	return nil
}

// Subscribe registers topic; decoded messages are delivered on Messages.
func (c *Client) Subscribe(topic string) error {
	if token := c.cli.Subscribe(topic, 0, c.enqueue); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", topic, token.Error())
	}
	return nil
}

// enqueue runs on paho's receive goroutine. Undecodable payloads and a full
// queue are logged and dropped; neither affects the publish loop.
func (c *Client) enqueue(_ mqtt.Client, msg mqtt.Message) {
	reading, err := domain.DecodeReading(msg.Payload())
	if err != nil {
		log.Error().Err(err).Str("topic", msg.Topic()).Msg("dropping undecodable message")
		return
	}
	select {
	case c.inbound <- InboundMessage{Topic: msg.Topic(), Reading: reading}:
	default:
		log.Warn().Str("topic", msg.Topic()).Msg("inbound queue full, dropping message")
	}
}

// Messages exposes the inbound queue.
func (c *Client) Messages() <-chan InboundMessage {
	return c.inbound
}

// Close disconnects with a short grace period for in-flight work.
func (c *Client) Close() {
	c.cli.Disconnect(250)
}
