package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

func Load() error {
	// Broker configuration
	viper.SetDefault("MQTT_SCHEME", "tcp")
	viper.SetDefault("MQTT_HOST", "localhost")
	viper.SetDefault("MQTT_PORT", 1883)
	viper.SetDefault("MQTT_TOPIC", "home/energy")
	viper.SetDefault("MQTT_CLIENT_ID", "smart-energy-monitor")
	viper.SetDefault("CONNECT_TIMEOUT", 60*time.Second)

	// Publisher configuration
	viper.SetDefault("PUBLISH_INTERVAL", 5*time.Second)
	viper.SetDefault("INBOUND_BUFFER", 16)

	// Status API
	viper.SetDefault("API_ADDR", ":8080")

	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()
	return nil
}

func BrokerScheme() string           { return viper.GetString("MQTT_SCHEME") }
func BrokerHost() string             { return viper.GetString("MQTT_HOST") }
func BrokerPort() int                { return viper.GetInt("MQTT_PORT") }
func Topic() string                  { return viper.GetString("MQTT_TOPIC") }
func ClientID() string               { return viper.GetString("MQTT_CLIENT_ID") }
func ConnectTimeout() time.Duration  { return viper.GetDuration("CONNECT_TIMEOUT") }
func PublishInterval() time.Duration { return viper.GetDuration("PUBLISH_INTERVAL") }
func InboundBuffer() int             { return viper.GetInt("INBOUND_BUFFER") }
func APIAddr() string                { return viper.GetString("API_ADDR") }
func LogLevel() string               { return viper.GetString("LOG_LEVEL") }

// BrokerURL renders the broker endpoint the way paho expects it.
func BrokerURL() string {
	return fmt.Sprintf("%s://%s:%d", BrokerScheme(), BrokerHost(), BrokerPort())
}
