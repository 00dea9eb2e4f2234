package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MikuMikuMe/smart-energy-monitor/internal/advisor"
	"github.com/MikuMikuMe/smart-energy-monitor/internal/config"
	"github.com/MikuMikuMe/smart-energy-monitor/internal/history"
	statusapi "github.com/MikuMikuMe/smart-energy-monitor/internal/http"
	"github.com/MikuMikuMe/smart-energy-monitor/internal/monitor"
	"github.com/MikuMikuMe/smart-energy-monitor/internal/mqtt"
	"github.com/MikuMikuMe/smart-energy-monitor/internal/simulator"
)

const (
	exitClean       = 0
	exitConnectFail = 1
	exitLoopError   = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Error().Err(err).Msg("config load failed")
		return exitLoopError
	}
	if lvl, err := zerolog.ParseLevel(config.LogLevel()); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	hist := history.New()
	gen := simulator.New(rand.New(rand.NewSource(time.Now().UnixNano())))

	client := mqtt.New(mqtt.Config{
		Scheme:         config.BrokerScheme(),
		Host:           config.BrokerHost(),
		Port:           config.BrokerPort(),
		ClientID:       config.ClientID(),
		ConnectTimeout: config.ConnectTimeout(),
		InboundBuffer:  config.InboundBuffer(),
	})
	// The final analysis runs no matter how the run ends.
	defer func() {
		client.Close()
		report(hist)
	}()

	if err := client.Connect(); err != nil {
		log.Error().Err(err).Str("broker", config.BrokerURL()).Msg("broker connection failed")
		return exitConnectFail
	}

	topic := config.Topic()
	if err := client.Subscribe(topic); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("subscribe failed")
		return exitConnectFail
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go monitor.LogInbound(ctx, client.Messages())

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	statusapi.Register(app, hist)
	go func() {
		if err := app.Listen(config.APIAddr()); err != nil {
			log.Error().Err(err).Msg("status api exit")
		}
	}()
	defer app.Shutdown()

	runner := monitor.New(gen, hist, client, topic, config.PublishInterval())
	if err := runner.Run(ctx); err != nil {
		log.Error().Err(err).Msg("publish loop failed")
		return exitLoopError
	}

	log.Info().Int("readings", hist.Len()).Msg("shutting down")
	return exitClean
}

func report(hist *history.History) {
	fmt.Println("\nEnergy Usage Optimization Suggestions:")
	for _, s := range advisor.Advise(hist.Snapshot()) {
		fmt.Printf("- %s\n", s)
	}
}
