package main

import (
	"fmt"

	"github.com/MKhiriev/voice-bridge/internal/adapter"
	"github.com/MKhiriev/voice-bridge/internal/config"
	"github.com/MKhiriev/voice-bridge/internal/handler"
	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/server"
	"github.com/MKhiriev/voice-bridge/internal/service"
	"github.com/MKhiriev/voice-bridge/internal/verifier"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("voice-bridge", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("voice-bridge", cfg.App.DebugEnabled())
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	webhook := adapter.NewWebhookAdapter(cfg.Downstream, log)
	if cfg.Downstream.WebhookURL == "" {
		log.Warn().Msg("downstream webhook url is not set; queries will get a configuration error reply")
	}

	services, err := service.NewServices(webhook, *cfg, buildVersion, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, verifier.New(cfg.Verification, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
