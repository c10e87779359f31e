package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/MKhiriev/voice-bridge/internal/adapter"
	"github.com/MKhiriev/voice-bridge/internal/config"
	"github.com/MKhiriev/voice-bridge/internal/handler"
	"github.com/MKhiriev/voice-bridge/internal/lambda"
	"github.com/MKhiriev/voice-bridge/internal/logger"
	"github.com/MKhiriev/voice-bridge/internal/service"
	"github.com/MKhiriev/voice-bridge/internal/verifier"
)

var buildVersion string

func main() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("voice-bridge-lambda", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("voice-bridge-lambda", cfg.App.DebugEnabled())

	services, err := service.NewServices(adapter.NewWebhookAdapter(cfg.Downstream, log), *cfg, buildVersion, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, verifier.New(cfg.Verification, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	awslambda.Start(lambda.NewProxy(handlers.HTTP.Init(), log).Handle)
}
