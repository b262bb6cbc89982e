package config

import (
	"log/slog"
	"os"

	"github.com/lunarcave/ticketbot/pkg/logging"
)

// Parse reads the process configuration from the environment. Missing
// required values halt the process before the bot ever connects.
func Parse(l *slog.Logger) {
	if envBT := os.Getenv(EnvBotToken); envBT != "" {
		l.Debug("Found bot token in environment", slog.String("key", EnvBotToken))
		BotToken = envBT
	}

	if envAppId := os.Getenv(EnvApplicationId); envAppId != "" {
		l.Debug("Found application ID in environment", slog.String("key", EnvApplicationId))
		ApplicationId = envAppId
	}

	if envCfg := os.Getenv(EnvTicketingConfig); envCfg != "" {
		l.Debug("Found ticketing config path in environment", slog.String("key", EnvTicketingConfig))
		TicketingConfigPath = envCfg
	} else {
		l.Info("No ticketing config path provided in environment, using defaults", slog.String("key", EnvTicketingConfig))
	}

	if envMonitoringPort := os.Getenv(EnvMonitoringPort); envMonitoringPort != "" {
		l.Debug("Found monitoring port in environment", slog.String("key", EnvMonitoringPort))
		MonitoringPort = envMonitoringPort
	} else {
		// Default to 8080 if not provided.
		MonitoringPort = "8080"

		l.Info("No monitoring port provided in environment, defaulting to 8080", slog.String("key", EnvMonitoringPort))
	}

	if BotToken != "" && ApplicationId != "" {
		// All required environment variables have been provided.
		l.Debug("All required environment variables have been provided")
		return
	}

	l.Error("Not all required environment variables have been provided", slog.String(logging.KeyError, "Incomplete configuration"))
	os.Exit(1)
}
