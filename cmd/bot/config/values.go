package config

const (
	// AppName is the name of the application.
	AppName = "ticketbot"

	// EnvBotToken is the environment variable for the bot token.
	EnvBotToken = `BOT_TOKEN`

	// EnvApplicationId is the environment variable for the application ID.
	EnvApplicationId = `APPLICATION_ID`

	// EnvTicketingConfig is the environment variable for the path to the
	// ticketing configuration file.
	EnvTicketingConfig = `TICKETING_CONFIG`

	// EnvMonitoringPort is the environment variable for the monitoring port.
	EnvMonitoringPort = `MONITORING_PORT`
)

var (
	// BotToken is the token for the bot.
	BotToken string

	// ApplicationId is the ID of the application.
	ApplicationId string

	// TicketingConfigPath is the path to the ticketing configuration file.
	// Optional; the built-in defaults are used when empty.
	TicketingConfigPath string

	// MonitoringPort is the port for the monitoring server.
	MonitoringPort string
)
