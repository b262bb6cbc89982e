package logging

const (
	// KeyAppName is the logging key for the application name.
	KeyAppName = "app"

	// KeyError is the logging key for errors.
	KeyError = "err"

	// KeyGuild is the logging key for the guild ID.
	KeyGuild = "guild_id"

	// KeyChannel is the logging key for the channel ID.
	KeyChannel = "channel_id"

	// KeyUser is the logging key for the user ID.
	KeyUser = "user_id"
)
