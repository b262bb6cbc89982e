package ticketing

import (
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/logging"
)

// Platform is the surface of the chat platform that the ticketing service
// operates on. The platform owns all channel and message state; the service
// never caches any of it beyond a single operation.
//
// In production this is backed by a discord session. Tests back it with an
// in-memory guild.
type Platform interface {
	// BotUserID returns the user ID the bot is operating as, used for the
	// management permission overwrite on ticket channels.
	BotUserID() string

	// GuildChannels lists every channel in the guild, categories included.
	GuildChannels(guildID string) ([]*discordgo.Channel, error)

	// GuildChannelCreate creates a channel in the guild.
	GuildChannelCreate(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error)

	// Channel fetches a single channel by ID.
	Channel(channelID string) (*discordgo.Channel, error)

	// ChannelEdit edits a channel, used to set topics and to move channels
	// between categories.
	ChannelEdit(channelID string, edit *discordgo.ChannelEdit) (*discordgo.Channel, error)

	// ChannelDelete permanently deletes a channel. The reason records who
	// requested the deletion.
	ChannelDelete(channelID string, reason string) error

	// ChannelMessageSend sends a message, optionally with embeds, components
	// and file attachments.
	ChannelMessageSend(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)

	// ChannelMessages returns up to limit messages from the channel. The
	// beforeID and afterID parameters page through history the same way the
	// Discord API does.
	ChannelMessages(channelID string, limit int, beforeID string, afterID string) ([]*discordgo.Message, error)
}

// discordPlatform adapts a discord session to the Platform interface.
type discordPlatform struct {
	s *discordgo.Session
	l *slog.Logger
}

// NewDiscordPlatform wraps a discord session as a Platform.
func NewDiscordPlatform(s *discordgo.Session, l *slog.Logger) Platform {
	return &discordPlatform{
		s: s,
		l: l,
	}
}

func (p *discordPlatform) BotUserID() string {
	if p.s.State == nil || p.s.State.User == nil {
		return ""
	}
	return p.s.State.User.ID
}

func (p *discordPlatform) GuildChannels(guildID string) ([]*discordgo.Channel, error) {
	return p.s.GuildChannels(guildID)
}

func (p *discordPlatform) GuildChannelCreate(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	return p.s.GuildChannelCreateComplex(guildID, data)
}

func (p *discordPlatform) Channel(channelID string) (*discordgo.Channel, error) {
	return p.s.Channel(channelID)
}

func (p *discordPlatform) ChannelEdit(channelID string, edit *discordgo.ChannelEdit) (*discordgo.Channel, error) {
	return p.s.ChannelEditComplex(channelID, edit)
}

func (p *discordPlatform) ChannelDelete(channelID string, reason string) error {
	// The session does not carry audit log reasons on channel deletion, so
	// the reason is recorded in the application log instead.
	p.l.Info("Deleting channel",
		slog.String(logging.KeyChannel, channelID),
		slog.String("reason", reason),
	)

	if _, err := p.s.ChannelDelete(channelID); err != nil {
		return err
	}
	return nil
}

func (p *discordPlatform) ChannelMessageSend(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	return p.s.ChannelMessageSendComplex(channelID, msg)
}

func (p *discordPlatform) ChannelMessages(channelID string, limit int, beforeID string, afterID string) ([]*discordgo.Message, error) {
	return p.s.ChannelMessages(channelID, limit, beforeID, afterID, "")
}
