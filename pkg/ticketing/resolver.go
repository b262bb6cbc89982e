package ticketing

import (
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/logging"
)

// ResolveCategory looks up a category channel by exact name, creating it if
// it does not exist. Resolution is idempotent: sequential calls return the
// same category, and concurrent calls for the same name are serialized so
// they cannot race a duplicate into existence. Creation failures are
// surfaced once, never retried.
func (s *Service) ResolveCategory(guildID string, name string) (*discordgo.Channel, error) {
	s.resolveMu.Lock()
	defer s.resolveMu.Unlock()

	channels, err := s.p.GuildChannels(guildID)
	if err != nil {
		return nil, fmt.Errorf("error listing guild channels: %w", err)
	}

	for _, c := range channels {
		if c.Type == discordgo.ChannelTypeGuildCategory && c.Name == name {
			return c, nil
		}
	}

	s.l.Info("Category does not exist, creating it",
		slog.String(logging.KeyGuild, guildID),
		slog.String("category", name),
	)

	category, err := s.p.GuildChannelCreate(guildID, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildCategory,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating category %q: %w", name, err)
	}
	return category, nil
}

// resolveLogChannel gets or creates the transcript log channel under the
// transcripts category. Only staff can see it: @everyone is denied at the
// category member level by the overwrites set on creation.
func (s *Service) resolveLogChannel(guildID string) (*discordgo.Channel, error) {
	category, err := s.ResolveCategory(guildID, s.cfg.TranscriptsCategoryName)
	if err != nil {
		return nil, err
	}

	s.resolveMu.Lock()
	defer s.resolveMu.Unlock()

	channels, err := s.p.GuildChannels(guildID)
	if err != nil {
		return nil, fmt.Errorf("error listing guild channels: %w", err)
	}

	for _, c := range channels {
		if c.Type == discordgo.ChannelTypeGuildText && c.ParentID == category.ID && c.Name == s.cfg.LogChannelName {
			return c, nil
		}
	}

	s.l.Info("Transcript log channel does not exist, creating it",
		slog.String(logging.KeyGuild, guildID),
		slog.String("channel", s.cfg.LogChannelName),
	)

	logChannel, err := s.p.GuildChannelCreate(guildID, discordgo.GuildChannelCreateData{
		Name:     s.cfg.LogChannelName,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: category.ID,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			// Deny @everyone from seeing the transcript log.
			{
				ID:   guildID,
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionAll,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating log channel %q: %w", s.cfg.LogChannelName, err)
	}
	return logChannel, nil
}
