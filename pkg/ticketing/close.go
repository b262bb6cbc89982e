package ticketing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
	"github.com/lunarcave/ticketbot/pkg/logging"
	"github.com/lunarcave/ticketbot/pkg/messages"
	"github.com/lunarcave/ticketbot/pkg/ticketing/monitoring"
)

// CloseTicket closes a prioritized ticket: the full transcript is built and
// posted to the staff log channel, the channel is moved into the archive
// category, and the deletion prompt is posted. Closing and archiving are one
// step; there is no closed-but-not-archived state. Any step failing aborts
// the remainder.
func (s *Service) CloseTicket(ctx context.Context, channel *discordgo.Channel, closer *discordgo.User) error {
	state, err := s.StateOf(channel)
	if err != nil {
		return err
	}
	if !state.CanTransition(entities.StateArchived) {
		return &StateError{Op: "close", State: state}
	}

	transcript, err := s.BuildTranscript(ctx, channel)
	if err != nil {
		return err
	}

	logChannel, err := s.resolveLogChannel(channel.GuildID)
	if err != nil {
		return err
	}

	if _, err := s.p.ChannelMessageSend(logChannel.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf("Transcript for %s closed by <@%s>:", channel.Name, closer.ID),
		Embed: &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("Transcript for %s", channel.Name),
			Description: "Transcript is attached as a .txt file and an HTML file.",
			Color:       s.cfg.AccentColor,
		},
		Files: transcript.Files(),
	}); err != nil {
		return fmt.Errorf("error posting transcript: %w", err)
	}

	archive, err := s.ResolveCategory(channel.GuildID, s.cfg.ArchiveCategoryName)
	if err != nil {
		return err
	}

	if _, err := s.p.ChannelEdit(channel.ID, &discordgo.ChannelEdit{
		ParentID: archive.ID,
	}); err != nil {
		return fmt.Errorf("error archiving channel: %w", err)
	}

	if _, err := s.p.ChannelMessageSend(channel.ID, &discordgo.MessageSend{
		Content: messages.TicketArchived,
	}); err != nil {
		return fmt.Errorf("error sending archived notice: %w", err)
	}

	if _, err := s.p.ChannelMessageSend(channel.ID, s.deletePrompt()); err != nil {
		return fmt.Errorf("error sending delete prompt: %w", err)
	}

	s.l.Info("Ticket closed and archived",
		slog.String(logging.KeyGuild, channel.GuildID),
		slog.String(logging.KeyChannel, channel.ID),
		slog.String(logging.KeyUser, closer.ID),
		slog.Int("messages", transcript.MessageCount),
	)
	monitoring.TicketsClosed.Inc()

	return nil
}

// deletePrompt builds the message asking whether the archived ticket should
// be deleted now.
func (s *Service) deletePrompt() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: messages.TicketDeletePrompt,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    fmt.Sprintf("%s Delete Ticket", DeleteEmoji),
						Style:    discordgo.DangerButton,
						CustomID: DeleteTicketButtonID,
					},
				},
			},
		},
	}
}
