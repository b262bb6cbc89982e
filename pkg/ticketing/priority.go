package ticketing

import (
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
	"github.com/lunarcave/ticketbot/pkg/logging"
)

// SetPriority records the priority in the ticket channel's topic and posts
// the close control, moving the ticket from open to prioritized. Selecting a
// priority again simply overwrites the topic and re-posts the control; the
// operation is idempotent. A ticket that has already been archived rejects
// the stale control.
//
// The topic records the requester's live username, not the sanitized handle
// baked into the channel name; identity checks never read it back.
func (s *Service) SetPriority(channel *discordgo.Channel, priority entities.Priority, requester *discordgo.User) error {
	state, err := s.StateOf(channel)
	if err != nil {
		return err
	}
	if state > entities.StatePrioritized {
		return &StateError{Op: "set the priority of", State: state}
	}

	if _, err := entities.ParseChannelName(channel.Name); err != nil {
		return fmt.Errorf("channel is not a ticket: %w", err)
	}

	if _, err := s.p.ChannelEdit(channel.ID, &discordgo.ChannelEdit{
		Topic: entities.Topic(priority, requester.Username),
	}); err != nil {
		return fmt.Errorf("error setting channel topic: %w", err)
	}

	if _, err := s.p.ChannelMessageSend(channel.ID, s.priorityMessage(priority)); err != nil {
		return fmt.Errorf("error sending priority message: %w", err)
	}

	s.l.Info("Ticket priority set",
		slog.String(logging.KeyChannel, channel.ID),
		slog.String("priority", priority.String()),
	)
	return nil
}

// priorityMessage builds the message confirming the assigned priority, with
// the close ticket button attached.
func (s *Service) priorityMessage(priority entities.Priority) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embed: &discordgo.MessageEmbed{
			Title: fmt.Sprintf("%s Ticket Priority: %s", CreatedEmoji, priority),
			Description: fmt.Sprintf(
				"Priority has been set to **%s**. A staff member will respond shortly.",
				priority,
			),
			Color: s.cfg.AccentColor,
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    fmt.Sprintf("%s Close Ticket", CloseEmoji),
						Style:    discordgo.DangerButton,
						CustomID: CloseTicketButtonID,
					},
				},
			},
		},
	}
}
