package ticketing

import (
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
	"github.com/lunarcave/ticketbot/pkg/logging"
	"github.com/lunarcave/ticketbot/pkg/ticketing/monitoring"
)

// CreateTicket provisions a ticket channel for the owner under the type's
// category. The owner cap is enforced before anything is created, so a
// refused creation leaves no partial channel behind. A failure after the
// channel has been created leaves the channel for manual cleanup; there is
// no rollback.
func (s *Service) CreateTicket(guildID string, typ entities.TicketType, owner *discordgo.User) (*entities.Ticket, error) {
	category, err := s.ResolveCategory(guildID, typ.CategoryName(s.cfg.TicketCategoryName))
	if err != nil {
		return nil, err
	}

	open, err := s.CountOpenTickets(category, typ, owner.ID)
	if err != nil {
		return nil, err
	}
	if open >= s.cfg.MaxTicketsPerUser {
		monitoring.TicketsRefused.WithLabelValues(typ.Slug()).Inc()
		return nil, &LimitError{Type: typ, Max: s.cfg.MaxTicketsPerUser}
	}

	ticket := &entities.Ticket{
		Type:        typ,
		OwnerHandle: owner.Username,
		OwnerID:     owner.ID,
		State:       entities.StateOpen,
	}

	channel, err := s.p.GuildChannelCreate(guildID, discordgo.GuildChannelCreateData{
		Name:     ticket.ChannelName(),
		Type:     discordgo.ChannelTypeGuildText,
		Topic:    fmt.Sprintf("Ticket created by %s", owner.Username),
		ParentID: category.ID,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			// Deny @everyone from seeing the ticket.
			{
				ID:   guildID,
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionAll,
			},
			// The owner of the ticket can read, write and attach.
			{
				ID:   owner.ID,
				Type: discordgo.PermissionOverwriteTypeMember,
				Allow: discordgo.PermissionViewChannel |
					discordgo.PermissionSendMessages |
					discordgo.PermissionReadMessageHistory |
					discordgo.PermissionAttachFiles |
					discordgo.PermissionEmbedLinks,
				Deny: discordgo.PermissionMentionEveryone,
			},
			// The bot keeps full management of the channel so it can move,
			// archive and delete it later.
			{
				ID:   s.p.BotUserID(),
				Type: discordgo.PermissionOverwriteTypeMember,
				Allow: discordgo.PermissionAllText |
					discordgo.PermissionManageChannels |
					discordgo.PermissionManageMessages,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating ticket channel: %w", err)
	}
	ticket.ChannelID = channel.ID

	if _, err := s.p.ChannelMessageSend(channel.ID, s.welcomeMessage(ticket)); err != nil {
		// The channel exists but the welcome message did not land. Accepted
		// as an orphan for manual cleanup.
		return nil, fmt.Errorf("error sending welcome message: %w", err)
	}

	s.l.Info("Ticket created",
		slog.String(logging.KeyGuild, guildID),
		slog.String(logging.KeyChannel, channel.ID),
		slog.String(logging.KeyUser, owner.ID),
		slog.String("type", typ.Slug()),
	)
	monitoring.TicketsCreated.WithLabelValues(typ.Slug()).Inc()

	return ticket, nil
}

// welcomeMessage builds the message posted into a fresh ticket channel: the
// welcome embed and the priority select menu.
func (s *Service) welcomeMessage(ticket *entities.Ticket) *discordgo.MessageSend {
	options := make([]discordgo.SelectMenuOption, 0, len(entities.Priorities))
	for _, p := range entities.Priorities {
		options = append(options, discordgo.SelectMenuOption{
			Label:       p.String(),
			Value:       p.String(),
			Description: p.Description(),
			Emoji:       discordgo.ComponentEmoji{Name: p.Emoji()},
		})
	}

	return &discordgo.MessageSend{
		Embed: &discordgo.MessageEmbed{
			Title: fmt.Sprintf("%s Ticket Created: %s", CreatedEmoji, ticket.ChannelName()),
			Description: fmt.Sprintf(
				"Please wait for staff to respond, <@%s>. Our team will assist you shortly. Please select a priority for this ticket below.",
				ticket.OwnerID,
			),
			Color: s.cfg.AccentColor,
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    PrioritySelectID,
						Placeholder: "Select ticket priority...",
						Options:     options,
					},
				},
			},
		},
	}
}
