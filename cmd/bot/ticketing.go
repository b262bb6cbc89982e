package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
	"github.com/lunarcave/ticketbot/pkg/messages"
	"github.com/lunarcave/ticketbot/pkg/ticketing"
)

const (
	// SetupCmdName is the command for posting the ticket panel.
	SetupCmdName = "setup"

	// PurgeCmdName is the command for deleting every ticket channel.
	PurgeCmdName = "purge_tickets"
)

var (
	// setupCmd posts the ticket panel in the channel it is executed in.
	setupCmd = &discordgo.ApplicationCommand{
		Name:        SetupCmdName,
		Type:        discordgo.ChatApplicationCommand,
		Description: "This posts the ticket panel in this channel.",
	}

	// purgeCmd deletes every ticket channel in the guild.
	purgeCmd = &discordgo.ApplicationCommand{
		Name:        PurgeCmdName,
		Type:        discordgo.ChatApplicationCommand,
		Description: "This deletes every ticket channel in this server.",
	}
)

// setupCmdHandler posts the ticket panel into the channel the command was
// executed in.
func setupCmdHandler(a IApp, i *discordgo.InteractionCreate) error {
	// Ensure the user is an administrator.
	if !isAdministrator(i) {
		return respondEphemeral(a, i, messages.ErrNotAdministrator)
	}

	panel := a.Ticketing().PanelMessage()

	// Respond with the panel itself so it lands in the channel.
	return a.Session().InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{panel.Embed},
			Components: panel.Components,
		},
	})
}

// purgeCmdHandler deletes every ticket channel and ticket category in the
// guild.
func purgeCmdHandler(a IApp, i *discordgo.InteractionCreate) error {
	// Ensure the user is an administrator.
	if !isAdministrator(i) {
		return respondEphemeral(a, i, messages.ErrNotAdministrator)
	}

	// Deleting channels can take a while, acknowledge first.
	if err := deferEphemeral(a, i); err != nil {
		return fmt.Errorf("error acknowledging interaction: %w", err)
	}

	deleted, err := a.Ticketing().Purge(context.Background(), i.GuildID, i.Member.User)
	if err != nil {
		return fmt.Errorf("error purging ticket channels: %w", err)
	}

	return followupContent(a, i, fmt.Sprintf("Successfully purged %d ticket channel(s).", deleted))
}

// ticketTypeSelectHandler creates a ticket for the selected category.
func ticketTypeSelectHandler(a IApp, i *discordgo.InteractionCreate) error {
	if err := deferEphemeral(a, i); err != nil {
		return fmt.Errorf("error acknowledging interaction: %w", err)
	}

	typ, err := entities.ParseTicketType(i.MessageComponentData().Values[0])
	if err != nil {
		return fmt.Errorf("error parsing ticket type: %w", err)
	}

	ticket, err := a.Ticketing().CreateTicket(i.GuildID, typ, i.Member.User)
	if err != nil {
		limitErr := new(ticketing.LimitError)
		if errors.As(err, &limitErr) {
			// The user is at their cap for this category; tell them rather
			// than treating it as a failure.
			return followupEphemeral(a, i, &discordgo.WebhookParams{
				Embeds: []*discordgo.MessageEmbed{
					{
						Title: fmt.Sprintf("%s Ticket Limit Reached", ticketing.LimitEmoji),
						Description: fmt.Sprintf("You already have %d open %s ticket(s). Please use your existing ticket.",
							limitErr.Max, limitErr.Type),
						Color: a.Ticketing().Config().AccentColor,
					},
				},
			})
		}
		return fmt.Errorf("error creating ticket: %w", err)
	}

	return followupEphemeral(a, i, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       fmt.Sprintf("%s Ticket Created", ticketing.CreatedEmoji),
				Description: fmt.Sprintf("Your %s ticket has been created: <#%s>", ticket.Type, ticket.ChannelID),
				Color:       a.Ticketing().Config().AccentColor,
			},
		},
	})
}

// prioritySelectHandler stamps the selected priority onto the ticket channel.
func prioritySelectHandler(a IApp, i *discordgo.InteractionCreate) error {
	if err := deferEphemeral(a, i); err != nil {
		return fmt.Errorf("error acknowledging interaction: %w", err)
	}

	channel, err := a.Session().Channel(i.ChannelID)
	if err != nil {
		return fmt.Errorf("error getting channel: %w", err)
	}

	priority, err := entities.ParsePriority(i.MessageComponentData().Values[0])
	if err != nil {
		return fmt.Errorf("error parsing priority: %w", err)
	}

	if err := a.Ticketing().SetPriority(channel, priority, i.Member.User); err != nil {
		stateErr := new(ticketing.StateError)
		if errors.As(err, &stateErr) {
			// The control outlived the state it was posted for.
			return followupContent(a, i, messages.ErrStaleControl)
		}
		return fmt.Errorf("error setting priority: %w", err)
	}

	return followupContent(a, i, fmt.Sprintf("Priority set to **%s**.", priority))
}

// closeTicketHandler archives the ticket and posts its transcript.
func closeTicketHandler(a IApp, i *discordgo.InteractionCreate) error {
	if err := deferEphemeral(a, i); err != nil {
		return fmt.Errorf("error acknowledging interaction: %w", err)
	}

	channel, err := a.Session().Channel(i.ChannelID)
	if err != nil {
		return fmt.Errorf("error getting channel: %w", err)
	}

	if err := a.Ticketing().CloseTicket(context.Background(), channel, i.Member.User); err != nil {
		stateErr := new(ticketing.StateError)
		if errors.As(err, &stateErr) {
			return followupContent(a, i, messages.ErrStaleControl)
		}
		return fmt.Errorf("error closing ticket: %w", err)
	}

	return followupContent(a, i, messages.TicketArchived)
}

// deleteTicketHandler deletes the archived ticket channel.
func deleteTicketHandler(a IApp, i *discordgo.InteractionCreate) error {
	if err := deferEphemeral(a, i); err != nil {
		return fmt.Errorf("error acknowledging interaction: %w", err)
	}

	channel, err := a.Session().Channel(i.ChannelID)
	if err != nil {
		return fmt.Errorf("error getting channel: %w", err)
	}

	if err := a.Ticketing().DeleteTicket(channel, i.Member.User); err != nil {
		stateErr := new(ticketing.StateError)
		if errors.As(err, &stateErr) {
			return followupContent(a, i, messages.ErrStaleControl)
		}
		return fmt.Errorf("error deleting ticket: %w", err)
	}

	// The channel the interaction came from is gone; the followup goes over
	// the interaction webhook so it still reaches the user.
	if err := followupContent(a, i, messages.TicketDeleted); err != nil {
		a.Log().Warn("Could not confirm ticket deletion: " + err.Error())
	}
	return nil
}
