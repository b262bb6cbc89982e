package ticketing

import (
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
)

// typeOption describes a ticket type entry on the setup panel.
type typeOption struct {
	typ         entities.TicketType
	description string
	emoji       string
}

var typeOptions = []typeOption{
	{
		typ:         entities.TicketTypePurchase,
		description: "Click this option to purchase a product!",
		emoji:       "\U0001F6D2",
	},
	{
		typ:         entities.TicketTypeReplacements,
		description: "Click this option if you require replacements!",
		emoji:       "\U0001F504",
	},
	{
		typ:         entities.TicketTypeQuestions,
		description: "Click this option if you have questions!",
		emoji:       "❓",
	},
}

// PanelMessage builds the ticket opening panel: the welcome embed and the
// ticket type select menu. Posted by the setup command.
func (s *Service) PanelMessage() *discordgo.MessageSend {
	options := make([]discordgo.SelectMenuOption, 0, len(typeOptions))
	for _, o := range typeOptions {
		options = append(options, discordgo.SelectMenuOption{
			Label:       o.typ.String(),
			Value:       o.typ.String(),
			Description: o.description,
			Emoji:       discordgo.ComponentEmoji{Name: o.emoji},
		})
	}

	return &discordgo.MessageSend{
		Embed: &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("%s %s Panel | %s", TicketEmoji, s.cfg.TicketCategoryName, s.cfg.ServerName),
			Description: s.cfg.WelcomeMessage,
			Color:       s.cfg.AccentColor,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "\U0001F4B3 Payment Methods",
					Value: "**\U0001F4B0 Cryptocurrencies**\n**\U0001F4B5 Cashapp**\n**\U0001F4B8 PayPal**",
				},
				{
					Name:  "\U0001F4BC Select a Category:",
					Value: "Select an option below to proceed.",
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Powered by %s | All rights reserved.", s.cfg.ServerName),
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    TicketTypeSelectID,
						Placeholder: "Select a category...",
						Options:     options,
					},
				},
			},
		},
	}
}
