package ticketing

import (
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
	"github.com/stretchr/testify/require"
)

var alice = &discordgo.User{ID: "123456789012345678", Username: "alice"}

func TestCreateTicket(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(f)

	ticket, err := s.CreateTicket(testGuildID, entities.TicketTypePurchase, alice)
	require.NoError(t, err)
	require.Equal(t, "purchase-alice-123456789012345678", ticket.ChannelName())
	require.Equal(t, entities.StateOpen, ticket.State)

	channel, err := f.Channel(ticket.ChannelID)
	require.NoError(t, err)
	require.Equal(t, ticket.ChannelName(), channel.Name)

	// The channel sits under the type category.
	category, err := f.Channel(channel.ParentID)
	require.NoError(t, err)
	require.Equal(t, "Purchase Tickets", category.Name)

	// Default deny for @everyone, read/write/attach for the owner, and
	// management for the bot.
	require.Len(t, channel.PermissionOverwrites, 3)
	everyone := channel.PermissionOverwrites[0]
	require.Equal(t, testGuildID, everyone.ID)
	require.EqualValues(t, discordgo.PermissionAll, everyone.Deny)

	owner := channel.PermissionOverwrites[1]
	require.Equal(t, alice.ID, owner.ID)
	require.NotZero(t, owner.Allow&discordgo.PermissionAttachFiles)

	bot := channel.PermissionOverwrites[2]
	require.Equal(t, "bot", bot.ID)
	require.NotZero(t, bot.Allow&discordgo.PermissionManageChannels)

	// The welcome message carries the priority select menu.
	welcome := f.lastSend(channel.ID)
	require.NotNil(t, welcome)
	require.NotNil(t, welcome.Embed)
	row, ok := welcome.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)
	require.Equal(t, PrioritySelectID, menu.CustomID)
	require.Len(t, menu.Options, len(entities.Priorities))
}

func TestCreateTicketLimit(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(f)

	_, err := s.CreateTicket(testGuildID, entities.TicketTypePurchase, alice)
	require.NoError(t, err)

	// Cap defaults to 1: the second purchase ticket is refused and no
	// partial channel is created.
	before, err := f.GuildChannels(testGuildID)
	require.NoError(t, err)

	_, err = s.CreateTicket(testGuildID, entities.TicketTypePurchase, alice)
	limitErr := new(LimitError)
	require.ErrorAs(t, err, &limitErr)
	require.Equal(t, 1, limitErr.Max)
	require.Equal(t, entities.TicketTypePurchase, limitErr.Type)

	after, err := f.GuildChannels(testGuildID)
	require.NoError(t, err)
	require.Len(t, after, len(before))

	// A different type is still allowed; the cap is per type.
	_, err = s.CreateTicket(testGuildID, entities.TicketTypeQuestions, alice)
	require.NoError(t, err)
}
