package ticketing

import (
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
	"github.com/stretchr/testify/require"
)

func TestSetPriority(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(f)

	category := f.addChannel(testGuildID, "Purchase Tickets", "", "", discordgo.ChannelTypeGuildCategory)
	channel := f.addChannel(testGuildID, "purchase-alice-100", "Ticket created by alice", category.ID, discordgo.ChannelTypeGuildText)

	err := s.SetPriority(channel, entities.PriorityUrgent, alice)
	require.NoError(t, err)

	got, err := f.Channel(channel.ID)
	require.NoError(t, err)
	require.Equal(t, "Priority: Urgent | User: alice", got.Topic)

	state, err := s.StateOf(got)
	require.NoError(t, err)
	require.Equal(t, entities.StatePrioritized, state)

	// The close control is posted with the priority confirmation.
	send := f.lastSend(channel.ID)
	require.NotNil(t, send)
	row, ok := send.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	button, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	require.Equal(t, CloseTicketButtonID, button.CustomID)
}

func TestSetPriorityOverwrite(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(f)

	category := f.addChannel(testGuildID, "Purchase Tickets", "", "", discordgo.ChannelTypeGuildCategory)
	channel := f.addChannel(testGuildID, "purchase-alice-100", "", category.ID, discordgo.ChannelTypeGuildText)

	require.NoError(t, s.SetPriority(channel, entities.PriorityLow, alice))
	require.NoError(t, s.SetPriority(channel, entities.PriorityHigh, alice))

	got, err := f.Channel(channel.ID)
	require.NoError(t, err)
	require.Equal(t, "Priority: High | User: alice", got.Topic)
}

func TestSetPriorityRecordsLiveHandle(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(f)

	category := f.addChannel(testGuildID, "Purchase Tickets", "", "", discordgo.ChannelTypeGuildCategory)
	channel := f.addChannel(testGuildID, "purchase-alice-smith-100", "", category.ID, discordgo.ChannelTypeGuildText)

	// The topic carries the display name as-is, not the sanitized channel
	// name segment.
	member := &discordgo.User{ID: "100", Username: "Alice Smith"}
	require.NoError(t, s.SetPriority(channel, entities.PriorityUrgent, member))

	got, err := f.Channel(channel.ID)
	require.NoError(t, err)
	require.Equal(t, "Priority: Urgent | User: Alice Smith", got.Topic)

	p, ok := entities.ParseTopic(got.Topic)
	require.True(t, ok)
	require.Equal(t, entities.PriorityUrgent, p)
}

func TestSetPriorityRejectsArchived(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(f)

	archive := f.addChannel(testGuildID, "Archived Tickets", "", "", discordgo.ChannelTypeGuildCategory)
	channel := f.addChannel(testGuildID, "purchase-alice-100", "Priority: Low | User: alice", archive.ID, discordgo.ChannelTypeGuildText)

	err := s.SetPriority(channel, entities.PriorityUrgent, alice)
	stateErr := new(StateError)
	require.ErrorAs(t, err, &stateErr)
	require.Equal(t, entities.StateArchived, stateErr.State)
}
