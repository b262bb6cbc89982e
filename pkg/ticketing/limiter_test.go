package ticketing

import (
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
	"github.com/stretchr/testify/require"
)

func TestCountOpenTickets(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(f)

	category := f.addChannel(testGuildID, "Purchase Tickets", "", "", discordgo.ChannelTypeGuildCategory)

	count, err := s.CountOpenTickets(category, entities.TicketTypePurchase, "100")
	require.NoError(t, err)
	require.Zero(t, count)

	f.addChannel(testGuildID, "purchase-alice-100", "", category.ID, discordgo.ChannelTypeGuildText)
	f.addChannel(testGuildID, "purchase-alice-100", "", category.ID, discordgo.ChannelTypeGuildText)

	// Another owner's ticket and a stray non-ticket channel under the same
	// category must not count.
	f.addChannel(testGuildID, "purchase-bob-200", "", category.ID, discordgo.ChannelTypeGuildText)
	f.addChannel(testGuildID, "announcements", "", category.ID, discordgo.ChannelTypeGuildText)

	count, err = s.CountOpenTickets(category, entities.TicketTypePurchase, "100")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestCountOpenTicketsHandlePrefixNotConflated(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(f)

	category := f.addChannel(testGuildID, "Purchase Tickets", "", "", discordgo.ChannelTypeGuildCategory)

	// "al" is a prefix of "alice"; the owner ID suffix keeps them apart.
	f.addChannel(testGuildID, "purchase-al-1", "", category.ID, discordgo.ChannelTypeGuildText)
	f.addChannel(testGuildID, "purchase-alice-2", "", category.ID, discordgo.ChannelTypeGuildText)

	count, err := s.CountOpenTickets(category, entities.TicketTypePurchase, "1")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	count, err = s.CountOpenTickets(category, entities.TicketTypePurchase, "2")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestCountOpenTicketsRenameProof(t *testing.T) {
	f := newFakePlatform()
	s := newTestService(f)

	category := f.addChannel(testGuildID, "Questions Tickets", "", "", discordgo.ChannelTypeGuildCategory)

	// The owner renamed from "alice" to "wonderland" after opening the
	// ticket. The ID suffix still identifies it as theirs.
	f.addChannel(testGuildID, "questions-alice-100", "", category.ID, discordgo.ChannelTypeGuildText)

	count, err := s.CountOpenTickets(category, entities.TicketTypeQuestions, "100")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
