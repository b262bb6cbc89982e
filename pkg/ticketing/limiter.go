package ticketing

import (
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
)

// CountOpenTickets counts the channels under the category that are open
// tickets of the given type belonging to the owner. Ownership is matched on
// the exact owner ID suffix encoded in the channel name, never on the
// rendered handle, so an owner whose handle is a prefix of another's is
// never conflated and a username rename cannot dodge the cap.
func (s *Service) CountOpenTickets(category *discordgo.Channel, typ entities.TicketType, ownerID string) (int, error) {
	channels, err := s.p.GuildChannels(category.GuildID)
	if err != nil {
		return 0, fmt.Errorf("error listing guild channels: %w", err)
	}

	count := 0
	for _, c := range channels {
		if c.Type != discordgo.ChannelTypeGuildText || c.ParentID != category.ID {
			continue
		}

		ticket, err := entities.ParseChannelName(c.Name)
		if err != nil {
			// Not a ticket channel; someone put something else under the
			// category.
			continue
		}

		if ticket.Type == typ && ticket.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}
