package ticketing

import (
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
)

// StateOf derives the lifecycle state of a ticket channel from the live
// channel alone: a channel under the archive category is archived, a channel
// whose topic records a priority is prioritized, anything else is open.
// Nothing is cached; the channel passed in is the single source of truth.
func (s *Service) StateOf(channel *discordgo.Channel) (entities.State, error) {
	if channel.ParentID != "" {
		parent, err := s.p.Channel(channel.ParentID)
		if err != nil {
			if !isNotFound(err) {
				return 0, fmt.Errorf("error getting parent category: %w", err)
			}
			// A missing parent just means the category was deleted out from
			// under the ticket; fall through to the topic.
		} else if parent.Name == s.cfg.ArchiveCategoryName {
			return entities.StateArchived, nil
		}
	}

	if _, ok := entities.ParseTopic(channel.Topic); ok {
		return entities.StatePrioritized, nil
	}
	return entities.StateOpen, nil
}
