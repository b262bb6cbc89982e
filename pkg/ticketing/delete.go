package ticketing

import (
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
	"github.com/lunarcave/ticketbot/pkg/logging"
	"github.com/lunarcave/ticketbot/pkg/ticketing/monitoring"
)

// DeleteTicket permanently removes an archived ticket channel. The deletion
// reason records who requested it. Irreversible; a ticket that has not been
// archived yet rejects the control.
func (s *Service) DeleteTicket(channel *discordgo.Channel, requester *discordgo.User) error {
	state, err := s.StateOf(channel)
	if err != nil {
		return err
	}
	if !state.CanTransition(entities.StateDeleted) {
		return &StateError{Op: "delete", State: state}
	}

	reason := fmt.Sprintf("Ticket deleted by %s", requester.Username)
	if err := s.p.ChannelDelete(channel.ID, reason); err != nil {
		return fmt.Errorf("error deleting ticket channel: %w", err)
	}

	s.l.Info("Ticket deleted",
		slog.String(logging.KeyGuild, channel.GuildID),
		slog.String(logging.KeyChannel, channel.ID),
		slog.String(logging.KeyUser, requester.ID),
	)
	monitoring.TicketsDeleted.Inc()

	return nil
}
