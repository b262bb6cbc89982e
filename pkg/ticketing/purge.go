package ticketing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
	"github.com/lunarcave/ticketbot/pkg/logging"
	"github.com/lunarcave/ticketbot/pkg/ticketing/monitoring"
)

// Purge deletes every channel under the active ticket categories and the
// archive category, bypassing the per-ticket lifecycle. Categories that do
// not exist are skipped silently. The sweep is best effort: a channel that
// fails to delete is logged and the sweep continues. The returned count is
// how many channels were actually deleted.
func (s *Service) Purge(ctx context.Context, guildID string, requester *discordgo.User) (int, error) {
	names := make(map[string]struct{}, len(entities.TicketTypes)+1)
	for _, t := range entities.TicketTypes {
		names[t.CategoryName(s.cfg.TicketCategoryName)] = struct{}{}
	}
	names[s.cfg.ArchiveCategoryName] = struct{}{}

	channels, err := s.p.GuildChannels(guildID)
	if err != nil {
		return 0, fmt.Errorf("error listing guild channels: %w", err)
	}

	categoryIDs := make(map[string]struct{})
	for _, c := range channels {
		if c.Type != discordgo.ChannelTypeGuildCategory {
			continue
		}
		if _, ok := names[c.Name]; ok {
			categoryIDs[c.ID] = struct{}{}
		}
	}

	reason := fmt.Sprintf("Bulk purge requested by %s", requester.Username)

	deleted := 0
	for _, c := range channels {
		if _, ok := categoryIDs[c.ParentID]; !ok {
			continue
		}

		if err := s.purgePace.Wait(ctx); err != nil {
			return deleted, err
		}

		if err := s.p.ChannelDelete(c.ID, reason); err != nil {
			s.l.Error("Error deleting channel during purge",
				slog.String(logging.KeyChannel, c.ID),
				slog.String(logging.KeyError, err.Error()),
			)
			continue
		}
		deleted++
		monitoring.ChannelsPurged.Inc()
	}

	s.l.Info("Ticket channels purged",
		slog.String(logging.KeyGuild, guildID),
		slog.String(logging.KeyUser, requester.ID),
		slog.Int("deleted", deleted),
	)
	return deleted, nil
}
