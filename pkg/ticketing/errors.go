package ticketing

import (
	"errors"
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/lunarcave/ticketbot/pkg/entities"
)

// LimitError is returned by CreateTicket when the owner already has the
// maximum number of open tickets of the requested type.
type LimitError struct {
	// Type is the ticket type the creation was refused for.
	Type entities.TicketType

	// Max is the configured per-user cap.
	Max int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("open ticket limit of %d reached for %s tickets", e.Max, e.Type)
}

// StateError is returned when a lifecycle operation is invoked on a ticket
// that is not in the state the operation requires. This is how stale or
// duplicate control clicks are rejected.
type StateError struct {
	// Op is the operation that was refused.
	Op string

	// State is the state the ticket was observed in.
	State entities.State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s a ticket in the %s state", e.Op, e.State)
}

// isNotFound reports whether the error is the platform telling us that a
// referenced channel no longer exists. A general error code is included
// because the API surfaces some 404s that way.
func isNotFound(err error) bool {
	er := new(discordgo.RESTError)
	if !errors.As(err, &er) || er.Message == nil {
		return false
	}
	return er.Message.Code == discordgo.ErrCodeUnknownChannel || er.Message.Code == discordgo.ErrCodeGeneralError
}
