// Package messages contains the user facing messages that are sent to Discord.
package messages

const (
	// ErrUserErrorProcessing is sent to the user when something went wrong
	// while processing their interaction.
	ErrUserErrorProcessing = "An error occurred while processing your request. Please try again later."

	// ErrNotAdministrator is sent to the user when they attempt to run an
	// administrative command without the administrator permission.
	ErrNotAdministrator = "You must be an administrator to use this command"

	// ErrStaleControl is sent to the user when they click a lifecycle control
	// that is no longer valid for the current state of the ticket.
	ErrStaleControl = "This control is no longer valid for this ticket."

	// TicketArchived is posted into a ticket channel once it has been moved
	// into the archive category.
	TicketArchived = "Ticket has been archived."

	// TicketDeletePrompt is posted into an archived ticket channel alongside
	// the delete button.
	TicketDeletePrompt = "Would you like to delete this ticket now?"

	// TicketDeleted is sent to the user once their ticket channel has been
	// permanently removed.
	TicketDeleted = "The ticket has been successfully deleted."
)
