package ticketing

const (
	// TicketTypeSelectID is the ID for the ticket type select menu on the
	// setup panel.
	TicketTypeSelectID = "ticket_type_select"

	// PrioritySelectID is the ID for the priority select menu posted into a
	// fresh ticket channel.
	PrioritySelectID = "ticket_priority_select"

	// CloseTicketButtonID is the ID for the close ticket button.
	CloseTicketButtonID = "close_ticket_button"

	// DeleteTicketButtonID is the ID for the delete ticket button.
	DeleteTicketButtonID = "delete_ticket_button"
)

const (
	// TicketEmoji is used on the setup panel title. (Admission ticket)
	TicketEmoji = "\U0001F39F️"

	// CreatedEmoji is used on the ticket created embeds. (Ticket)
	CreatedEmoji = "\U0001F3AB"

	// CloseEmoji is used for the close button. (Padlock)
	CloseEmoji = "\U0001F510"

	// DeleteEmoji is used for the delete button. (Cross)
	DeleteEmoji = "❌"

	// LimitEmoji is used on the limit reached embed. (No entry)
	LimitEmoji = "\U0001F6AB"
)
