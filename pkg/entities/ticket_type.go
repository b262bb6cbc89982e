package entities

import (
	"fmt"
	"strings"
)

// TicketType is the category of support that a ticket was opened for.
type TicketType string

const (
	TicketTypePurchase     TicketType = "Purchase"
	TicketTypeReplacements TicketType = "Replacements"
	TicketTypeQuestions    TicketType = "Questions"
)

// TicketTypes is the fixed set of ticket types that users can open.
var TicketTypes = []TicketType{
	TicketTypePurchase,
	TicketTypeReplacements,
	TicketTypeQuestions,
}

// ParseTicketType parses a ticket type from its display name or slug.
func ParseTicketType(s string) (TicketType, error) {
	for _, t := range TicketTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown ticket type %q", s)
}

// Slug returns the lowercase form of the type used in channel names.
func (t TicketType) Slug() string {
	return strings.ToLower(string(t))
}

// String implements the fmt.Stringer interface.
func (t TicketType) String() string {
	return string(t)
}

// CategoryName returns the name of the category that open tickets of this
// type live under, e.g. "Purchase Tickets".
func (t TicketType) CategoryName(base string) string {
	return fmt.Sprintf("%s %s", string(t), base)
}
