package entities

import (
	"fmt"
	"strings"
)

// Priority is the staff assigned priority of a ticket.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// Priorities is the ordered set of priority levels that can be assigned.
var Priorities = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityUrgent,
}

// ParsePriority parses a priority from its display name.
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// String implements the fmt.Stringer interface.
func (p Priority) String() string {
	return string(p)
}

// Emoji returns the coloured circle emoji used for the priority in the
// selection menu.
func (p Priority) Emoji() string {
	switch p {
	case PriorityLow:
		return "\U0001F7E2"
	case PriorityMedium:
		return "\U0001F7E1"
	case PriorityHigh:
		return "\U0001F7E0"
	case PriorityUrgent:
		return "\U0001F534"
	default:
		return ""
	}
}

// Description returns the description shown for the priority in the
// selection menu.
func (p Priority) Description() string {
	return fmt.Sprintf("%s priority.", string(p))
}
