package entities

import (
	"fmt"
	"strings"
)

// Ticket is one support interaction with a single owner. A ticket has no
// persisted record of its own; everything here is encoded in, and re-derived
// from, the ticket's Discord channel (its name, topic and parent category).
type Ticket struct {
	// Type is the category of support the ticket was opened for.
	Type TicketType

	// OwnerHandle is the username of the owner at the time the ticket was
	// created. Display only; never used for identity comparisons.
	OwnerHandle string

	// OwnerID is the stable Discord user ID of the owner. This is the
	// identity that duplicate ticket checks compare on, so that a username
	// change can never conflate two owners.
	OwnerID string

	// ChannelID is the ID of the ticket's channel, once created.
	ChannelID string

	// Priority is the assigned priority, empty until one is selected.
	Priority Priority

	// State is the lifecycle stage the ticket was last observed in.
	State State
}

// ChannelName renders the deterministic channel name for the ticket:
// "{type}-{handle}-{ownerID}". The owner ID suffix keeps names unique across
// unrelated users whose handles collide, and makes ownership checks exact.
func (t *Ticket) ChannelName() string {
	return fmt.Sprintf("%s-%s-%s", t.Type.Slug(), sanitizeHandle(t.OwnerHandle), t.OwnerID)
}

// ParseChannelName decodes a ticket channel name produced by ChannelName.
// The handle may itself contain separators, so the type is taken from the
// first segment and the owner ID from the last.
func ParseChannelName(name string) (*Ticket, error) {
	parts := strings.Split(name, "-")
	if len(parts) < 3 {
		return nil, fmt.Errorf("channel name %q is not a ticket name", name)
	}

	typ, err := ParseTicketType(parts[0])
	if err != nil {
		return nil, fmt.Errorf("channel name %q is not a ticket name: %w", name, err)
	}

	return &Ticket{
		Type:        typ,
		OwnerHandle: strings.Join(parts[1:len(parts)-1], "-"),
		OwnerID:     parts[len(parts)-1],
	}, nil
}

// sanitizeHandle lowers a handle into the character set Discord allows in
// channel names.
func sanitizeHandle(handle string) string {
	handle = strings.ToLower(handle)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.':
			return r
		default:
			return '-'
		}
	}, handle)
}

// Topic renders the channel topic that records the assigned priority and the
// owner, e.g. "Priority: Urgent | User: alice".
func Topic(p Priority, ownerHandle string) string {
	return fmt.Sprintf("Priority: %s | User: %s", p, ownerHandle)
}

// ParseTopic decodes a topic produced by Topic. The second return value is
// false when the topic does not carry a priority, i.e. the ticket is still
// open.
func ParseTopic(topic string) (Priority, bool) {
	rest, ok := strings.CutPrefix(topic, "Priority: ")
	if !ok {
		return "", false
	}

	raw, _, ok := strings.Cut(rest, " | User: ")
	if !ok {
		return "", false
	}

	p, err := ParsePriority(raw)
	if err != nil {
		return "", false
	}
	return p, true
}
