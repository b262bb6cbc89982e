package entities

// State is the lifecycle stage of a ticket. States are strictly monotonic:
// a ticket only ever moves to a higher state, never back.
type State int

const (
	// StateOpen is a freshly created ticket with no priority assigned.
	StateOpen State = iota

	// StatePrioritized is a ticket that has had a priority assigned by the
	// owner and is waiting on (or in) a staff conversation.
	StatePrioritized

	// StateArchived is a closed ticket that has been moved into the archive
	// category with its transcript posted.
	StateArchived

	// StateDeleted is a ticket whose channel no longer exists. Terminal.
	StateDeleted
)

// String implements the fmt.Stringer interface.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StatePrioritized:
		return "prioritized"
	case StateArchived:
		return "archived"
	case StateDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// CanTransition reports whether a ticket in this state may move to the next
// state. Only single forward steps are allowed; no stage can be skipped.
func (s State) CanTransition(next State) bool {
	return next == s+1
}
