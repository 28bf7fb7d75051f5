package notify

import "github.com/google/uuid"

// subscription is one observer's registration for a single category.
// The observer reference is non-owning: the center never keeps an
// observer alive, and callers must Unsubscribe before discarding an
// observer they want released.
type subscription struct {
	id       string
	observer any
	filter   Filter // nil means wildcard: deliver regardless of the publish-time filter
}

func newSubscription(observer any, filter Filter) *subscription {
	return &subscription{
		id:       uuid.New().String(),
		observer: observer,
		filter:   filter,
	}
}

// redundantWith reports whether registering s next to other would
// duplicate it: same observer, and either side's filter is a wildcard
// or the filters match. A wildcard absorbs any filter regardless of
// the other side's specificity.
func (s *subscription) redundantWith(other *subscription) bool {
	if s.observer != other.observer {
		return false
	}
	return s.filter == nil || other.filter == nil || s.filter.Matches(other.filter)
}

// equal is stricter than redundantWith: the filters must actually
// match, not merely absorb each other. Two nil filters are equal by
// definition; a nil filter never equals a concrete one.
func (s *subscription) equal(other *subscription) bool {
	if s.observer != other.observer {
		return false
	}
	if s.filter == nil || other.filter == nil {
		return s.filter == nil && other.filter == nil
	}
	return s.filter.Matches(other.filter)
}

// findRedundant returns the first entry in list that s is redundant
// with, or nil when there is none.
func (s *subscription) findRedundant(list []*subscription) *subscription {
	for _, e := range list {
		if s.redundantWith(e) {
			return e
		}
	}
	return nil
}
