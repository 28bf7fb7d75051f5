package notify

import "github.com/google/uuid"

// Filter narrows which subscriptions a published notification reaches.
// A subscription registered with a filter only receives notifications
// published with a matching filter; a nil filter on either side acts
// as a wildcard and matches everything.
//
// Implementations must be pure: Matches is called during delivery
// iteration and must not mutate the receiver, the argument, or any
// shared state.
type Filter interface {
	// Matches reports whether other is equal to the receiver from a
	// filtering perspective. When other is not the same concrete type
	// as the receiver, Matches returns false rather than an error.
	Matches(other Filter) bool
}

// String is a Filter compared by exact string equality.
//
// Example:
//
//	notify.Subscribe(observer, "order.shipped", notify.String("eu-west"))
//	notify.Publish("order.shipped", notify.String("eu-west"), action)
type String string

// Matches reports whether other is a String with the same value.
func (s String) Matches(other Filter) bool {
	o, ok := other.(String)
	return ok && s == o
}

// Strings is an ordered sequence Filter compared element-wise.
// Two Strings values match only when they have the same length and
// equal elements at every position.
type Strings []string

// Matches reports whether other is a Strings value with equal elements
// in the same order.
func (s Strings) Matches(other Filter) bool {
	o, ok := other.(Strings)
	if !ok || len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Values is a string-keyed composite Filter compared by key/value-set
// equality: both sides must hold the same keys, and the filters stored
// under each key must match. A nil entry only matches a nil entry under
// the same key.
type Values map[string]Filter

// Matches reports whether other is a Values with the same key set and
// pairwise-matching entries.
func (v Values) Matches(other Filter) bool {
	o, ok := other.(Values)
	if !ok || len(v) != len(o) {
		return false
	}
	for key, f := range v {
		of, ok := o[key]
		if !ok {
			return false
		}
		switch {
		case f == nil && of == nil:
			continue
		case f == nil || of == nil:
			return false
		case !f.Matches(of):
			return false
		}
	}
	return true
}

// Identifier is an opaque identity Filter. Two Identifiers match only
// when they carry the same underlying ID, so a minted Identifier can
// scope notifications to the parties it was shared with.
type Identifier struct {
	id uuid.UUID
}

// NewIdentifier mints a new unique Identifier.
func NewIdentifier() Identifier {
	return Identifier{id: uuid.New()}
}

// ParseIdentifier restores an Identifier from its String form.
func ParseIdentifier(s string) (Identifier, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{id: id}, nil
}

// String returns the canonical textual form of the Identifier.
func (i Identifier) String() string {
	return i.id.String()
}

// Matches reports whether other is an Identifier with the same ID.
func (i Identifier) Matches(other Filter) bool {
	o, ok := other.(Identifier)
	return ok && i.id == o.id
}
