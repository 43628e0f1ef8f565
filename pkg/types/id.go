package types

import (
	"fmt"
	"sort"
	"strconv"
)

// MaxIDValue bounds identifier values so they stay well inside the
// integer range regardless of platform.
const MaxIDValue = 2_000_000

// Kind tags an identifier with the entity collection it belongs to.
// A contact id never compares equal to a property id, even when the
// numeric values coincide.
type Kind string

const (
	KindContact  Kind = "contact"
	KindProperty Kind = "property"
)

// ID is a typed, range-checked integer key. The zero value is invalid;
// construct through NewID or ParseID. ID is comparable and suitable as
// a map key; equality is on (Value, Kind).
type ID struct {
	Value int
	Kind  Kind
}

// NewID constructs an identifier, enforcing 0 < value <= MaxIDValue.
func NewID(value int, kind Kind) (ID, error) {
	if value <= 0 || value > MaxIDValue {
		return ID{}, fmt.Errorf("%w: %d", ErrInvalidID, value)
	}
	return ID{Value: value, Kind: kind}, nil
}

// MustID is NewID for compile-time-known values; panics on a bad value.
// Intended for tests and fixtures.
func MustID(value int, kind Kind) ID {
	id, err := NewID(value, kind)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseID converts user-supplied text into an identifier of the given
// kind. Returns ErrInvalidID (wrapped) for non-numeric or out-of-range
// input.
func ParseID(text string, kind Kind) (ID, error) {
	value, err := strconv.Atoi(text)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, text)
	}
	return NewID(value, kind)
}

// IsZero reports whether the id is the invalid zero value.
func (id ID) IsZero() bool {
	return id.Value == 0
}

func (id ID) String() string {
	return strconv.Itoa(id.Value)
}

// IDSet is a set of identifiers of one kind, keyed on (Value, Kind).
type IDSet map[ID]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...ID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports membership.
func (s IDSet) Contains(id ID) bool {
	_, ok := s[id]
	return ok
}

// Add inserts an id; inserting an existing member is a no-op.
func (s IDSet) Add(id ID) {
	s[id] = struct{}{}
}

// Remove deletes an id; removing an absent member is a no-op.
func (s IDSet) Remove(id ID) {
	delete(s, id)
}

// Clone returns an independent copy of the set. Entity records share no
// set storage with the records they were derived from.
func (s IDSet) Clone() IDSet {
	c := make(IDSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// IDs returns the members in ascending value order.
func (s IDSet) IDs() []ID {
	out := make([]ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sortIDs(out)
	return out
}

// Equal reports whether two sets hold the same members.
func (s IDSet) Equal(other IDSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

func sortIDs(ids []ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Value < ids[j].Value })
}
