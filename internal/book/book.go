// Package book implements the ordered, identifier-indexed collections
// backing the contact and property books. Insertion order is display
// order and is stable across Replace. The collections own their
// records; relationship sets inside stored records are mutated only by
// the relationship engine, which works on clones and commits through
// Replace.
package book

import (
	"github.com/fairmont-labs/housebook/pkg/types"
)

// Entity is the contract a record must satisfy to live in a Book.
type Entity interface {
	EntityID() types.ID
	NaturalKey() string
}

// Book is an insertion-ordered collection of records indexed by typed
// identifier and by natural key. The zero value is not usable; construct
// with New.
type Book[T Entity] struct {
	kind  types.Kind
	order []types.ID
	byID  map[types.ID]T
	byKey map[string]types.ID
	view  func(T) bool // current display predicate, nil shows everything
}

// ContactBook holds contacts keyed by contact id.
type ContactBook = Book[types.Contact]

// PropertyBook holds properties keyed by property id.
type PropertyBook = Book[types.Property]

// New returns an empty book for the given entity kind.
func New[T Entity](kind types.Kind) *Book[T] {
	return &Book[T]{
		kind:  kind,
		byID:  make(map[types.ID]T),
		byKey: make(map[string]types.ID),
	}
}

// NewContacts returns an empty contact book.
func NewContacts() *ContactBook {
	return New[types.Contact](types.KindContact)
}

// NewProperties returns an empty property book.
func NewProperties() *PropertyBook {
	return New[types.Property](types.KindProperty)
}

// Len returns the number of records.
func (b *Book[T]) Len() int {
	return len(b.order)
}

// Add appends a record. It fails with a DuplicateError when another
// record already holds the same natural key or the same id.
func (b *Book[T]) Add(e T) error {
	id := e.EntityID()
	if _, exists := b.byID[id]; exists {
		return &types.DuplicateError{Kind: b.kind, Key: id.String()}
	}
	key := e.NaturalKey()
	if _, exists := b.byKey[key]; exists {
		return &types.DuplicateError{Kind: b.kind, Key: key}
	}
	b.order = append(b.order, id)
	b.byID[id] = e
	b.byKey[key] = id
	return nil
}

// Get returns the record with the given id. Callers must treat the
// returned record as read-only; mutation goes through Replace.
func (b *Book[T]) Get(id types.ID) (T, bool) {
	e, ok := b.byID[id]
	return e, ok
}

// Has reports whether a record with the given id exists.
func (b *Book[T]) Has(id types.ID) bool {
	_, ok := b.byID[id]
	return ok
}

// Replace substitutes old with updated, preserving iteration position.
// It fails with a NotFoundError when old is absent, and with a
// DuplicateError when updated's natural key collides with a different
// record.
func (b *Book[T]) Replace(old, updated T) error {
	oldID := old.EntityID()
	if _, exists := b.byID[oldID]; !exists {
		return &types.NotFoundError{IDs: []types.ID{oldID}}
	}

	newID := updated.EntityID()
	newKey := updated.NaturalKey()
	if holder, exists := b.byKey[newKey]; exists && holder != oldID {
		return &types.DuplicateError{Kind: b.kind, Key: newKey}
	}
	if newID != oldID {
		if _, exists := b.byID[newID]; exists {
			return &types.DuplicateError{Kind: b.kind, Key: newID.String()}
		}
	}

	delete(b.byKey, b.byID[oldID].NaturalKey())
	if newID != oldID {
		delete(b.byID, oldID)
		for i, id := range b.order {
			if id == oldID {
				b.order[i] = newID
				break
			}
		}
	}
	b.byID[newID] = updated
	b.byKey[newKey] = newID
	return nil
}

// Remove deletes the record. It fails with a NotFoundError when the
// record is absent.
func (b *Book[T]) Remove(e T) error {
	id := e.EntityID()
	stored, exists := b.byID[id]
	if !exists {
		return &types.NotFoundError{IDs: []types.ID{id}}
	}
	delete(b.byID, id)
	delete(b.byKey, stored.NaturalKey())
	for i, oid := range b.order {
		if oid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// All returns every record in insertion order.
func (b *Book[T]) All() []T {
	out := make([]T, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.byID[id])
	}
	return out
}

// FilteredView returns the records satisfying pred, in insertion order.
// The view is re-evaluated on every call and never mutates backing
// storage; it may be called repeatedly with different predicates.
func (b *Book[T]) FilteredView(pred func(T) bool) []T {
	out := make([]T, 0, len(b.order))
	for _, id := range b.order {
		if e := b.byID[id]; pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// SetView installs the current display predicate. The display layer
// reads Visible; mutations do not disturb the installed predicate.
func (b *Book[T]) SetView(pred func(T) bool) {
	b.view = pred
}

// ResetView clears the display predicate so Visible shows everything.
func (b *Book[T]) ResetView() {
	b.view = nil
}

// Visible returns the current display view, re-evaluated against the
// present contents of the book.
func (b *Book[T]) Visible() []T {
	if b.view == nil {
		return b.All()
	}
	return b.FilteredView(b.view)
}
