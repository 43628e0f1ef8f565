package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Validation and collection errors.
var (
	ErrInvalidID     = errors.New("id must be a positive integer of at most 2000000")
	ErrInvalidName   = errors.New("name must not be empty")
	ErrInvalidPhone  = errors.New("phone must contain only digits")
	ErrInvalidPrice  = errors.New("price must be a positive integer of at most 1000000000000")
	ErrInvalidBudget = errors.New("budget must be a non-negative integer")
	ErrBudgetRange   = errors.New("minimum budget must not exceed maximum budget")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidRole   = errors.New("unknown relationship")
)

// DuplicateError reports an insertion that would violate natural-key
// uniqueness. Local to a collection's Add; never leaves partial state.
type DuplicateError struct {
	Kind Kind
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s: %s", e.Kind, e.Key)
}

// NotFoundError reports an operation referencing an id absent from its
// collection.
type NotFoundError struct {
	IDs []ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", kindLabel(e.IDs), FormatIDs(e.IDs))
}

// CommandError reports a structural relationship violation: an unknown
// role, a duplicate reference within one batch, or a strict batch
// operation with offending members. It is always raised before any
// write; no partial application precedes it.
type CommandError struct {
	Msg string
	IDs []ID
}

func (e *CommandError) Error() string {
	if len(e.IDs) == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Msg, FormatIDs(e.IDs))
}

// NewCommandError builds a CommandError naming the offending ids.
func NewCommandError(msg string, ids ...ID) *CommandError {
	return &CommandError{Msg: msg, IDs: ids}
}

// InvariantError reports a broken symmetry invariant between the two
// collections. It indicates a programming defect, not a user error;
// it should never be reachable through the public contract.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return "relationship invariant violated: " + e.Detail
}

// FormatIDs renders a set of ids as a sorted, comma-separated list for
// user-facing messages.
func FormatIDs(ids []ID) string {
	values := make([]int, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.Value)
	}
	sort.Ints(values)
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return strings.Join(parts, ", ")
}

func kindLabel(ids []ID) string {
	if len(ids) == 0 {
		return "entity"
	}
	switch ids[0].Kind {
	case KindContact:
		return "contact"
	case KindProperty:
		return "property"
	default:
		return "entity"
	}
}
