package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDsSorted(t *testing.T) {
	ids := []ID{MustID(33, KindProperty), MustID(7, KindProperty)}
	assert.Equal(t, "7, 33", FormatIDs(ids))
}

func TestCommandErrorMessage(t *testing.T) {
	err := NewCommandError("properties do not exist", MustID(2, KindProperty))
	assert.Equal(t, "properties do not exist: 2", err.Error())

	bare := NewCommandError("unknown relationship")
	assert.Equal(t, "unknown relationship", bare.Error())
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{IDs: []ID{MustID(4, KindContact)}}
	assert.Equal(t, "contact not found: 4", err.Error())
}
