package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairmont-labs/housebook/pkg/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"command error", types.NewCommandError("properties do not exist"), exitUserError},
		{"wrapped command error", fmt.Errorf("link: %w", types.NewCommandError("bad")), exitUserError},
		{"duplicate", &types.DuplicateError{Kind: types.KindContact, Key: "alice|123"}, exitUserError},
		{"not found", &types.NotFoundError{}, exitUserError},
		{"invalid id", fmt.Errorf("%w: %q", types.ErrInvalidID, "abc"), exitUserError},
		{"invalid role", types.ErrInvalidRole, exitUserError},
		{"invalid status", types.ErrInvalidStatus, exitUserError},
		{"io failure", errors.New("disk full"), exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1", "2"}, types.KindContact)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, types.MustID(1, types.KindContact), ids[0])
	assert.Equal(t, types.MustID(2, types.KindContact), ids[1])

	_, err = parseIDs([]string{"1", "zero"}, types.KindContact)
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestContactDocRoundsSets(t *testing.T) {
	c := types.NewContact(types.MustID(1, types.KindContact), "Alice Pauline", "94351253")
	c.Buying.Add(types.MustID(12, types.KindProperty))
	c.Buying.Add(types.MustID(10, types.KindProperty))
	c.Selling.Add(types.MustID(11, types.KindProperty))

	doc := toContactDoc(c)
	assert.Equal(t, 1, doc.ID)
	assert.Equal(t, []int{10, 12}, doc.Buying)
	assert.Equal(t, []int{11}, doc.Selling)
}

func TestPropertyDocOwner(t *testing.T) {
	p := types.NewProperty(types.MustID(10, types.KindProperty), "123 Clementi Ave", "120300", 500000)
	doc := toPropertyDoc(p)
	assert.Nil(t, doc.Owner)

	owner := types.MustID(3, types.KindContact)
	p.Owner = &owner
	doc = toPropertyDoc(p)
	require.NotNil(t, doc.Owner)
	assert.Equal(t, 3, *doc.Owner)
}

func TestFormatContact(t *testing.T) {
	c := types.NewContact(types.MustID(1, types.KindContact), "Alice Pauline", "94351253")
	assert.Equal(t, "[1] Alice Pauline (phone 94351253, active)", formatContact(c))

	c.Buying.Add(types.MustID(10, types.KindProperty))
	c.Buying.Add(types.MustID(11, types.KindProperty))
	assert.Equal(t, "[1] Alice Pauline (phone 94351253, active) buying: 10, 11", formatContact(c))
}

func TestFormatProperty(t *testing.T) {
	p := types.NewProperty(types.MustID(10, types.KindProperty), "123 Clementi Ave", "120300", 500000)
	assert.Equal(t, "[10] 123 Clementi Ave, 120300 ($500000, available)", formatProperty(p))

	owner := types.MustID(2, types.KindContact)
	p.Owner = &owner
	p.Sellers.Add(types.MustID(2, types.KindContact))
	assert.Equal(t, "[10] 123 Clementi Ave, 120300 ($500000, available) owner: 2 sellers: 2", formatProperty(p))
}

func TestRoleSuffix(t *testing.T) {
	p := types.NewProperty(types.MustID(10, types.KindProperty), "123 Clementi Ave", "120300", 500000)
	cid := types.MustID(1, types.KindContact)

	assert.Equal(t, "", roleSuffix(p, cid))

	p.Buyers.Add(cid)
	assert.Equal(t, " [buyer]", roleSuffix(p, cid))

	p.Owner = &cid
	p.Sellers.Add(cid)
	assert.Equal(t, " [owner, buyer, seller]", roleSuffix(p, cid))
}
