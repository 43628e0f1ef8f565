package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairmont-labs/housebook/pkg/types"
)

func TestDeletePropertyCascade(t *testing.T) {
	e := newTestEngine(t)

	// Contacts 1, 2, 3 all reference property 10 in different roles.
	_, err := e.Link([]types.ID{cid(1)}, []types.ID{pid(10)}, types.RoleBuyer)
	require.NoError(t, err)
	_, err = e.Link([]types.ID{cid(2)}, []types.ID{pid(10)}, types.RoleSeller)
	require.NoError(t, err)
	_, err = e.Link([]types.ID{cid(3)}, []types.ID{pid(10)}, types.RoleOwner)
	require.NoError(t, err)
	// An unrelated link on another property must survive the cascade.
	_, err = e.Link([]types.ID{cid(1)}, []types.ID{pid(11)}, types.RoleBuyer)
	require.NoError(t, err)

	require.NoError(t, e.DeleteProperty(pid(10)))

	assert.False(t, e.Properties().Has(pid(10)))
	for _, cv := range []int{1, 2, 3} {
		c, _ := e.Contacts().Get(cid(cv))
		assert.False(t, c.Linked(pid(10)), "contact %d still references deleted property", cv)
	}
	c1, _ := e.Contacts().Get(cid(1))
	assert.True(t, c1.Buying.Contains(pid(11)), "unrelated link survives")
	assert.NoError(t, e.Check())
}

func TestDeletePropertyMissing(t *testing.T) {
	e := newTestEngine(t)
	err := e.DeleteProperty(pid(99))
	var cmdErr *types.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Error(), "99")
}

func TestDeleteContactCascade(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Link([]types.ID{cid(1)}, []types.ID{pid(10), pid(11)}, types.RoleBuyer)
	require.NoError(t, err)
	_, err = e.Link([]types.ID{cid(1)}, []types.ID{pid(12)}, types.RoleSeller)
	require.NoError(t, err)
	_, err = e.Link([]types.ID{cid(1)}, []types.ID{pid(12)}, types.RoleOwner)
	require.NoError(t, err)

	require.NoError(t, e.DeleteContact(cid(1)))

	assert.False(t, e.Contacts().Has(cid(1)))
	for _, pv := range []int{10, 11, 12} {
		p, _ := e.Properties().Get(pid(pv))
		assert.False(t, p.Linked(cid(1)), "property %d still references deleted contact", pv)
	}
	p12, _ := e.Properties().Get(pid(12))
	assert.Nil(t, p12.Owner, "owner reference cleared to null")
	assert.NoError(t, e.Check())
}

func TestDeleteContactOnlyOwner(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Link([]types.ID{cid(2)}, []types.ID{pid(10)}, types.RoleOwner)
	require.NoError(t, err)

	require.NoError(t, e.DeleteContact(cid(2)))

	p, _ := e.Properties().Get(pid(10))
	assert.Nil(t, p.Owner)
	assert.NoError(t, e.Check())
}

func TestDeleteContactMissing(t *testing.T) {
	e := newTestEngine(t)
	err := e.DeleteContact(cid(42))
	var cmdErr *types.CommandError
	require.ErrorAs(t, err, &cmdErr)
}

func TestChangeStatus(t *testing.T) {
	e := newTestEngine(t)

	// Fixtures start available; flip 10 and 11 to unavailable first.
	affected, err := e.ChangeStatus([]types.ID{pid(10), pid(11)}, types.PropertyStatusUnavailable)
	require.NoError(t, err)
	assert.Len(t, affected, 2)

	t.Run("batch back to available", func(t *testing.T) {
		affected, err := e.ChangeStatus([]types.ID{pid(10), pid(11)}, types.PropertyStatusAvailable)
		require.NoError(t, err)
		assert.Len(t, affected, 2)
		for _, pv := range []int{10, 11} {
			p, _ := e.Properties().Get(pid(pv))
			assert.Equal(t, types.PropertyStatusAvailable, p.Status)
		}
	})

	t.Run("relationship sets preserved across replace", func(t *testing.T) {
		_, err := e.Link([]types.ID{cid(1)}, []types.ID{pid(12)}, types.RoleBuyer)
		require.NoError(t, err)

		_, err = e.ChangeStatus([]types.ID{pid(12)}, types.PropertyStatusUnavailable)
		require.NoError(t, err)

		p, _ := e.Properties().Get(pid(12))
		assert.True(t, p.Buyers.Contains(cid(1)))
		assert.NoError(t, e.Check())
	})
}

func TestChangeStatusStrictness(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.ChangeStatus([]types.ID{pid(10)}, types.PropertyStatusUnavailable)
	require.NoError(t, err)

	t.Run("one missing id rejects whole batch", func(t *testing.T) {
		before := takeSnapshot(e)
		_, err := e.ChangeStatus(
			[]types.ID{pid(10), pid(99), pid(11)},
			types.PropertyStatusAvailable,
		)
		var cmdErr *types.CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Contains(t, cmdErr.Error(), "99")
		assertUnchanged(t, e, before)
	})

	t.Run("already in target status rejects whole batch", func(t *testing.T) {
		before := takeSnapshot(e)
		// 11 is still available; asking for available again disqualifies it.
		_, err := e.ChangeStatus(
			[]types.ID{pid(10), pid(11)},
			types.PropertyStatusAvailable,
		)
		var cmdErr *types.CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Contains(t, cmdErr.Error(), "11")
		assertUnchanged(t, e, before)
	})

	t.Run("all offenders listed together", func(t *testing.T) {
		_, err := e.ChangeStatus(
			[]types.ID{pid(98), pid(11), pid(99)},
			types.PropertyStatusAvailable,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "11, 98, 99")
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		_, err := e.ChangeStatus(nil, types.PropertyStatusAvailable)
		var cmdErr *types.CommandError
		require.ErrorAs(t, err, &cmdErr)
	})

	t.Run("unknown target status rejected", func(t *testing.T) {
		_, err := e.ChangeStatus([]types.ID{pid(10)}, "pending")
		var cmdErr *types.CommandError
		require.ErrorAs(t, err, &cmdErr)
	})
}
