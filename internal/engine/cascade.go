package engine

import (
	"fmt"
	"strings"

	"github.com/fairmont-labs/housebook/pkg/types"
)

// DeleteProperty removes a property after unlinking every contact that
// references it. Each referencing pair goes through Unlink; a failing
// unlink step is unreachable from internally consistent state and
// aborts the delete as an invariant violation.
func (e *Engine) DeleteProperty(id types.ID) error {
	p, ok := e.properties.Get(id)
	if !ok {
		return types.NewCommandError("property does not exist", id)
	}

	linked := e.contacts.FilteredView(func(c types.Contact) bool {
		return c.Linked(id)
	})
	for _, c := range linked {
		if _, err := e.Unlink([]types.ID{c.ID}, []types.ID{id}); err != nil {
			return &types.InvariantError{Detail: fmt.Sprintf("cascade unlink contact %s from property %s: %v", c.ID, id, err)}
		}
	}

	// The unlinks replaced the property record; remove the current one.
	p, _ = e.properties.Get(id)
	if err := e.properties.Remove(p); err != nil {
		return &types.InvariantError{Detail: fmt.Sprintf("remove property %s: %v", id, err)}
	}
	return nil
}

// DeleteContact removes a contact after cascading through every
// property that references it as owner, buyer, or seller. Owner slots
// are cleared rather than unlinked as a pair; Unlink covers both.
func (e *Engine) DeleteContact(id types.ID) error {
	c, ok := e.contacts.Get(id)
	if !ok {
		return types.NewCommandError("contact does not exist", id)
	}

	linked := e.properties.FilteredView(func(p types.Property) bool {
		return p.Linked(id)
	})
	for _, p := range linked {
		if _, err := e.Unlink([]types.ID{id}, []types.ID{p.ID}); err != nil {
			return &types.InvariantError{Detail: fmt.Sprintf("cascade unlink property %s from contact %s: %v", p.ID, id, err)}
		}
	}

	c, _ = e.contacts.Get(id)
	if err := e.contacts.Remove(c); err != nil {
		return &types.InvariantError{Detail: fmt.Sprintf("remove contact %s: %v", id, err)}
	}
	return nil
}

// ChangeStatus replaces every named property with a copy differing only
// in status, preserving relationship sets. The batch is strictly
// all-or-nothing: any id that does not resolve, or whose property is
// already in the target status, rejects the whole batch before a single
// record is replaced. Status transitions are not idempotent no-ops, so
// this contract is tighter than Unlink's per-pair leniency.
func (e *Engine) ChangeStatus(ids []types.ID, target string) ([]types.ID, error) {
	if !types.ValidPropertyStatus(target) {
		return nil, types.NewCommandError(fmt.Sprintf("unknown property status %q", target))
	}
	if len(ids) == 0 {
		return nil, types.NewCommandError("no properties specified")
	}

	seen := make(types.IDSet, len(ids))
	var offending []types.ID
	resolved := make([]types.Property, 0, len(ids))
	for _, id := range ids {
		if seen.Contains(id) {
			return nil, types.NewCommandError("duplicate property reference in batch", id)
		}
		seen.Add(id)
		p, ok := e.properties.Get(id)
		if !ok || strings.EqualFold(p.Status, target) {
			offending = append(offending, id)
			continue
		}
		resolved = append(resolved, p)
	}
	if len(offending) > 0 {
		msg := fmt.Sprintf("properties do not exist or are already %s", target)
		return nil, types.NewCommandError(msg, offending...)
	}

	affected := make([]types.ID, 0, len(resolved))
	for _, p := range resolved {
		if err := e.properties.Replace(p, p.WithStatus(target)); err != nil {
			return nil, &types.InvariantError{Detail: fmt.Sprintf("replace property %s: %v", p.ID, err)}
		}
		affected = append(affected, p.ID)
	}
	return affected, nil
}
