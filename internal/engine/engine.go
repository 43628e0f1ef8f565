// Package engine implements the relationship-consistency core: the
// link/unlink operations across the contact and property books, the
// delete cascades built on them, and the strict status-change batch.
// The engine is the sole writer of relationship sets; every mutation
// validates completely before the first write, so a started mutation
// cannot fail and no rollback log is needed.
package engine

import (
	"fmt"

	"github.com/fairmont-labs/housebook/internal/book"
	"github.com/fairmont-labs/housebook/pkg/types"
)

// Engine coordinates link and unlink operations across both books.
// One top-level operation owns both books for its duration; execution
// is single-threaded by contract.
type Engine struct {
	contacts   *book.ContactBook
	properties *book.PropertyBook
}

// New returns an engine over the given books.
func New(contacts *book.ContactBook, properties *book.PropertyBook) *Engine {
	return &Engine{contacts: contacts, properties: properties}
}

// Contacts returns the contact book the engine operates on.
func (e *Engine) Contacts() *book.ContactBook {
	return e.contacts
}

// Properties returns the property book the engine operates on.
func (e *Engine) Properties() *book.PropertyBook {
	return e.properties
}

// Result carries the records a link or unlink operation rewrote,
// already committed to the books.
type Result struct {
	Contacts   []types.Contact
	Properties []types.Property
}

// Link establishes relationships of the given role between every
// contact and every property in the two id sets. Validation is fully
// separated from mutation: a missing id, a duplicate reference within
// one set, or an unknown role fails the whole batch with a CommandError
// before anything is written. Owner links overwrite the property's
// owner slot and require exactly one contact; buyer and seller links
// apply paired set-updates over the Cartesian product.
func (e *Engine) Link(contactIDs, propertyIDs []types.ID, role types.Role) (Result, error) {
	contacts, err := e.resolveContacts(contactIDs)
	if err != nil {
		return Result{}, err
	}
	properties, err := e.resolveProperties(propertyIDs)
	if err != nil {
		return Result{}, err
	}

	var updatedContacts []types.Contact
	var updatedProperties []types.Property

	switch role {
	case types.RoleOwner:
		if len(contacts) != 1 {
			return Result{}, types.NewCommandError("owner link requires exactly one contact")
		}
		ownerID := contacts[0].ID
		for _, p := range properties {
			next := p.Clone()
			next.Owner = &ownerID
			updatedProperties = append(updatedProperties, next)
		}

	case types.RoleBuyer, types.RoleSeller:
		updatedContacts = make([]types.Contact, len(contacts))
		updatedProperties = make([]types.Property, len(properties))
		for i, c := range contacts {
			updatedContacts[i] = c.Clone()
		}
		for i, p := range properties {
			updatedProperties[i] = p.Clone()
		}
		for i := range updatedContacts {
			for j := range updatedProperties {
				pairLink(&updatedContacts[i], &updatedProperties[j], role)
			}
		}

	default:
		return Result{}, types.NewCommandError("unknown relationship")
	}

	if err := e.commit(contacts, updatedContacts, properties, updatedProperties); err != nil {
		return Result{}, err
	}
	return Result{Contacts: updatedContacts, Properties: updatedProperties}, nil
}

// Unlink removes whatever buyer or seller relationships exist between
// the two id sets and clears a matching owner slot. Absence of a
// relationship for a pair is a silent no-op; only structural problems
// (missing id, duplicate reference) fail the command. Unlink is
// idempotent.
func (e *Engine) Unlink(contactIDs, propertyIDs []types.ID) (Result, error) {
	contacts, err := e.resolveContacts(contactIDs)
	if err != nil {
		return Result{}, err
	}
	properties, err := e.resolveProperties(propertyIDs)
	if err != nil {
		return Result{}, err
	}

	updatedContacts := make([]types.Contact, len(contacts))
	updatedProperties := make([]types.Property, len(properties))
	touchedC := make([]bool, len(contacts))
	touchedP := make([]bool, len(properties))
	for i, c := range contacts {
		updatedContacts[i] = c.Clone()
	}
	for i, p := range properties {
		updatedProperties[i] = p.Clone()
	}

	for i := range updatedContacts {
		for j := range updatedProperties {
			if pairUnlink(&updatedContacts[i], &updatedProperties[j]) {
				touchedC[i] = true
				touchedP[j] = true
			}
		}
	}

	var changedOldC []types.Contact
	var changedNewC []types.Contact
	for i, touched := range touchedC {
		if touched {
			changedOldC = append(changedOldC, contacts[i])
			changedNewC = append(changedNewC, updatedContacts[i])
		}
	}
	var changedOldP []types.Property
	var changedNewP []types.Property
	for j, touched := range touchedP {
		if touched {
			changedOldP = append(changedOldP, properties[j])
			changedNewP = append(changedNewP, updatedProperties[j])
		}
	}

	if err := e.commit(changedOldC, changedNewC, changedOldP, changedNewP); err != nil {
		return Result{}, err
	}
	return Result{Contacts: changedNewC, Properties: changedNewP}, nil
}

// pairLink applies one logically atomic pair-update: both sides of the
// relationship change together or not at all.
func pairLink(c *types.Contact, p *types.Property, role types.Role) {
	switch role {
	case types.RoleBuyer:
		c.Buying.Add(p.ID)
		p.Buyers.Add(c.ID)
	case types.RoleSeller:
		c.Selling.Add(p.ID)
		p.Sellers.Add(c.ID)
	}
}

// pairUnlink removes any relationship between the pair and reports
// whether anything changed.
func pairUnlink(c *types.Contact, p *types.Property) bool {
	changed := false
	if c.Buying.Contains(p.ID) {
		c.Buying.Remove(p.ID)
		p.Buyers.Remove(c.ID)
		changed = true
	}
	if c.Selling.Contains(p.ID) {
		c.Selling.Remove(p.ID)
		p.Sellers.Remove(c.ID)
		changed = true
	}
	if p.OwnedBy(c.ID) {
		p.Owner = nil
		changed = true
	}
	return changed
}

// commit swaps the updated records into the books. All preconditions
// were checked during resolution, so a failure here means the books
// changed underneath the operation: a programming defect, reported as
// an InvariantError.
func (e *Engine) commit(oldC, newC []types.Contact, oldP, newP []types.Property) error {
	for i := range newC {
		if err := e.contacts.Replace(oldC[i], newC[i]); err != nil {
			return &types.InvariantError{Detail: fmt.Sprintf("commit contact %s: %v", newC[i].ID, err)}
		}
	}
	for i := range newP {
		if err := e.properties.Replace(oldP[i], newP[i]); err != nil {
			return &types.InvariantError{Detail: fmt.Sprintf("commit property %s: %v", newP[i].ID, err)}
		}
	}
	return nil
}

// resolveContacts maps ids to records, rejecting the batch when an id
// is missing or appears twice.
func (e *Engine) resolveContacts(ids []types.ID) ([]types.Contact, error) {
	seen := make(types.IDSet, len(ids))
	var missing []types.ID
	out := make([]types.Contact, 0, len(ids))
	for _, id := range ids {
		if seen.Contains(id) {
			return nil, types.NewCommandError("duplicate contact reference in batch", id)
		}
		seen.Add(id)
		c, ok := e.contacts.Get(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		out = append(out, c)
	}
	if len(missing) > 0 {
		return nil, types.NewCommandError("contacts do not exist", missing...)
	}
	return out, nil
}

// resolveProperties maps ids to records, rejecting the batch when an id
// is missing or appears twice.
func (e *Engine) resolveProperties(ids []types.ID) ([]types.Property, error) {
	seen := make(types.IDSet, len(ids))
	var missing []types.ID
	out := make([]types.Property, 0, len(ids))
	for _, id := range ids {
		if seen.Contains(id) {
			return nil, types.NewCommandError("duplicate property reference in batch", id)
		}
		seen.Add(id)
		p, ok := e.properties.Get(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		out = append(out, p)
	}
	if len(missing) > 0 {
		return nil, types.NewCommandError("properties do not exist", missing...)
	}
	return out, nil
}
