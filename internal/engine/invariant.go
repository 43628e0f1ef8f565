package engine

import (
	"fmt"

	"github.com/fairmont-labs/housebook/pkg/types"
)

// Check audits the symmetry invariant across both books: every
// relationship reference must have its mirror on the other side, and no
// record may reference an id absent from the other collection. A
// violation is a programming defect in whatever bypassed the engine,
// never a user error.
func (e *Engine) Check() error {
	for _, c := range e.contacts.All() {
		for pid := range c.Buying {
			p, ok := e.properties.Get(pid)
			if !ok {
				return &types.InvariantError{Detail: fmt.Sprintf("contact %s buying dangling property %s", c.ID, pid)}
			}
			if !p.Buyers.Contains(c.ID) {
				return &types.InvariantError{Detail: fmt.Sprintf("contact %s buying property %s without back-reference", c.ID, pid)}
			}
		}
		for pid := range c.Selling {
			p, ok := e.properties.Get(pid)
			if !ok {
				return &types.InvariantError{Detail: fmt.Sprintf("contact %s selling dangling property %s", c.ID, pid)}
			}
			if !p.Sellers.Contains(c.ID) {
				return &types.InvariantError{Detail: fmt.Sprintf("contact %s selling property %s without back-reference", c.ID, pid)}
			}
		}
	}

	for _, p := range e.properties.All() {
		for cid := range p.Buyers {
			c, ok := e.contacts.Get(cid)
			if !ok {
				return &types.InvariantError{Detail: fmt.Sprintf("property %s buyer references dangling contact %s", p.ID, cid)}
			}
			if !c.Buying.Contains(p.ID) {
				return &types.InvariantError{Detail: fmt.Sprintf("property %s buyer %s without back-reference", p.ID, cid)}
			}
		}
		for cid := range p.Sellers {
			c, ok := e.contacts.Get(cid)
			if !ok {
				return &types.InvariantError{Detail: fmt.Sprintf("property %s seller references dangling contact %s", p.ID, cid)}
			}
			if !c.Selling.Contains(p.ID) {
				return &types.InvariantError{Detail: fmt.Sprintf("property %s seller %s without back-reference", p.ID, cid)}
			}
		}
		if p.Owner != nil && !e.contacts.Has(*p.Owner) {
			return &types.InvariantError{Detail: fmt.Sprintf("property %s owned by dangling contact %s", p.ID, *p.Owner)}
		}
	}
	return nil
}
