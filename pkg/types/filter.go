package types

import "strings"

// Filter semantics, shared by ContactFilter and PropertyFilter:
// when no fields are supplied the filter matches everything; when at
// least one field is supplied an entity matches if it satisfies at
// least one supplied field (OR across fields, not AND). Downstream
// behavior depends on the OR semantics; do not tighten it to AND.
// Text fields use case-insensitive substring match, status fields exact
// case-insensitive match, numeric bounds are inclusive.

// ContactFilter is a bundle of optional contact predicates. A nil slice
// or nil bound means the field was not supplied.
type ContactFilter struct {
	Names     []string
	Phones    []string
	Emails    []string
	Addresses []string
	Notes     []string
	Statuses  []string
	BudgetMin *int64 // matches contacts whose BudgetMin >= bound
	BudgetMax *int64 // matches contacts whose BudgetMax <= bound
}

// Empty reports whether no field was supplied.
func (f ContactFilter) Empty() bool {
	return len(f.Names) == 0 && len(f.Phones) == 0 && len(f.Emails) == 0 &&
		len(f.Addresses) == 0 && len(f.Notes) == 0 && len(f.Statuses) == 0 &&
		f.BudgetMin == nil && f.BudgetMax == nil
}

// Match evaluates the filter against a contact.
func (f ContactFilter) Match(c Contact) bool {
	if f.Empty() {
		return true
	}
	return anySubstring(f.Names, c.Name) ||
		anySubstring(f.Phones, c.Phone) ||
		anySubstring(f.Emails, c.Email) ||
		anySubstring(f.Addresses, c.Address) ||
		anySubstring(f.Notes, c.Notes) ||
		anyStatus(f.Statuses, c.Status) ||
		(f.BudgetMin != nil && c.BudgetMin >= *f.BudgetMin) ||
		(f.BudgetMax != nil && c.BudgetMax <= *f.BudgetMax)
}

// PropertyFilter is a bundle of optional property predicates. The owner
// bounds filter on the cross-referenced owner contact id.
type PropertyFilter struct {
	Addresses []string
	Postals   []string
	Types     []string
	Statuses  []string
	Bedrooms  []int
	Bathrooms []int
	PriceMin  *int64
	PriceMax  *int64
	AreaMin   *int
	AreaMax   *int
	OwnerMin  *int // matches properties whose owner id >= bound
	OwnerMax  *int // matches properties whose owner id <= bound
}

// Empty reports whether no field was supplied.
func (f PropertyFilter) Empty() bool {
	return len(f.Addresses) == 0 && len(f.Postals) == 0 && len(f.Types) == 0 &&
		len(f.Statuses) == 0 && len(f.Bedrooms) == 0 && len(f.Bathrooms) == 0 &&
		f.PriceMin == nil && f.PriceMax == nil &&
		f.AreaMin == nil && f.AreaMax == nil &&
		f.OwnerMin == nil && f.OwnerMax == nil
}

// Match evaluates the filter against a property.
func (f PropertyFilter) Match(p Property) bool {
	if f.Empty() {
		return true
	}
	return anySubstring(f.Addresses, p.Address) ||
		anySubstring(f.Postals, p.Postal) ||
		anySubstring(f.Types, p.Type) ||
		anyStatus(f.Statuses, p.Status) ||
		anyInt(f.Bedrooms, p.Bedroom) ||
		anyInt(f.Bathrooms, p.Bathroom) ||
		(f.PriceMin != nil && p.Price >= *f.PriceMin) ||
		(f.PriceMax != nil && p.Price <= *f.PriceMax) ||
		(f.AreaMin != nil && p.FloorArea >= *f.AreaMin) ||
		(f.AreaMax != nil && p.FloorArea <= *f.AreaMax) ||
		f.matchOwner(p)
}

func (f PropertyFilter) matchOwner(p Property) bool {
	if f.OwnerMin == nil && f.OwnerMax == nil {
		return false
	}
	if p.Owner == nil {
		return false
	}
	if f.OwnerMin != nil && p.Owner.Value < *f.OwnerMin {
		return false
	}
	if f.OwnerMax != nil && p.Owner.Value > *f.OwnerMax {
		return false
	}
	return true
}

func anySubstring(keywords []string, field string) bool {
	lower := strings.ToLower(field)
	for _, k := range keywords {
		if k != "" && strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// anyStatus requires an exact match so that filtering for "active" does
// not also return "inactive".
func anyStatus(keywords []string, status string) bool {
	target := strings.ToLower(strings.TrimSpace(status))
	for _, k := range keywords {
		if target == strings.ToLower(strings.TrimSpace(k)) {
			return true
		}
	}
	return false
}

func anyInt(values []int, field int) bool {
	for _, v := range values {
		if v == field {
			return true
		}
	}
	return false
}
