package types

import "strings"

// Contact statuses.
const (
	ContactStatusActive   = "active"
	ContactStatusInactive = "inactive"
)

var validContactStatuses = map[string]bool{
	ContactStatusActive:   true,
	ContactStatusInactive: true,
}

// Contact represents a client who may buy or sell properties. The
// relationship sets hold property ids and are mutated only through the
// relationship engine; every other field is a plain scalar.
type Contact struct {
	ID        ID
	Name      string
	Phone     string
	Email     string
	Address   string
	BudgetMin int64
	BudgetMax int64
	Notes     string
	Status    string
	Buying    IDSet // property ids this contact is buying
	Selling   IDSet // property ids this contact is selling
}

// NewContact builds a contact with empty relationship sets and the
// default active status when none is given.
func NewContact(id ID, name, phone string) Contact {
	return Contact{
		ID:      id,
		Name:    name,
		Phone:   phone,
		Status:  ContactStatusActive,
		Buying:  NewIDSet(),
		Selling: NewIDSet(),
	}
}

// Validate checks the scalar fields. Relationship sets are not
// validated here; their consistency is the engine's concern.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidName
	}
	if !isDigits(c.Phone) {
		return ErrInvalidPhone
	}
	if c.BudgetMin < 0 || c.BudgetMax < 0 {
		return ErrInvalidBudget
	}
	if c.BudgetMax > 0 && c.BudgetMin > c.BudgetMax {
		return ErrBudgetRange
	}
	if c.Status != "" && !validContactStatuses[strings.ToLower(c.Status)] {
		return ErrInvalidStatus
	}
	return nil
}

// EntityID returns the contact's identifier.
func (c Contact) EntityID() ID {
	return c.ID
}

// NaturalKey is the duplicate-detection key: case-insensitive name plus
// phone. Two contacts with the same key are the same person as far as
// the collection is concerned, regardless of id.
func (c Contact) NaturalKey() string {
	return strings.ToLower(strings.TrimSpace(c.Name)) + "|" + c.Phone
}

// Clone returns a deep copy whose relationship sets share no storage
// with the receiver. The engine mutates clones, never stored records.
func (c Contact) Clone() Contact {
	c.Buying = c.Buying.Clone()
	c.Selling = c.Selling.Clone()
	return c
}

// Linked reports whether the contact references the property id in
// either relationship set.
func (c Contact) Linked(propertyID ID) bool {
	return c.Buying.Contains(propertyID) || c.Selling.Contains(propertyID)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
