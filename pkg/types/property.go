package types

import "strings"

// Property statuses. A property is either on the market or off it.
const (
	PropertyStatusAvailable   = "available"
	PropertyStatusUnavailable = "unavailable"
)

// MaxPrice bounds listing prices (one trillion).
const MaxPrice int64 = 1_000_000_000_000

var validPropertyStatuses = map[string]bool{
	PropertyStatusAvailable:   true,
	PropertyStatusUnavailable: true,
}

// ValidPropertyStatus reports whether s names a recognized property
// status (case-insensitive).
func ValidPropertyStatus(s string) bool {
	return validPropertyStatuses[strings.ToLower(s)]
}

// Property represents a listing. Owner is a single slot distinct from
// buyer/seller membership: linking a new owner overwrites the slot
// without touching the buyer/seller sets. Buyers and Sellers hold
// contact ids and are mutated only through the relationship engine.
type Property struct {
	ID        ID
	Address   string
	Postal    string
	Price     int64
	Bedroom   int
	Bathroom  int
	FloorArea int
	Status    string
	Type      string
	Owner     *ID   // contact id, nil when unowned
	Buyers    IDSet // contact ids buying this property
	Sellers   IDSet // contact ids selling this property
}

// NewProperty builds a property with empty relationship sets, no owner,
// and the default available status.
func NewProperty(id ID, address, postal string, price int64) Property {
	return Property{
		ID:      id,
		Address: address,
		Postal:  postal,
		Price:   price,
		Status:  PropertyStatusAvailable,
		Buyers:  NewIDSet(),
		Sellers: NewIDSet(),
	}
}

// Validate checks the scalar fields.
func (p Property) Validate() error {
	if strings.TrimSpace(p.Address) == "" {
		return ErrInvalidName
	}
	if p.Price <= 0 || p.Price > MaxPrice {
		return ErrInvalidPrice
	}
	if p.Status != "" && !ValidPropertyStatus(p.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// EntityID returns the property's identifier.
func (p Property) EntityID() ID {
	return p.ID
}

// NaturalKey is the duplicate-detection key: case-insensitive address
// plus postal code.
func (p Property) NaturalKey() string {
	return strings.ToLower(strings.TrimSpace(p.Address)) + "|" + p.Postal
}

// Clone returns a deep copy whose relationship sets and owner slot
// share no storage with the receiver.
func (p Property) Clone() Property {
	p.Buyers = p.Buyers.Clone()
	p.Sellers = p.Sellers.Clone()
	if p.Owner != nil {
		owner := *p.Owner
		p.Owner = &owner
	}
	return p
}

// OwnedBy reports whether the owner slot holds the given contact id.
func (p Property) OwnedBy(contactID ID) bool {
	return p.Owner != nil && *p.Owner == contactID
}

// Linked reports whether the property references the contact id as
// owner, buyer, or seller.
func (p Property) Linked(contactID ID) bool {
	return p.OwnedBy(contactID) || p.Buyers.Contains(contactID) || p.Sellers.Contains(contactID)
}

// WithStatus returns a copy differing only in status. Relationship sets
// are carried over untouched.
func (p Property) WithStatus(status string) Property {
	next := p.Clone()
	next.Status = status
	return next
}
