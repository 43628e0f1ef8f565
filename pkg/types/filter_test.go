package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64p(v int64) *int64 { return &v }
func intp(v int) *int       { return &v }

func testContact() Contact {
	c := NewContact(MustID(1, KindContact), "Alice Pauline", "94351253")
	c.Email = "alice@example.com"
	c.Address = "123 Jurong West Ave 6"
	c.BudgetMin = 100000
	c.BudgetMax = 500000
	c.Notes = "prefers quiet neighborhoods"
	return c
}

func TestContactFilterEmptyMatchesEverything(t *testing.T) {
	assert.True(t, ContactFilter{}.Match(testContact()))
}

func TestContactFilterOrSemantics(t *testing.T) {
	c := testContact()

	tests := []struct {
		name   string
		filter ContactFilter
		want   bool
	}{
		{
			name:   "single matching field",
			filter: ContactFilter{Names: []string{"alice"}},
			want:   true,
		},
		{
			name:   "substring match on address",
			filter: ContactFilter{Addresses: []string{"jurong"}},
			want:   true,
		},
		{
			name: "name matches, budget does not: OR still includes",
			filter: ContactFilter{
				Names:     []string{"alice"},
				BudgetMin: int64p(900000),
			},
			want: true,
		},
		{
			name: "budget matches, name does not: OR still includes",
			filter: ContactFilter{
				Names:     []string{"zachary"},
				BudgetMin: int64p(50000),
			},
			want: true,
		},
		{
			name: "no supplied field matches",
			filter: ContactFilter{
				Names:  []string{"zachary"},
				Phones: []string{"0000"},
			},
			want: false,
		},
		{
			name:   "status exact match",
			filter: ContactFilter{Statuses: []string{"ACTIVE"}},
			want:   true,
		},
		{
			name:   "status substring does not match",
			filter: ContactFilter{Statuses: []string{"act"}},
			want:   false,
		},
		{
			name:   "budget max inclusive bound",
			filter: ContactFilter{BudgetMax: int64p(500000)},
			want:   true,
		},
		{
			name:   "budget max below contact maximum",
			filter: ContactFilter{BudgetMax: int64p(400000)},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(c))
		})
	}
}

func TestPropertyFilterOrSemantics(t *testing.T) {
	p := NewProperty(MustID(1, KindProperty), "123 Clementi Ave", "120300", 500000)
	p.Type = "condo"
	p.Bedroom = 3
	p.Bathroom = 2
	p.FloorArea = 110
	owner := MustID(42, KindContact)
	p.Owner = &owner

	tests := []struct {
		name   string
		filter PropertyFilter
		want   bool
	}{
		{name: "empty matches everything", filter: PropertyFilter{}, want: true},
		{name: "address substring", filter: PropertyFilter{Addresses: []string{"clementi"}}, want: true},
		{name: "type exact-ish substring", filter: PropertyFilter{Types: []string{"condo"}}, want: true},
		{name: "bedroom exact", filter: PropertyFilter{Bedrooms: []int{3}}, want: true},
		{name: "bedroom mismatch alone", filter: PropertyFilter{Bedrooms: []int{5}}, want: false},
		{
			name:   "bedroom mismatch but price matches: OR includes",
			filter: PropertyFilter{Bedrooms: []int{5}, PriceMax: int64p(600000)},
			want:   true,
		},
		{name: "owner id in range", filter: PropertyFilter{OwnerMin: intp(40), OwnerMax: intp(50)}, want: true},
		{name: "owner id out of range", filter: PropertyFilter{OwnerMin: intp(43)}, want: false},
		{name: "status exact", filter: PropertyFilter{Statuses: []string{"available"}}, want: true},
		{name: "no field matches", filter: PropertyFilter{Postals: []string{"999"}, Bathrooms: []int{9}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(p))
		})
	}
}

func TestPropertyFilterOwnerNilNeverMatchesOwnerRange(t *testing.T) {
	p := NewProperty(MustID(1, KindProperty), "123 Clementi Ave", "120300", 500000)
	assert.False(t, PropertyFilter{OwnerMin: intp(1)}.Match(p))
}
