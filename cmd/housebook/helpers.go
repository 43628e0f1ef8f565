// Shared helpers for housebook CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fairmont-labs/housebook/internal/engine"
	"github.com/fairmont-labs/housebook/internal/sqlite"
	"github.com/fairmont-labs/housebook/pkg/types"
)

// session ties one command to the snapshot store: the books are loaded
// on open, mutated through the engine, and persisted back only when the
// command succeeds.
type session struct {
	store  *sqlite.Store
	engine *engine.Engine
}

// openSession resolves the data directory, opens the snapshot store,
// and loads both books.
func openSession() (*session, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	contacts, properties, err := store.Load()
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return &session{
		store:  store,
		engine: engine.New(contacts, properties),
	}, nil
}

// commit persists the books and closes the store. Call only after the
// command's core operation succeeded.
func (s *session) commit() error {
	if _, err := s.store.Save(s.engine.Contacts(), s.engine.Properties()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return s.store.Close()
}

// close releases the store without persisting.
func (s *session) close() {
	_ = s.store.Close()
}

// parseIDs converts repeated flag values into typed identifiers.
func parseIDs(values []string, kind types.Kind) ([]types.ID, error) {
	ids := make([]types.ID, 0, len(values))
	for _, v := range values {
		id, err := types.ParseID(v, kind)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// contactDoc is the JSON shape for a contact. Relationship sets render
// as sorted integer arrays.
type contactDoc struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	BudgetMin int64  `json:"budget_min,omitempty"`
	BudgetMax int64  `json:"budget_max,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status"`
	Buying    []int  `json:"buying"`
	Selling   []int  `json:"selling"`
}

type propertyDoc struct {
	ID        int    `json:"id"`
	Address   string `json:"address"`
	Postal    string `json:"postal,omitempty"`
	Price     int64  `json:"price"`
	Bedroom   int    `json:"bedroom,omitempty"`
	Bathroom  int    `json:"bathroom,omitempty"`
	FloorArea int    `json:"floor_area,omitempty"`
	Status    string `json:"status"`
	Type      string `json:"type,omitempty"`
	Owner     *int   `json:"owner,omitempty"`
	Buyers    []int  `json:"buyers"`
	Sellers   []int  `json:"sellers"`
}

func idValues(set types.IDSet) []int {
	ids := set.IDs()
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Value)
	}
	return out
}

func toContactDoc(c types.Contact) contactDoc {
	return contactDoc{
		ID:        c.ID.Value,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		BudgetMin: c.BudgetMin,
		BudgetMax: c.BudgetMax,
		Notes:     c.Notes,
		Status:    c.Status,
		Buying:    idValues(c.Buying),
		Selling:   idValues(c.Selling),
	}
}

func toPropertyDoc(p types.Property) propertyDoc {
	doc := propertyDoc{
		ID:        p.ID.Value,
		Address:   p.Address,
		Postal:    p.Postal,
		Price:     p.Price,
		Bedroom:   p.Bedroom,
		Bathroom:  p.Bathroom,
		FloorArea: p.FloorArea,
		Status:    p.Status,
		Type:      p.Type,
		Buyers:    idValues(p.Buyers),
		Sellers:   idValues(p.Sellers),
	}
	if p.Owner != nil {
		owner := p.Owner.Value
		doc.Owner = &owner
	}
	return doc
}

// printContacts renders contacts as text lines or JSON depending on the
// --json flag.
func printContacts(contacts []types.Contact) error {
	if flagJSON {
		docs := make([]contactDoc, 0, len(contacts))
		for _, c := range contacts {
			docs = append(docs, toContactDoc(c))
		}
		return printJSON(docs)
	}
	for _, c := range contacts {
		fmt.Println(formatContact(c))
	}
	return nil
}

func printProperties(properties []types.Property) error {
	if flagJSON {
		docs := make([]propertyDoc, 0, len(properties))
		for _, p := range properties {
			docs = append(docs, toPropertyDoc(p))
		}
		return printJSON(docs)
	}
	for _, p := range properties {
		fmt.Println(formatProperty(p))
	}
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func formatContact(c types.Contact) string {
	line := fmt.Sprintf("[%s] %s (phone %s, %s)", c.ID, c.Name, c.Phone, c.Status)
	if len(c.Buying) > 0 {
		line += fmt.Sprintf(" buying: %s", types.FormatIDs(c.Buying.IDs()))
	}
	if len(c.Selling) > 0 {
		line += fmt.Sprintf(" selling: %s", types.FormatIDs(c.Selling.IDs()))
	}
	return line
}

func formatProperty(p types.Property) string {
	line := fmt.Sprintf("[%s] %s, %s ($%d, %s)", p.ID, p.Address, p.Postal, p.Price, p.Status)
	if p.Owner != nil {
		line += fmt.Sprintf(" owner: %s", p.Owner)
	}
	if len(p.Buyers) > 0 {
		line += fmt.Sprintf(" buyers: %s", types.FormatIDs(p.Buyers.IDs()))
	}
	if len(p.Sellers) > 0 {
		line += fmt.Sprintf(" sellers: %s", types.FormatIDs(p.Sellers.IDs()))
	}
	return line
}
