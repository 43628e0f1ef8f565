// Package sqlite implements the snapshot persistence sink for the
// housebook collections. The CLI invokes Save only after a command
// completes successfully; the core never touches the store
// mid-operation. Load refuses a snapshot whose links are asymmetric or
// dangling rather than admitting corrupt state into the books.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "embed"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fairmont-labs/housebook/internal/book"
	"github.com/fairmont-labs/housebook/internal/engine"
	"github.com/fairmont-labs/housebook/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// DatabaseFile is the snapshot file name inside the data directory.
const DatabaseFile = "housebook.db"

// Store persists and restores snapshots of both books.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens the snapshot
// database, and ensures the schema exists.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Save replaces the stored snapshot with the current contents of both
// books in a single transaction and records a revision row. Returns
// the revision id.
func (s *Store) Save(contacts *book.ContactBook, properties *book.PropertyBook) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"links", "contacts", "properties"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return "", fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for pos, c := range contacts.All() {
		_, err := tx.Exec(
			`INSERT INTO contacts
			 (contact_id, position, name, phone, email, address, budget_min, budget_max, notes, status)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID.Value, pos, c.Name, c.Phone, c.Email, c.Address,
			c.BudgetMin, c.BudgetMax, c.Notes, c.Status,
		)
		if err != nil {
			return "", fmt.Errorf("persisting contact %s: %w", c.ID, err)
		}
		if err := saveLinks(tx, c); err != nil {
			return "", err
		}
	}

	for pos, p := range properties.All() {
		var owner any
		if p.Owner != nil {
			owner = p.Owner.Value
		}
		_, err := tx.Exec(
			`INSERT INTO properties
			 (property_id, position, address, postal, price, bedroom, bathroom, floor_area, status, type, owner_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID.Value, pos, p.Address, p.Postal, p.Price,
			p.Bedroom, p.Bathroom, p.FloorArea, p.Status, p.Type, owner,
		)
		if err != nil {
			return "", fmt.Errorf("persisting property %s: %w", p.ID, err)
		}
	}

	revisionID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating revision id: %w", err)
	}
	_, err = tx.Exec(
		"INSERT INTO revisions (revision_id, saved_at) VALUES (?, ?)",
		revisionID.String(), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("recording revision: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing snapshot: %w", err)
	}
	return revisionID.String(), nil
}

// saveLinks writes one row per buyer/seller membership of the contact.
// The property-side sets are reconstructed from these rows on load, so
// only the contact side is stored.
func saveLinks(tx *sql.Tx, c types.Contact) error {
	insert := func(propertyID types.ID, role types.Role) error {
		_, err := tx.Exec(
			"INSERT INTO links (contact_id, property_id, role) VALUES (?, ?, ?)",
			c.ID.Value, propertyID.Value, role.String(),
		)
		if err != nil {
			return fmt.Errorf("persisting %s link %s-%s: %w", role, c.ID, propertyID, err)
		}
		return nil
	}
	for _, pid := range c.Buying.IDs() {
		if err := insert(pid, types.RoleBuyer); err != nil {
			return err
		}
	}
	for _, pid := range c.Selling.IDs() {
		if err := insert(pid, types.RoleSeller); err != nil {
			return err
		}
	}
	return nil
}

// Load rebuilds both books from the stored snapshot, restoring
// insertion order and mirroring every link row onto both sides. The
// rebuilt books are audited for symmetry before being returned; a
// corrupt snapshot is an error, not a working state.
func (s *Store) Load() (*book.ContactBook, *book.PropertyBook, error) {
	contacts := book.NewContacts()
	properties := book.NewProperties()

	if err := s.loadContacts(contacts); err != nil {
		return nil, nil, err
	}
	if err := s.loadProperties(properties); err != nil {
		return nil, nil, err
	}
	if err := s.loadLinks(contacts, properties); err != nil {
		return nil, nil, err
	}

	if err := engine.New(contacts, properties).Check(); err != nil {
		return nil, nil, fmt.Errorf("snapshot failed consistency audit: %w", err)
	}
	return contacts, properties, nil
}

func (s *Store) loadContacts(contacts *book.ContactBook) error {
	rows, err := s.db.Query(
		`SELECT contact_id, name, phone, email, address, budget_min, budget_max, notes, status
		 FROM contacts ORDER BY position`,
	)
	if err != nil {
		return fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var idValue int
		var c types.Contact
		if err := rows.Scan(&idValue, &c.Name, &c.Phone, &c.Email, &c.Address,
			&c.BudgetMin, &c.BudgetMax, &c.Notes, &c.Status); err != nil {
			return fmt.Errorf("scanning contact: %w", err)
		}
		id, err := types.NewID(idValue, types.KindContact)
		if err != nil {
			return fmt.Errorf("stored contact id %d: %w", idValue, err)
		}
		c.ID = id
		c.Buying = types.NewIDSet()
		c.Selling = types.NewIDSet()
		if err := contacts.Add(c); err != nil {
			return fmt.Errorf("restoring contact %s: %w", id, err)
		}
	}
	return rows.Err()
}

func (s *Store) loadProperties(properties *book.PropertyBook) error {
	rows, err := s.db.Query(
		`SELECT property_id, address, postal, price, bedroom, bathroom, floor_area, status, type, owner_id
		 FROM properties ORDER BY position`,
	)
	if err != nil {
		return fmt.Errorf("querying properties: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var idValue int
		var ownerValue sql.NullInt64
		var p types.Property
		if err := rows.Scan(&idValue, &p.Address, &p.Postal, &p.Price, &p.Bedroom,
			&p.Bathroom, &p.FloorArea, &p.Status, &p.Type, &ownerValue); err != nil {
			return fmt.Errorf("scanning property: %w", err)
		}
		id, err := types.NewID(idValue, types.KindProperty)
		if err != nil {
			return fmt.Errorf("stored property id %d: %w", idValue, err)
		}
		p.ID = id
		p.Buyers = types.NewIDSet()
		p.Sellers = types.NewIDSet()
		if ownerValue.Valid {
			owner, err := types.NewID(int(ownerValue.Int64), types.KindContact)
			if err != nil {
				return fmt.Errorf("stored owner id %d: %w", ownerValue.Int64, err)
			}
			p.Owner = &owner
		}
		if err := properties.Add(p); err != nil {
			return fmt.Errorf("restoring property %s: %w", id, err)
		}
	}
	return rows.Err()
}

// loadLinks mirrors each stored link row onto both entity sides. The
// books are mutated in place through Replace, one record at a time.
func (s *Store) loadLinks(contacts *book.ContactBook, properties *book.PropertyBook) error {
	rows, err := s.db.Query("SELECT contact_id, property_id, role FROM links")
	if err != nil {
		return fmt.Errorf("querying links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var contactValue, propertyValue int
		var roleToken string
		if err := rows.Scan(&contactValue, &propertyValue, &roleToken); err != nil {
			return fmt.Errorf("scanning link: %w", err)
		}

		contactID, err := types.NewID(contactValue, types.KindContact)
		if err != nil {
			return fmt.Errorf("stored link contact id %d: %w", contactValue, err)
		}
		propertyID, err := types.NewID(propertyValue, types.KindProperty)
		if err != nil {
			return fmt.Errorf("stored link property id %d: %w", propertyValue, err)
		}
		role, err := types.ParseRole(roleToken)
		if err != nil {
			return fmt.Errorf("stored link role %q: %w", roleToken, err)
		}

		c, ok := contacts.Get(contactID)
		if !ok {
			return fmt.Errorf("link references missing contact %s", contactID)
		}
		p, ok := properties.Get(propertyID)
		if !ok {
			return fmt.Errorf("link references missing property %s", propertyID)
		}

		nextC := c.Clone()
		nextP := p.Clone()
		switch role {
		case types.RoleBuyer:
			nextC.Buying.Add(propertyID)
			nextP.Buyers.Add(contactID)
		case types.RoleSeller:
			nextC.Selling.Add(propertyID)
			nextP.Sellers.Add(contactID)
		default:
			return fmt.Errorf("stored link role %q not restorable", roleToken)
		}
		if err := contacts.Replace(c, nextC); err != nil {
			return fmt.Errorf("restoring link for contact %s: %w", contactID, err)
		}
		if err := properties.Replace(p, nextP); err != nil {
			return fmt.Errorf("restoring link for property %s: %w", propertyID, err)
		}
	}
	return rows.Err()
}

// Revisions returns the ids of recorded snapshots, most recent first.
func (s *Store) Revisions() ([]string, error) {
	rows, err := s.db.Query("SELECT revision_id FROM revisions ORDER BY saved_at DESC, revision_id DESC")
	if err != nil {
		return nil, fmt.Errorf("querying revisions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
