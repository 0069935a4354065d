package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/larder/internal/model"
)

type GroceryStore struct {
	db *sql.DB
}

func NewGroceryStore(db *sql.DB) *GroceryStore {
	return &GroceryStore{db: db}
}

func scanGroceryEntry(scanner interface{ Scan(...any) error }) (*model.GroceryEntry, error) {
	var e model.GroceryEntry
	var itemID sql.NullString
	var checked, purchased int

	err := scanner.Scan(
		&e.ID, &e.HouseholdID, &itemID, &e.Name, &e.Quantity, &e.Unit,
		&e.Category, &checked, &purchased, &e.FromRecipe, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if itemID.Valid {
		e.ItemID = itemID.String
	}
	e.Checked = checked != 0
	e.Purchased = purchased != 0
	return &e, nil
}

const groceryEntryCols = `id, household_id, item_id, name, quantity, unit, category, checked, purchased, from_recipe, created_at`

func (s *GroceryStore) Create(e model.GroceryEntry) (*model.GroceryEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	var itemID sql.NullString
	if e.ItemID != "" {
		itemID = sql.NullString{String: e.ItemID, Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO grocery_entries (id, household_id, item_id, name, quantity, unit, category, checked, purchased, from_recipe)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.HouseholdID, itemID, e.Name, e.Quantity, e.Unit,
		e.Category, boolToInt(e.Checked), boolToInt(e.Purchased), e.FromRecipe,
	)
	if err != nil {
		return nil, fmt.Errorf("insert grocery entry: %w", err)
	}
	return s.GetByID(e.ID)
}

func (s *GroceryStore) GetByID(id string) (*model.GroceryEntry, error) {
	row := s.db.QueryRow(`SELECT `+groceryEntryCols+` FROM grocery_entries WHERE id = ?`, id)
	e, err := scanGroceryEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get grocery entry: %w", err)
	}
	return e, nil
}

// List returns the household's entries in creation order, which is the
// first-seen order the deduplicator preserves.
func (s *GroceryStore) List(householdID string) ([]model.GroceryEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+groceryEntryCols+` FROM grocery_entries WHERE household_id = ? ORDER BY created_at ASC, id ASC`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("list grocery entries: %w", err)
	}
	defer rows.Close()

	var entries []model.GroceryEntry
	for rows.Next() {
		e, err := scanGroceryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan grocery entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (s *GroceryStore) Update(e model.GroceryEntry) (*model.GroceryEntry, error) {
	var itemID sql.NullString
	if e.ItemID != "" {
		itemID = sql.NullString{String: e.ItemID, Valid: true}
	}

	_, err := s.db.Exec(
		`UPDATE grocery_entries
		 SET item_id = ?, name = ?, quantity = ?, unit = ?, category = ?, checked = ?, purchased = ?
		 WHERE id = ?`,
		itemID, e.Name, e.Quantity, e.Unit, e.Category,
		boolToInt(e.Checked), boolToInt(e.Purchased), e.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update grocery entry: %w", err)
	}
	return s.GetByID(e.ID)
}

func (s *GroceryStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM grocery_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete grocery entry: %w", err)
	}
	return nil
}

// Replace swaps the household's whole list for the given entries in one
// transaction. Used to persist a deduplicated list.
func (s *GroceryStore) Replace(householdID string, entries []model.GroceryEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM grocery_entries WHERE household_id = ?`, householdID); err != nil {
		return fmt.Errorf("clear grocery entries: %w", err)
	}

	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now().UTC()
		}
		var itemID sql.NullString
		if e.ItemID != "" {
			itemID = sql.NullString{String: e.ItemID, Valid: true}
		}
		// Carrying created_at over keeps first-seen order stable across
		// the replace.
		_, err := tx.Exec(
			`INSERT INTO grocery_entries (id, household_id, item_id, name, quantity, unit, category, checked, purchased, from_recipe, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, householdID, itemID, e.Name, e.Quantity, e.Unit,
			e.Category, boolToInt(e.Checked), boolToInt(e.Purchased), e.FromRecipe, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert grocery entry: %w", err)
		}
	}

	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
