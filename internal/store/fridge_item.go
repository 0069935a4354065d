package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dukerupert/larder/internal/model"
)

type FridgeStore struct {
	db *sql.DB
}

func NewFridgeStore(db *sql.DB) *FridgeStore {
	return &FridgeStore{db: db}
}

func scanFridgeItem(scanner interface{ Scan(...any) error }) (*model.FridgeItem, error) {
	var fi model.FridgeItem
	var itemID sql.NullString
	var expiresAt sql.NullTime
	var isUsed int

	err := scanner.Scan(
		&fi.ID, &fi.HouseholdID, &itemID, &fi.Name, &fi.Category,
		&fi.Quantity, &fi.InitialQuantity, &fi.Unit, &fi.Location,
		&fi.PurchasePrice, &fi.PurchaseDate, &expiresAt, &isUsed,
		&fi.PercentWasted, &fi.CreatedAt, &fi.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if itemID.Valid {
		fi.ItemID = itemID.String
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		fi.ExpiresAt = &t
	}
	fi.IsUsed = isUsed != 0
	return &fi, nil
}

const fridgeItemCols = `id, household_id, item_id, name, category, quantity, initial_quantity, unit, location, purchase_price, purchase_date, expires_at, is_used, percent_wasted, created_at, updated_at`

// Create stores a new batch. InitialQuantity is pinned to the quantity at
// acquisition so consumption-progress ratios stay meaningful.
func (s *FridgeStore) Create(fi model.FridgeItem) (*model.FridgeItem, error) {
	if fi.ID == "" {
		fi.ID = uuid.NewString()
	}
	var itemID sql.NullString
	if fi.ItemID != "" {
		itemID = sql.NullString{String: fi.ItemID, Valid: true}
	}
	var expiresAt sql.NullTime
	if fi.ExpiresAt != nil {
		expiresAt = sql.NullTime{Time: *fi.ExpiresAt, Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO fridge_items (id, household_id, item_id, name, category, quantity, initial_quantity, unit, location, purchase_price, purchase_date, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fi.ID, fi.HouseholdID, itemID, fi.Name, fi.Category,
		fi.Quantity, fi.Quantity, fi.Unit, fi.Location,
		fi.PurchasePrice, fi.PurchaseDate, expiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert fridge item: %w", err)
	}
	return s.GetByID(fi.ID)
}

func (s *FridgeStore) GetByID(id string) (*model.FridgeItem, error) {
	row := s.db.QueryRow(`SELECT `+fridgeItemCols+` FROM fridge_items WHERE id = ?`, id)
	fi, err := scanFridgeItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get fridge item: %w", err)
	}
	return fi, nil
}

// ListActive returns the household's current stock, excluding depleted
// batches.
func (s *FridgeStore) ListActive(householdID string) ([]model.FridgeItem, error) {
	rows, err := s.db.Query(
		`SELECT `+fridgeItemCols+` FROM fridge_items WHERE household_id = ? AND is_used = 0 ORDER BY created_at ASC`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("list fridge items: %w", err)
	}
	defer rows.Close()

	var items []model.FridgeItem
	for rows.Next() {
		fi, err := scanFridgeItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fridge item: %w", err)
		}
		items = append(items, *fi)
	}
	return items, rows.Err()
}

// Save persists the mutable fields of a fridge item (quantity, unit,
// expiry, depletion state, waste attribution).
func (s *FridgeStore) Save(fi model.FridgeItem) (*model.FridgeItem, error) {
	var expiresAt sql.NullTime
	if fi.ExpiresAt != nil {
		expiresAt = sql.NullTime{Time: *fi.ExpiresAt, Valid: true}
	}
	isUsed := 0
	if fi.IsUsed {
		isUsed = 1
	}

	_, err := s.db.Exec(
		`UPDATE fridge_items
		 SET quantity = ?, unit = ?, expires_at = ?, is_used = ?, percent_wasted = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		fi.Quantity, fi.Unit, expiresAt, isUsed, fi.PercentWasted, fi.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update fridge item: %w", err)
	}
	return s.GetByID(fi.ID)
}

func (s *FridgeStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM fridge_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete fridge item: %w", err)
	}
	return nil
}
