package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dukerupert/larder/internal/model"
)

type ItemStore struct {
	db *sql.DB
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

func scanCatalogItem(scanner interface{ Scan(...any) error }) (*model.Item, error) {
	var it model.Item
	err := scanner.Scan(&it.ID, &it.Name, &it.Category, &it.DefaultUnit, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

const catalogItemCols = `id, name, category, default_unit, created_at`

func (s *ItemStore) Create(name, category, defaultUnit string) (*model.Item, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO items (id, name, category, default_unit) VALUES (?, ?, ?, ?)`,
		id, name, category, defaultUnit,
	)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return s.GetByID(id)
}

func (s *ItemStore) GetByID(id string) (*model.Item, error) {
	row := s.db.QueryRow(`SELECT `+catalogItemCols+` FROM items WHERE id = ?`, id)
	it, err := scanCatalogItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// Search returns catalog items whose name contains the query,
// case-insensitively, for autocomplete.
func (s *ItemStore) Search(query string, limit int) ([]model.Item, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT `+catalogItemCols+` FROM items WHERE name LIKE ? COLLATE NOCASE ORDER BY name ASC LIMIT ?`,
		"%"+query+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		it, err := scanCatalogItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}
