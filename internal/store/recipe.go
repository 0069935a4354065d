package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dukerupert/larder/internal/model"
)

type RecipeStore struct {
	db *sql.DB
}

func NewRecipeStore(db *sql.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

func scanRecipe(scanner interface{ Scan(...any) error }) (*model.Recipe, error) {
	var r model.Recipe
	var isPublic int
	err := scanner.Scan(&r.ID, &r.HouseholdID, &r.Name, &r.Servings, &isPublic, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.IsPublic = isPublic != 0
	return &r, nil
}

const recipeCols = `id, household_id, name, servings, is_public, created_at, updated_at`

// Create stores a recipe with its ingredient list in one transaction.
func (s *RecipeStore) Create(r model.Recipe) (*model.Recipe, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin create recipe: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO recipes (id, household_id, name, servings, is_public) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.HouseholdID, r.Name, r.Servings, boolToInt(r.IsPublic),
	)
	if err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}

	if err := insertIngredients(tx, r.ID, r.Ingredients); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create recipe: %w", err)
	}
	return s.GetByID(r.ID)
}

func (s *RecipeStore) GetByID(id string) (*model.Recipe, error) {
	row := s.db.QueryRow(`SELECT `+recipeCols+` FROM recipes WHERE id = ?`, id)
	r, err := scanRecipe(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	ingredients, err := s.listIngredients(id)
	if err != nil {
		return nil, err
	}
	r.Ingredients = ingredients
	return r, nil
}

func (s *RecipeStore) List(householdID string) ([]model.Recipe, error) {
	rows, err := s.db.Query(
		`SELECT `+recipeCols+` FROM recipes WHERE household_id = ? ORDER BY name ASC`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range recipes {
		ingredients, err := s.listIngredients(recipes[i].ID)
		if err != nil {
			return nil, err
		}
		recipes[i].Ingredients = ingredients
	}
	return recipes, nil
}

// Update rewrites the recipe and replaces its ingredient list.
func (s *RecipeStore) Update(r model.Recipe) (*model.Recipe, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin update recipe: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`UPDATE recipes SET name = ?, servings = ?, is_public = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		r.Name, r.Servings, boolToInt(r.IsPublic), r.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM recipe_ingredients WHERE recipe_id = ?`, r.ID); err != nil {
		return nil, fmt.Errorf("clear ingredients: %w", err)
	}
	if err := insertIngredients(tx, r.ID, r.Ingredients); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update recipe: %w", err)
	}
	return s.GetByID(r.ID)
}

func (s *RecipeStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func insertIngredients(tx *sql.Tx, recipeID string, ingredients []model.Ingredient) error {
	for i, ing := range ingredients {
		var itemID sql.NullString
		if ing.ItemID != "" {
			itemID = sql.NullString{String: ing.ItemID, Valid: true}
		}
		unit := ing.Unit
		if unit == "" {
			unit = "unit"
		}
		_, err := tx.Exec(
			`INSERT INTO recipe_ingredients (recipe_id, item_id, name, quantity, unit, position) VALUES (?, ?, ?, ?, ?, ?)`,
			recipeID, itemID, ing.Name, ing.Quantity, unit, i,
		)
		if err != nil {
			return fmt.Errorf("insert ingredient: %w", err)
		}
	}
	return nil
}

func (s *RecipeStore) listIngredients(recipeID string) ([]model.Ingredient, error) {
	rows, err := s.db.Query(
		`SELECT id, recipe_id, item_id, name, quantity, unit, position
		 FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position ASC`,
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []model.Ingredient
	for rows.Next() {
		var ing model.Ingredient
		var itemID sql.NullString
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &itemID, &ing.Name, &ing.Quantity, &ing.Unit, &ing.Position); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		if itemID.Valid {
			ing.ItemID = itemID.String
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}
