package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"canteen/internal/domain"
)

const foodColumns = "id, name, calories, protein, carbs, fats, is_veg, is_available"

func scanFood(row interface{ Scan(...any) error }, f *domain.FoodItem) error {
	return row.Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fats, &f.IsVeg, &f.IsAvailable)
}

var foodOrder = map[domain.SortKey]string{
	domain.SortByName:         "name ASC",
	domain.SortByCaloriesAsc:  "calories ASC, name ASC",
	domain.SortByCaloriesDesc: "calories DESC, name ASC",
	domain.SortByProteinDesc:  "protein DESC, name ASC",
}

// likeEscaper makes a search term match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// foodQuery renders f as a SELECT with positional arguments.
func foodQuery(f domain.FoodFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !f.IncludeUnavailable {
		where = append(where, "is_available = TRUE")
	}
	if f.Search != "" {
		where = append(where, "LOWER(name) LIKE "+arg("%"+likeEscaper.Replace(strings.ToLower(f.Search))+"%")+" ESCAPE '\\'")
	}
	if f.IsVeg != nil {
		where = append(where, "is_veg = "+arg(*f.IsVeg))
	}
	if f.HighProtein {
		where = append(where, "protein >= "+arg(domain.HighProteinGrams))
	}
	if f.MinCalories != nil {
		where = append(where, "calories >= "+arg(*f.MinCalories))
	}
	if f.MaxCalories != nil {
		where = append(where, "calories <= "+arg(*f.MaxCalories))
	}

	var b strings.Builder
	b.WriteString("SELECT " + foodColumns + " FROM food_items")
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY " + foodOrder[f.SortBy.Normalize()] + ", id ASC;")
	return b.String(), args
}

// ListFoods returns the catalog items matching f.
func (d *DB) ListFoods(ctx context.Context, f domain.FoodFilter) ([]domain.FoodItem, error) {
	query, args := foodQuery(f)
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.FoodItem, 0)
	for rows.Next() {
		var item domain.FoodItem
		if err := scanFood(rows, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// FoodByID retrieves a catalog item by ID.
func (d *DB) FoodByID(ctx context.Context, id int64) (*domain.FoodItem, error) {
	var item domain.FoodItem
	err := scanFood(d.sql.QueryRowContext(ctx,
		"SELECT "+foodColumns+" FROM food_items WHERE id = $1;", id), &item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateFood inserts f and returns its ID.
func (d *DB) CreateFood(ctx context.Context, f *domain.FoodItem) (int64, error) {
	return createFood(ctx, d.sql, f)
}

func createFood(ctx context.Context, q querier, f *domain.FoodItem) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx,
		"INSERT INTO food_items (name, calories, protein, carbs, fats, is_veg, is_available) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;",
		f.Name, f.Calories, f.Protein, f.Carbs, f.Fats, f.IsVeg, f.IsAvailable,
	).Scan(&id)
	return id, err
}

// UpdateFood stores every field of f.
func (d *DB) UpdateFood(ctx context.Context, f *domain.FoodItem) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE food_items SET name=$1, calories=$2, protein=$3, carbs=$4, fats=$5, is_veg=$6, is_available=$7 WHERE id=$8;",
		f.Name, f.Calories, f.Protein, f.Carbs, f.Fats, f.IsVeg, f.IsAvailable, f.ID,
	)
	return err
}

// DeleteFood removes an item. Intake records and favorites referencing it
// are removed by the ON DELETE CASCADE constraints.
func (d *DB) DeleteFood(ctx context.Context, id int64) (bool, error) {
	return affected(d.sql.ExecContext(ctx, "DELETE FROM food_items WHERE id=$1;", id))
}
