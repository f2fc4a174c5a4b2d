package sqldb

import (
	"context"
	"fmt"

	"canteen/internal/domain"
)

// ListFavorites returns the user's favorite foods ordered by name.
func (d *DB) ListFavorites(ctx context.Context, userID int64) ([]domain.FavoriteFood, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT f.id, f.name, f.calories, f.protein, f.carbs, f.fats, f.is_veg, f.is_available, fav.id "+
			"FROM favorites fav JOIN food_items f ON f.id = fav.food_id "+
			"WHERE fav.user_id = $1 ORDER BY f.name ASC, f.id ASC;",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.FavoriteFood, 0)
	for rows.Next() {
		var fav domain.FavoriteFood
		if err := rows.Scan(&fav.ID, &fav.Name, &fav.Calories, &fav.Protein, &fav.Carbs, &fav.Fats,
			&fav.IsVeg, &fav.IsAvailable, &fav.FavoriteID); err != nil {
			return nil, err
		}
		out = append(out, fav)
	}
	return out, rows.Err()
}

// AddFavorite inserts the (userID, foodID) pair.
func (d *DB) AddFavorite(ctx context.Context, userID, foodID int64) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO favorites (user_id, food_id) VALUES ($1, $2) RETURNING id;", userID, foodID,
	).Scan(&id)
	if isUniqueViolation(err) {
		return 0, fmt.Errorf("favorite %d/%d: %w", userID, foodID, domain.ErrConflict)
	}
	return id, err
}

// RemoveFavorite deletes the (userID, foodID) pair.
func (d *DB) RemoveFavorite(ctx context.Context, userID, foodID int64) (bool, error) {
	return affected(d.sql.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND food_id = $2;", userID, foodID))
}

// IsFavorite reports whether the pair exists.
func (d *DB) IsFavorite(ctx context.Context, userID, foodID int64) (bool, error) {
	var n int
	err := d.sql.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM favorites WHERE user_id = $1 AND food_id = $2;", userID, foodID,
	).Scan(&n)
	return n > 0, err
}
