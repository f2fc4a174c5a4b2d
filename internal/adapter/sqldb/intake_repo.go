package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"canteen/internal/domain"
)

// AddIntake inserts a record and returns its ID.
func (d *DB) AddIntake(ctx context.Context, userID, foodID int64, quantity int, day string) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO intake_records (user_id, food_id, quantity, date) VALUES ($1, $2, $3, $4) RETURNING id;",
		userID, foodID, quantity, day,
	).Scan(&id)
	return id, err
}

// IntakeByID retrieves one of the user's records.
func (d *DB) IntakeByID(ctx context.Context, userID, id int64) (*domain.IntakeRecord, error) {
	var r domain.IntakeRecord
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, food_id, quantity, date FROM intake_records WHERE id = $1 AND user_id = $2;",
		id, userID,
	).Scan(&r.ID, &r.UserID, &r.FoodID, &r.Quantity, &r.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListIntakeForDay returns the user's records of day joined with their
// foods, newest first.
func (d *DB) ListIntakeForDay(ctx context.Context, userID int64, day string) ([]domain.IntakeEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT i.id, i.user_id, i.food_id, i.quantity, i.date, f.name, f.calories, f.protein, f.carbs, f.fats, f.is_veg "+
			"FROM intake_records i JOIN food_items f ON f.id = i.food_id "+
			"WHERE i.user_id = $1 AND i.date = $2 ORDER BY i.id DESC;",
		userID, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.IntakeEntry, 0)
	for rows.Next() {
		var e domain.IntakeEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.FoodID, &e.Quantity, &e.Date,
			&e.Name, &e.Calories, &e.Protein, &e.Carbs, &e.Fats, &e.IsVeg); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// DailyTotalsBetween sums quantity-weighted nutrients per day for
// from <= date <= to, newest day first.
func (d *DB) DailyTotalsBetween(ctx context.Context, userID int64, from, to string) ([]domain.DayTotals, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT i.date, SUM(f.calories * i.quantity), SUM(f.protein * i.quantity), SUM(f.carbs * i.quantity), SUM(f.fats * i.quantity) "+
			"FROM intake_records i JOIN food_items f ON f.id = i.food_id "+
			"WHERE i.user_id = $1 AND i.date >= $2 AND i.date <= $3 "+
			"GROUP BY i.date ORDER BY i.date DESC;",
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.DayTotals, 0)
	for rows.Next() {
		var (
			t        domain.DayTotals
			calories float64
		)
		if err := rows.Scan(&t.Date, &calories, &t.Protein, &t.Carbs, &t.Fats); err != nil {
			return nil, err
		}
		t.Calories = int(math.Round(calories))
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateIntakeQuantity changes the quantity of one of the user's records.
func (d *DB) UpdateIntakeQuantity(ctx context.Context, userID, id int64, quantity int) (bool, error) {
	return affected(d.sql.ExecContext(ctx,
		"UPDATE intake_records SET quantity = $1 WHERE id = $2 AND user_id = $3;", quantity, id, userID))
}

// DeleteIntake removes one of the user's records.
func (d *DB) DeleteIntake(ctx context.Context, userID, id int64) (bool, error) {
	return affected(d.sql.ExecContext(ctx,
		"DELETE FROM intake_records WHERE id = $1 AND user_id = $2;", id, userID))
}
