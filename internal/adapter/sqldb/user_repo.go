package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"canteen/internal/domain"
)

const userColumns = "id, email, password_hash, name, height, weight, age, gender, activity_level, daily_calorie_goal, is_admin"

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.HeightCm, &u.WeightKg,
		&u.Age, &u.Gender, &u.ActivityLevel, &u.DailyCalorieGoal, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserByEmail retrieves a user by normalized email.
func (d *DB) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(d.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1;", domain.NormalizeEmail(email)))
}

// UserByID retrieves a user by ID.
func (d *DB) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(d.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1;", id))
}

// CreateUser inserts u and returns the stored copy. A taken email yields an
// error wrapping domain.ErrConflict.
func (d *DB) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	out, err := scanUser(d.sql.QueryRowContext(ctx,
		"INSERT INTO users (email, password_hash, name, height, weight, age, gender, activity_level, daily_calorie_goal, is_admin) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING "+userColumns+";",
		domain.NormalizeEmail(u.Email), u.PasswordHash, u.Name, u.HeightCm, u.WeightKg,
		u.Age, string(u.Gender), string(u.ActivityLevel), u.DailyCalorieGoal, u.IsAdmin,
	))
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("email %s: %w", u.Email, domain.ErrConflict)
	}
	return out, err
}

// UpdateUser stores the profile fields of u.
func (d *DB) UpdateUser(ctx context.Context, u *domain.User) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE users SET name=$1, height=$2, weight=$3, age=$4, gender=$5, activity_level=$6, daily_calorie_goal=$7 WHERE id=$8;",
		u.Name, u.HeightCm, u.WeightKg, u.Age, string(u.Gender), string(u.ActivityLevel), u.DailyCalorieGoal, u.ID,
	)
	return err
}
