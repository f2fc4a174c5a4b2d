package sqldb

import (
	"context"
	"fmt"

	"canteen/internal/domain"
)

// Seed loads foods into an empty catalog and creates admin when no
// administrator exists, in one transaction.
func (d *DB) Seed(ctx context.Context, foods []domain.FoodItem, admin *domain.User) (int, bool, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, err
	}
	defer tx.Rollback() //nolint:errcheck

	added := 0
	if len(foods) > 0 {
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM food_items;").Scan(&count); err != nil {
			return 0, false, fmt.Errorf("seed: count food_items: %w", err)
		}
		if count == 0 {
			for i := range foods {
				if _, err := createFood(ctx, tx, &foods[i]); err != nil {
					return 0, false, fmt.Errorf("seed: insert %q: %w", foods[i].Name, err)
				}
				added++
			}
		}
	}

	adminAdded := false
	if admin != nil {
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM users WHERE is_admin = TRUE;").Scan(&count); err != nil {
			return 0, false, fmt.Errorf("seed: count admins: %w", err)
		}
		if count == 0 {
			res, err := tx.ExecContext(ctx,
				"INSERT INTO users (email, password_hash, name, height, weight, age, gender, activity_level, daily_calorie_goal, is_admin) "+
					"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE) ON CONFLICT (email) DO NOTHING;",
				domain.NormalizeEmail(admin.Email), admin.PasswordHash, admin.Name, admin.HeightCm, admin.WeightKg,
				admin.Age, string(admin.Gender), string(admin.ActivityLevel), admin.DailyCalorieGoal,
			)
			if adminAdded, err = affected(res, err); err != nil {
				return 0, false, fmt.Errorf("seed: insert admin: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, false, err
	}
	return added, adminAdded, nil
}
