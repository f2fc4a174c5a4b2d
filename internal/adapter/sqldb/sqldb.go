// Package sqldb implements the domain repositories on database/sql for
// PostgreSQL and SQLite.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"canteen/internal/domain"
)

// Supported driver names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql    *sql.DB
	driver string
}

var (
	_ domain.UserRepository     = (*DB)(nil)
	_ domain.FoodRepository     = (*DB)(nil)
	_ domain.IntakeRepository   = (*DB)(nil)
	_ domain.FavoriteRepository = (*DB)(nil)
	_ domain.Seeder             = (*DB)(nil)
)

// Open connects to the database, pings, and runs migrations.
func Open(driver, dsn string) (*DB, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("sqldb: unsupported driver %q", driver)
	}
	s, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// A single connection serialises writers and keeps :memory:
		// databases alive for the lifetime of the pool.
		s.SetMaxOpenConns(1)
	} else {
		s.SetMaxOpenConns(10)
		s.SetMaxIdleConns(5)
		s.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s, driver: driver}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Ping reports whether the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := postgresSchema
	if d.driver == DriverSQLite {
		stmts = sqliteSchema
		if _, err := d.sql.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
			return fmt.Errorf("migrate: enable foreign keys: %w", err)
		}
	}
	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	for _, stmt := range indexes {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

var postgresSchema = []string{
	"CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, email TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, name TEXT NOT NULL, height DOUBLE PRECISION NOT NULL DEFAULT 170, weight DOUBLE PRECISION NOT NULL DEFAULT 70, age INTEGER NOT NULL DEFAULT 25, gender TEXT NOT NULL DEFAULT 'male', activity_level TEXT NOT NULL DEFAULT 'medium', daily_calorie_goal INTEGER NOT NULL DEFAULT 2000, is_admin BOOLEAN NOT NULL DEFAULT FALSE, created_at TIMESTAMPTZ NOT NULL DEFAULT NOW());",
	"CREATE TABLE IF NOT EXISTS food_items (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL, calories INTEGER NOT NULL CHECK(calories >= 0), protein DOUBLE PRECISION NOT NULL CHECK(protein >= 0), carbs DOUBLE PRECISION NOT NULL CHECK(carbs >= 0), fats DOUBLE PRECISION NOT NULL CHECK(fats >= 0), is_veg BOOLEAN NOT NULL DEFAULT FALSE, is_available BOOLEAN NOT NULL DEFAULT TRUE, created_at TIMESTAMPTZ NOT NULL DEFAULT NOW());",
	"CREATE TABLE IF NOT EXISTS intake_records (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, food_id BIGINT NOT NULL REFERENCES food_items(id) ON DELETE CASCADE, quantity INTEGER NOT NULL CHECK(quantity >= 1), date TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL DEFAULT NOW());",
	"CREATE TABLE IF NOT EXISTS favorites (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, food_id BIGINT NOT NULL REFERENCES food_items(id) ON DELETE CASCADE, created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(), UNIQUE(user_id, food_id));",
}

var sqliteSchema = []string{
	"CREATE TABLE IF NOT EXISTS users (id INTEGER PRIMARY KEY AUTOINCREMENT, email TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, name TEXT NOT NULL, height REAL NOT NULL DEFAULT 170, weight REAL NOT NULL DEFAULT 70, age INTEGER NOT NULL DEFAULT 25, gender TEXT NOT NULL DEFAULT 'male', activity_level TEXT NOT NULL DEFAULT 'medium', daily_calorie_goal INTEGER NOT NULL DEFAULT 2000, is_admin BOOLEAN NOT NULL DEFAULT FALSE, created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP);",
	"CREATE TABLE IF NOT EXISTS food_items (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL, calories INTEGER NOT NULL CHECK(calories >= 0), protein REAL NOT NULL CHECK(protein >= 0), carbs REAL NOT NULL CHECK(carbs >= 0), fats REAL NOT NULL CHECK(fats >= 0), is_veg BOOLEAN NOT NULL DEFAULT FALSE, is_available BOOLEAN NOT NULL DEFAULT TRUE, created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP);",
	"CREATE TABLE IF NOT EXISTS intake_records (id INTEGER PRIMARY KEY AUTOINCREMENT, user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE, food_id INTEGER NOT NULL REFERENCES food_items(id) ON DELETE CASCADE, quantity INTEGER NOT NULL CHECK(quantity >= 1), date TEXT NOT NULL, created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP);",
	"CREATE TABLE IF NOT EXISTS favorites (id INTEGER PRIMARY KEY AUTOINCREMENT, user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE, food_id INTEGER NOT NULL REFERENCES food_items(id) ON DELETE CASCADE, created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP, UNIQUE(user_id, food_id));",
}

var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_intake_records_user_date ON intake_records(user_id, date);",
	"CREATE INDEX IF NOT EXISTS idx_favorites_user_id ON favorites(user_id);",
}

// isUniqueViolation reports whether err was raised by a UNIQUE constraint.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

// affected converts a result into "did a row change".
func affected(res sql.Result, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// querier is satisfied by *sql.DB and *sql.Tx; it lets Seed reuse createFood
// inside its transaction.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
