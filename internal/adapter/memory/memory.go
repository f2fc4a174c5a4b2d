// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"canteen/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu        sync.Mutex
	users     []*domain.User
	foods     []domain.FoodItem
	intake    []domain.IntakeRecord
	favorites []favorite

	userIDCounter     int64
	foodIDCounter     int64
	intakeIDCounter   int64
	favoriteIDCounter int64
}

type favorite struct {
	id, userID, foodID int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.FoodRepository = (*DB)(nil)
var _ domain.IntakeRepository = (*DB)(nil)
var _ domain.FavoriteRepository = (*DB)(nil)
var _ domain.Seeder = (*DB)(nil)

// --- UserRepository ---

// CreateUser stores a copy of u with a fresh ID.
func (db *DB) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.createUserLocked(u)
}

func (db *DB) createUserLocked(u *domain.User) (*domain.User, error) {
	email := domain.NormalizeEmail(u.Email)
	if db.userByEmailLocked(email) != nil {
		return nil, fmt.Errorf("email %s: %w", email, domain.ErrConflict)
	}
	db.userIDCounter++
	stored := *u
	stored.ID = db.userIDCounter
	stored.Email = email
	db.users = append(db.users, &stored)
	out := stored
	return &out, nil
}

func (db *DB) userByEmailLocked(email string) *domain.User {
	for _, u := range db.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// UserByEmail retrieves a user by email.
func (db *DB) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if u := db.userByEmailLocked(domain.NormalizeEmail(email)); u != nil {
		out := *u
		return &out, nil
	}
	return nil, nil
}

// UserByID retrieves a user by ID.
func (db *DB) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, u := range db.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

// UpdateUser stores the profile fields of u.
func (db *DB) UpdateUser(ctx context.Context, u *domain.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, stored := range db.users {
		if stored.ID == u.ID {
			stored.Name = u.Name
			stored.HeightCm = u.HeightCm
			stored.WeightKg = u.WeightKg
			stored.Age = u.Age
			stored.Gender = u.Gender
			stored.ActivityLevel = u.ActivityLevel
			stored.DailyCalorieGoal = u.DailyCalorieGoal
			return nil
		}
	}
	return nil
}

// --- FoodRepository ---

// ListFoods returns the items matching f.
func (db *DB) ListFoods(ctx context.Context, f domain.FoodFilter) ([]domain.FoodItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]domain.FoodItem, 0, len(db.foods))
	for _, item := range db.foods {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	domain.SortFoods(out, f.SortBy)
	return out, nil
}

// FoodByID retrieves an item by ID.
func (db *DB) FoodByID(ctx context.Context, id int64) (*domain.FoodItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if i := db.foodIndexLocked(id); i >= 0 {
		out := db.foods[i]
		return &out, nil
	}
	return nil, nil
}

func (db *DB) foodIndexLocked(id int64) int {
	for i, item := range db.foods {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// CreateFood stores f and returns its ID.
func (db *DB) CreateFood(ctx context.Context, f *domain.FoodItem) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.createFoodLocked(f), nil
}

func (db *DB) createFoodLocked(f *domain.FoodItem) int64 {
	db.foodIDCounter++
	item := *f
	item.ID = db.foodIDCounter
	db.foods = append(db.foods, item)
	return item.ID
}

// UpdateFood replaces the stored item with f.
func (db *DB) UpdateFood(ctx context.Context, f *domain.FoodItem) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if i := db.foodIndexLocked(f.ID); i >= 0 {
		db.foods[i] = *f
	}
	return nil
}

// DeleteFood removes an item together with its intake records and favorites.
func (db *DB) DeleteFood(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	i := db.foodIndexLocked(id)
	if i < 0 {
		return false, nil
	}
	db.foods = append(db.foods[:i], db.foods[i+1:]...)

	intake := db.intake[:0]
	for _, r := range db.intake {
		if r.FoodID != id {
			intake = append(intake, r)
		}
	}
	db.intake = intake

	favs := db.favorites[:0]
	for _, f := range db.favorites {
		if f.foodID != id {
			favs = append(favs, f)
		}
	}
	db.favorites = favs
	return true, nil
}

// --- IntakeRepository ---

// AddIntake stores a record and returns its ID.
func (db *DB) AddIntake(ctx context.Context, userID, foodID int64, quantity int, day string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.intakeIDCounter++
	db.intake = append(db.intake, domain.IntakeRecord{
		ID:       db.intakeIDCounter,
		UserID:   userID,
		FoodID:   foodID,
		Quantity: quantity,
		Date:     day,
	})
	return db.intakeIDCounter, nil
}

func (db *DB) intakeIndexLocked(userID, id int64) int {
	for i, r := range db.intake {
		if r.ID == id && r.UserID == userID {
			return i
		}
	}
	return -1
}

// IntakeByID retrieves one of the user's records.
func (db *DB) IntakeByID(ctx context.Context, userID, id int64) (*domain.IntakeRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if i := db.intakeIndexLocked(userID, id); i >= 0 {
		out := db.intake[i]
		return &out, nil
	}
	return nil, nil
}

// ListIntakeForDay returns the user's records of day, newest first.
func (db *DB) ListIntakeForDay(ctx context.Context, userID int64, day string) ([]domain.IntakeEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]domain.IntakeEntry, 0)
	for i := len(db.intake) - 1; i >= 0; i-- {
		r := db.intake[i]
		if r.UserID != userID || r.Date != day {
			continue
		}
		fi := db.foodIndexLocked(r.FoodID)
		if fi < 0 {
			continue
		}
		f := db.foods[fi]
		out = append(out, domain.IntakeEntry{
			IntakeRecord: r,
			FoodFacts: domain.FoodFacts{
				Name: f.Name, Calories: f.Calories, Protein: f.Protein,
				Carbs: f.Carbs, Fats: f.Fats, IsVeg: f.IsVeg,
			},
		})
	}
	return out, nil
}

// DailyTotalsBetween groups the user's records by day, newest first.
func (db *DB) DailyTotalsBetween(ctx context.Context, userID int64, from, to string) ([]domain.DayTotals, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	byDay := make(map[string]*domain.DayTotals)
	for _, r := range db.intake {
		if r.UserID != userID || r.Date < from || r.Date > to {
			continue
		}
		fi := db.foodIndexLocked(r.FoodID)
		if fi < 0 {
			continue
		}
		f := db.foods[fi]
		t, ok := byDay[r.Date]
		if !ok {
			t = &domain.DayTotals{Date: r.Date}
			byDay[r.Date] = t
		}
		q := float64(r.Quantity)
		t.Calories += f.Calories * r.Quantity
		t.Protein += f.Protein * q
		t.Carbs += f.Carbs * q
		t.Fats += f.Fats * q
	}

	out := make([]domain.DayTotals, 0, len(byDay))
	for _, t := range byDay {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// UpdateIntakeQuantity changes the quantity of one of the user's records.
func (db *DB) UpdateIntakeQuantity(ctx context.Context, userID, id int64, quantity int) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	i := db.intakeIndexLocked(userID, id)
	if i < 0 {
		return false, nil
	}
	db.intake[i].Quantity = quantity
	return true, nil
}

// DeleteIntake removes one of the user's records.
func (db *DB) DeleteIntake(ctx context.Context, userID, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	i := db.intakeIndexLocked(userID, id)
	if i < 0 {
		return false, nil
	}
	db.intake = append(db.intake[:i], db.intake[i+1:]...)
	return true, nil
}

// --- FavoriteRepository ---

// ListFavorites returns the user's favorite foods ordered by name.
func (db *DB) ListFavorites(ctx context.Context, userID int64) ([]domain.FavoriteFood, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]domain.FavoriteFood, 0)
	for _, f := range db.favorites {
		if f.userID != userID {
			continue
		}
		if fi := db.foodIndexLocked(f.foodID); fi >= 0 {
			out = append(out, domain.FavoriteFood{FoodItem: db.foods[fi], FavoriteID: f.id})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// AddFavorite stores the (userID, foodID) pair.
func (db *DB) AddFavorite(ctx context.Context, userID, foodID int64) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, f := range db.favorites {
		if f.userID == userID && f.foodID == foodID {
			return 0, fmt.Errorf("favorite %d/%d: %w", userID, foodID, domain.ErrConflict)
		}
	}
	db.favoriteIDCounter++
	db.favorites = append(db.favorites, favorite{id: db.favoriteIDCounter, userID: userID, foodID: foodID})
	return db.favoriteIDCounter, nil
}

// RemoveFavorite deletes the (userID, foodID) pair.
func (db *DB) RemoveFavorite(ctx context.Context, userID, foodID int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, f := range db.favorites {
		if f.userID == userID && f.foodID == foodID {
			db.favorites = append(db.favorites[:i], db.favorites[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// IsFavorite reports whether the pair exists.
func (db *DB) IsFavorite(ctx context.Context, userID, foodID int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, f := range db.favorites {
		if f.userID == userID && f.foodID == foodID {
			return true, nil
		}
	}
	return false, nil
}

// --- Seeder ---

// Seed loads foods into an empty catalog and creates admin when no
// administrator exists.
func (db *DB) Seed(ctx context.Context, foods []domain.FoodItem, admin *domain.User) (int, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	added := 0
	if len(db.foods) == 0 {
		for i := range foods {
			db.createFoodLocked(&foods[i])
			added++
		}
	}

	if admin == nil {
		return added, false, nil
	}
	for _, u := range db.users {
		if u.IsAdmin {
			return added, false, nil
		}
	}
	if db.userByEmailLocked(domain.NormalizeEmail(admin.Email)) != nil {
		return added, false, nil
	}
	a := *admin
	a.IsAdmin = true
	if _, err := db.createUserLocked(&a); err != nil {
		return 0, false, err
	}
	return added, true, nil
}
