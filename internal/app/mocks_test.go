package app_test

import (
	"context"

	"canteen/internal/domain"
)

type mockUserRepo struct {
	createFn  func(ctx context.Context, u *domain.User) (*domain.User, error)
	byEmailFn func(ctx context.Context, email string) (*domain.User, error)
	byIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	updateFn  func(ctx context.Context, u *domain.User) error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	cp := *u
	cp.ID = 1
	return &cp, nil
}

func (m *mockUserRepo) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.byEmailFn != nil {
		return m.byEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.byIDFn != nil {
		return m.byIDFn(ctx, id)
	}
	u := domain.NewUser("user@example.com", "User", "")
	u.ID = id
	return u, nil
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, u *domain.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

type mockFoodRepo struct {
	listFn   func(ctx context.Context, f domain.FoodFilter) ([]domain.FoodItem, error)
	byIDFn   func(ctx context.Context, id int64) (*domain.FoodItem, error)
	createFn func(ctx context.Context, f *domain.FoodItem) (int64, error)
	updateFn func(ctx context.Context, f *domain.FoodItem) error
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockFoodRepo) ListFoods(ctx context.Context, f domain.FoodFilter) ([]domain.FoodItem, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return nil, nil
}

func (m *mockFoodRepo) FoodByID(ctx context.Context, id int64) (*domain.FoodItem, error) {
	if m.byIDFn != nil {
		return m.byIDFn(ctx, id)
	}
	return &domain.FoodItem{ID: id, Name: "Poha", Calories: 180, Protein: 4, Carbs: 32, Fats: 4, IsVeg: true, IsAvailable: true}, nil
}

func (m *mockFoodRepo) CreateFood(ctx context.Context, f *domain.FoodItem) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, f)
	}
	return 1, nil
}

func (m *mockFoodRepo) UpdateFood(ctx context.Context, f *domain.FoodItem) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, f)
	}
	return nil
}

func (m *mockFoodRepo) DeleteFood(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return true, nil
}

type mockIntakeRepo struct {
	addFn    func(ctx context.Context, userID, foodID int64, quantity int, day string) (int64, error)
	byIDFn   func(ctx context.Context, userID, id int64) (*domain.IntakeRecord, error)
	listFn   func(ctx context.Context, userID int64, day string) ([]domain.IntakeEntry, error)
	totalsFn func(ctx context.Context, userID int64, from, to string) ([]domain.DayTotals, error)
	updateFn func(ctx context.Context, userID, id int64, quantity int) (bool, error)
	deleteFn func(ctx context.Context, userID, id int64) (bool, error)
}

func (m *mockIntakeRepo) AddIntake(ctx context.Context, userID, foodID int64, quantity int, day string) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, foodID, quantity, day)
	}
	return 1, nil
}

func (m *mockIntakeRepo) IntakeByID(ctx context.Context, userID, id int64) (*domain.IntakeRecord, error) {
	if m.byIDFn != nil {
		return m.byIDFn(ctx, userID, id)
	}
	return nil, nil
}

func (m *mockIntakeRepo) ListIntakeForDay(ctx context.Context, userID int64, day string) ([]domain.IntakeEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, day)
	}
	return nil, nil
}

func (m *mockIntakeRepo) DailyTotalsBetween(ctx context.Context, userID int64, from, to string) ([]domain.DayTotals, error) {
	if m.totalsFn != nil {
		return m.totalsFn(ctx, userID, from, to)
	}
	return nil, nil
}

func (m *mockIntakeRepo) UpdateIntakeQuantity(ctx context.Context, userID, id int64, quantity int) (bool, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, id, quantity)
	}
	return true, nil
}

func (m *mockIntakeRepo) DeleteIntake(ctx context.Context, userID, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return true, nil
}

type mockFavoriteRepo struct {
	listFn   func(ctx context.Context, userID int64) ([]domain.FavoriteFood, error)
	addFn    func(ctx context.Context, userID, foodID int64) (int64, error)
	removeFn func(ctx context.Context, userID, foodID int64) (bool, error)
	isFn     func(ctx context.Context, userID, foodID int64) (bool, error)
}

func (m *mockFavoriteRepo) ListFavorites(ctx context.Context, userID int64) ([]domain.FavoriteFood, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFavoriteRepo) AddFavorite(ctx context.Context, userID, foodID int64) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, foodID)
	}
	return 1, nil
}

func (m *mockFavoriteRepo) RemoveFavorite(ctx context.Context, userID, foodID int64) (bool, error) {
	if m.removeFn != nil {
		return m.removeFn(ctx, userID, foodID)
	}
	return true, nil
}

func (m *mockFavoriteRepo) IsFavorite(ctx context.Context, userID, foodID int64) (bool, error) {
	if m.isFn != nil {
		return m.isFn(ctx, userID, foodID)
	}
	return false, nil
}

type mockSeeder struct {
	seedFn func(ctx context.Context, foods []domain.FoodItem, admin *domain.User) (int, bool, error)
}

func (m *mockSeeder) Seed(ctx context.Context, foods []domain.FoodItem, admin *domain.User) (int, bool, error) {
	if m.seedFn != nil {
		return m.seedFn(ctx, foods, admin)
	}
	return len(foods), admin != nil, nil
}

func ptr[T any](v T) *T { return &v }
