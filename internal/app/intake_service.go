package app

import (
	"context"
	"fmt"
	"time"

	"canteen/internal/domain"
)

// History window bounds in days.
const (
	DefaultHistoryDays = 30
	MaxHistoryDays     = 366
)

// ErrIntakeNotFound is returned for absent records and records of other users.
var ErrIntakeNotFound = fmt.Errorf("intake record %w", domain.ErrNotFound)

// DailyIntake lists one day's entries with their totals.
type DailyIntake struct {
	Date    string               `json:"date"`
	Intakes []domain.IntakeEntry `json:"intakes"`
	Totals  Totals               `json:"totals"`
}

// HistoryDay is the aggregate of one day that has at least one record.
type HistoryDay struct {
	Date          string  `json:"date"`
	TotalCalories int     `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`
	Goal          int     `json:"goal"`
	Exceeded      bool    `json:"exceeded"`
}

// History is a sparse, newest-first series of daily aggregates.
type History struct {
	Days    int          `json:"days"`
	Goal    int          `json:"goal"`
	History []HistoryDay `json:"history"`
}

// IntakeService encapsulates intake logging and aggregation use cases.
type IntakeService struct {
	intake domain.IntakeRepository
	foods  domain.FoodRepository
	users  domain.UserRepository
	now    func() time.Time
}

// NewIntakeService creates an IntakeService backed by the given repositories.
func NewIntakeService(intake domain.IntakeRepository, foods domain.FoodRepository, users domain.UserRepository) *IntakeService {
	return &IntakeService{intake: intake, foods: foods, users: users, now: time.Now}
}

// WithClock replaces the source of "today".
func (s *IntakeService) WithClock(now func() time.Time) *IntakeService {
	s.now = now
	return s
}

// Today returns the current server-local day.
func (s *IntakeService) Today() string {
	return domain.LocalDay(s.now())
}

// Log records quantity servings of foodID on day, or today when day is empty.
func (s *IntakeService) Log(ctx context.Context, userID, foodID int64, quantity int, day string) (*domain.IntakeEntry, error) {
	if quantity < 1 {
		return nil, domain.Invalid("quantity must be >= 1")
	}
	if day == "" {
		day = s.Today()
	} else if _, err := domain.ParseDay(day); err != nil {
		return nil, err
	}

	food, err := s.foods.FoodByID(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}

	id, err := s.intake.AddIntake(ctx, userID, foodID, quantity, day)
	if err != nil {
		return nil, err
	}
	return &domain.IntakeEntry{
		IntakeRecord: domain.IntakeRecord{ID: id, UserID: userID, FoodID: foodID, Quantity: quantity, Date: day},
		FoodFacts:    factsOf(food),
	}, nil
}

// Daily returns the entries and totals of day, or of today when day is empty.
func (s *IntakeService) Daily(ctx context.Context, userID int64, day string) (*DailyIntake, error) {
	if day == "" {
		day = s.Today()
	} else if _, err := domain.ParseDay(day); err != nil {
		return nil, err
	}

	entries, err := s.intake.ListIntakeForDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.IntakeEntry{}
	}
	return &DailyIntake{Date: day, Intakes: entries, Totals: SumEntries(entries)}, nil
}

// TodaySummary compares today's consumption with the user's goal.
func (s *IntakeService) TodaySummary(ctx context.Context, userID int64) (*TodaySummary, error) {
	goal, err := s.goal(ctx, userID)
	if err != nil {
		return nil, err
	}
	daily, err := s.Daily(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	sum := Summarize(daily.Date, goal, daily.Totals)
	return &sum, nil
}

// History aggregates the last days calendar days, today included.
func (s *IntakeService) History(ctx context.Context, userID int64, days int) (*History, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	days = min(days, MaxHistoryDays)

	goal, err := s.goal(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(time.Local)
	to := now.Format(domain.DayLayout)
	from := now.AddDate(0, 0, -(days - 1)).Format(domain.DayLayout)

	totals, err := s.intake.DailyTotalsBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]HistoryDay, 0, len(totals))
	for _, t := range totals {
		out = append(out, HistoryDay{
			Date:          t.Date,
			TotalCalories: t.Calories,
			TotalProtein:  t.Protein,
			TotalCarbs:    t.Carbs,
			TotalFats:     t.Fats,
			Goal:          goal,
			Exceeded:      t.Calories > goal,
		})
	}
	return &History{Days: days, Goal: goal, History: out}, nil
}

// UpdateQuantity changes the quantity of one of the user's records.
func (s *IntakeService) UpdateQuantity(ctx context.Context, userID, id int64, quantity int) error {
	if quantity < 1 {
		return domain.Invalid("quantity must be >= 1")
	}
	if err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	ok, err := s.intake.UpdateIntakeQuantity(ctx, userID, id, quantity)
	if err != nil {
		return err
	}
	if !ok {
		return ErrIntakeNotFound
	}
	return nil
}

// Delete removes one of the user's records.
func (s *IntakeService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	ok, err := s.intake.DeleteIntake(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrIntakeNotFound
	}
	return nil
}

// owned fails with ErrIntakeNotFound unless id exists and belongs to userID.
func (s *IntakeService) owned(ctx context.Context, userID, id int64) error {
	rec, err := s.intake.IntakeByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if rec == nil || rec.UserID != userID {
		return ErrIntakeNotFound
	}
	return nil
}

func (s *IntakeService) goal(ctx context.Context, userID int64) (int, error) {
	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.DailyCalorieGoal, nil
}

func factsOf(f *domain.FoodItem) domain.FoodFacts {
	return domain.FoodFacts{
		Name:     f.Name,
		Calories: f.Calories,
		Protein:  f.Protein,
		Carbs:    f.Carbs,
		Fats:     f.Fats,
		IsVeg:    f.IsVeg,
	}
}
