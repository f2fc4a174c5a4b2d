package domain

import (
	"context"
	"time"
)

// DayLayout is the wire and storage format of calendar days.
const DayLayout = "2006-01-02"

// LocalDay formats t as a server-local calendar day.
func LocalDay(t time.Time) string {
	return t.In(time.Local).Format(DayLayout)
}

// ParseDay validates a YYYY-MM-DD string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.Local)
	if err != nil {
		return time.Time{}, Invalid("date must be YYYY-MM-DD")
	}
	return t, nil
}

// IntakeRecord is one logged consumption of a food item on a day.
type IntakeRecord struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	FoodID   int64  `json:"foodId"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}

// FoodFacts are the nutritional facts of the food an intake refers to.
type FoodFacts struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	IsVeg    bool    `json:"isVeg"`
}

// IntakeEntry is an intake record joined with its food's facts.
type IntakeEntry struct {
	IntakeRecord
	FoodFacts
}

// DayTotals holds the summed nutrients of one calendar day.
type DayTotals struct {
	Date     string
	Calories int
	Protein  float64
	Carbs    float64
	Fats     float64
}

// IntakeRepository is the port for the intake ledger. Every method is
// scoped to userID so that records of other users behave as absent.
type IntakeRepository interface {
	AddIntake(ctx context.Context, userID, foodID int64, quantity int, day string) (int64, error)
	IntakeByID(ctx context.Context, userID, id int64) (*IntakeRecord, error)
	ListIntakeForDay(ctx context.Context, userID int64, day string) ([]IntakeEntry, error)
	// DailyTotalsBetween groups records with from <= date <= to by date,
	// newest day first. Days without records are absent.
	DailyTotalsBetween(ctx context.Context, userID int64, from, to string) ([]DayTotals, error)
	UpdateIntakeQuantity(ctx context.Context, userID, id int64, quantity int) (bool, error)
	DeleteIntake(ctx context.Context, userID, id int64) (bool, error)
}
