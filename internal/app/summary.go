package app

import (
	"math"

	"canteen/internal/domain"
)

// Totals are summed nutrients over a set of intake entries.
type Totals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// SumEntries multiplies each entry's food facts by its quantity and sums them.
func SumEntries(entries []domain.IntakeEntry) Totals {
	var t Totals
	for _, e := range entries {
		q := float64(e.Quantity)
		t.Calories += e.Calories * e.Quantity
		t.Protein += e.Protein * q
		t.Carbs += e.Carbs * q
		t.Fats += e.Fats * q
	}
	return t
}

// Nutrients are macro totals rounded to one decimal place.
type Nutrients struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// TodaySummary compares one day's consumption with the calorie goal.
type TodaySummary struct {
	Date       string    `json:"date"`
	Goal       int       `json:"goal"`
	Consumed   int       `json:"consumed"`
	Remaining  int       `json:"remaining"`
	Percentage int       `json:"percentage"`
	Exceeded   bool      `json:"exceeded"`
	Nutrients  Nutrients `json:"nutrients"`
}

// Summarize builds the goal comparison for day. A goal <= 0 yields
// percentage 0 and remaining 0; exceeded is always consumed > goal.
func Summarize(day string, goal int, t Totals) TodaySummary {
	return TodaySummary{
		Date:       day,
		Goal:       goal,
		Consumed:   t.Calories,
		Remaining:  Remaining(goal, t.Calories),
		Percentage: Percentage(goal, t.Calories),
		Exceeded:   t.Calories > goal,
		Nutrients: Nutrients{
			Protein: round1(t.Protein),
			Carbs:   round1(t.Carbs),
			Fats:    round1(t.Fats),
		},
	}
}

// Remaining returns max(0, goal-consumed).
func Remaining(goal, consumed int) int {
	if goal <= 0 || consumed >= goal {
		return 0
	}
	return goal - consumed
}

// Percentage returns min(100, round(consumed/goal*100)), or 0 without a goal.
func Percentage(goal, consumed int) int {
	if goal <= 0 {
		return 0
	}
	p := int(math.Round(float64(consumed) / float64(goal) * 100))
	return min(p, 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
