package domain_test

import (
	"math"
	"testing"

	"canteen/internal/domain"
)

func TestEstimateBMR(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		age    int
		gender domain.Gender
		want   int
	}{
		{"male reference", 70, 175, 25, domain.GenderMale, 1674},
		{"female reference", 60, 165, 30, domain.GenderFemale, 1320},
		{"rounds half up", 70, 170, 25, domain.GenderMale, 1643},
		{"unknown gender uses female constant", 60, 165, 30, domain.Gender("x"), 1320},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.EstimateBMR(tc.weight, tc.height, tc.age, tc.gender)
			if got != tc.want {
				t.Errorf("EstimateBMR(%v, %v, %d, %q) = %d; want %d",
					tc.weight, tc.height, tc.age, tc.gender, got, tc.want)
			}
		})
	}
}

func TestEstimateDailyCalories_MatchesFormula(t *testing.T) {
	bmr := math.Round(10*70 + 6.25*175 - 5*25 + 5)
	want := int(math.Round(bmr * 1.55))

	got := domain.EstimateDailyCalories(70, 175, 25, domain.GenderMale, domain.ActivityMedium)
	if got != want {
		t.Fatalf("EstimateDailyCalories = %d; want %d", got, want)
	}
	if got != 2595 {
		t.Fatalf("EstimateDailyCalories = %d; want 2595", got)
	}
}

func TestEstimateDailyCalories_Multipliers(t *testing.T) {
	bmr := float64(domain.EstimateBMR(80, 180, 40, domain.GenderMale))
	tests := []struct {
		level domain.ActivityLevel
		mult  float64
	}{
		{domain.ActivityLow, 1.2},
		{domain.ActivityMedium, 1.55},
		{domain.ActivityHigh, 1.9},
		{domain.ActivityLevel("extreme"), 1.55},
	}
	for _, tc := range tests {
		t.Run(string(tc.level), func(t *testing.T) {
			got := domain.EstimateDailyCalories(80, 180, 40, domain.GenderMale, tc.level)
			if want := int(math.Round(bmr * tc.mult)); got != want {
				t.Errorf("got %d; want %d", got, want)
			}
		})
	}
}
