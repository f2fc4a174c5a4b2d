package domain

import "math"

var activityMultipliers = map[ActivityLevel]float64{
	ActivityLow:    1.2,
	ActivityMedium: 1.55,
	ActivityHigh:   1.9,
}

// EstimateBMR returns the Mifflin-St Jeor basal metabolic rate in kcal,
// rounded to the nearest integer. Weight is in kg and height in cm.
func EstimateBMR(weightKg, heightCm float64, age int, g Gender) int {
	s := -161.0
	if g == GenderMale {
		s = 5
	}
	return int(math.Round(10*weightKg + 6.25*heightCm - 5*float64(age) + s))
}

// EstimateDailyCalories returns the total daily energy expenditure: BMR
// scaled by the activity multiplier and rounded. Unknown levels use the
// medium multiplier.
func EstimateDailyCalories(weightKg, heightCm float64, age int, g Gender, a ActivityLevel) int {
	m, ok := activityMultipliers[a]
	if !ok {
		m = activityMultipliers[ActivityMedium]
	}
	return int(math.Round(float64(EstimateBMR(weightKg, heightCm, age, g)) * m))
}
