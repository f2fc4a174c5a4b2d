package domain_test

import (
	"testing"

	"canteen/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func sampleMenu() []domain.FoodItem {
	return []domain.FoodItem{
		{ID: 1, Name: "Veg Thali", Calories: 450, Protein: 15, IsVeg: true, IsAvailable: true},
		{ID: 2, Name: "Poha", Calories: 180, Protein: 4, IsVeg: true, IsAvailable: true},
		{ID: 3, Name: "Chicken Roll", Calories: 420, Protein: 22, IsVeg: false, IsAvailable: true},
		{ID: 4, Name: "Masala Chai", Calories: 90, Protein: 2, IsVeg: true, IsAvailable: true},
		{ID: 5, Name: "Buttermilk", Calories: 60, Protein: 2, IsVeg: true, IsAvailable: false},
	}
}

func filterNames(items []domain.FoodItem, f domain.FoodFilter) []string {
	var out []domain.FoodItem
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	domain.SortFoods(out, f.SortBy)
	names := make([]string, len(out))
	for i, it := range out {
		names[i] = it.Name
	}
	return names
}

func TestFoodFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.FoodFilter
		want   []string
	}{
		{"no filter hides unavailable", domain.FoodFilter{}, []string{"Chicken Roll", "Masala Chai", "Poha", "Veg Thali"}},
		{"include unavailable", domain.FoodFilter{IncludeUnavailable: true}, []string{"Buttermilk", "Chicken Roll", "Masala Chai", "Poha", "Veg Thali"}},
		{"veg and max calories", domain.FoodFilter{IsVeg: ptr(true), MaxCalories: ptr(250)}, []string{"Masala Chai", "Poha"}},
		{"non veg", domain.FoodFilter{IsVeg: ptr(false)}, []string{"Chicken Roll"}},
		{"search is case insensitive", domain.FoodFilter{Search: "CHAI"}, []string{"Masala Chai"}},
		{"high protein inclusive", domain.FoodFilter{HighProtein: true}, []string{"Chicken Roll", "Veg Thali"}},
		{"calorie range", domain.FoodFilter{MinCalories: ptr(100), MaxCalories: ptr(420)}, []string{"Chicken Roll", "Poha"}},
		{"calories asc", domain.FoodFilter{SortBy: domain.SortByCaloriesAsc}, []string{"Masala Chai", "Poha", "Chicken Roll", "Veg Thali"}},
		{"calories desc", domain.FoodFilter{SortBy: domain.SortByCaloriesDesc}, []string{"Veg Thali", "Chicken Roll", "Poha", "Masala Chai"}},
		{"protein desc", domain.FoodFilter{SortBy: domain.SortByProteinDesc}, []string{"Chicken Roll", "Veg Thali", "Poha", "Masala Chai"}},
		{"unknown sort falls back to name", domain.FoodFilter{SortBy: "random"}, []string{"Chicken Roll", "Masala Chai", "Poha", "Veg Thali"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := filterNames(sampleMenu(), tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v; want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v; want %v", got, tc.want)
				}
			}
		})
	}
}

func TestFoodPatch_Apply(t *testing.T) {
	item := domain.FoodItem{Name: "Poha", Calories: 180, Protein: 4, Carbs: 32, Fats: 4, IsVeg: true, IsAvailable: true}

	if err := (domain.FoodPatch{Calories: ptr(200), IsAvailable: ptr(false)}).Apply(&item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Calories != 200 || item.IsAvailable || item.Name != "Poha" || item.Protein != 4 {
		t.Fatalf("patch applied incorrectly: %+v", item)
	}

	err := (domain.FoodPatch{Fats: ptr(-1.0)}).Apply(&item)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
