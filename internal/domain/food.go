package domain

import (
	"context"
	"sort"
	"strings"
)

// HighProteinGrams is the protein threshold of the high-protein filter.
const HighProteinGrams = 15.0

// FoodItem is a catalog entry. Nutrient values are per serving.
type FoodItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	IsVeg       bool    `json:"isVeg"`
	IsAvailable bool    `json:"isAvailable"`
}

// Validate checks the catalog invariants of f.
func (f *FoodItem) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return Invalid("name is required")
	}
	if f.Calories < 0 {
		return Invalid("calories must be >= 0")
	}
	if f.Protein < 0 || f.Carbs < 0 || f.Fats < 0 {
		return Invalid("protein, carbs and fats must be >= 0")
	}
	return nil
}

// FoodPatch carries the optional fields of a catalog update.
type FoodPatch struct {
	Name        *string  `json:"name"`
	Calories    *int     `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fats        *float64 `json:"fats"`
	IsVeg       *bool    `json:"isVeg"`
	IsAvailable *bool    `json:"isAvailable"`
}

// Apply copies the set fields onto f and re-validates the result.
func (p FoodPatch) Apply(f *FoodItem) error {
	if p.Name != nil {
		f.Name = strings.TrimSpace(*p.Name)
	}
	if p.Calories != nil {
		f.Calories = *p.Calories
	}
	if p.Protein != nil {
		f.Protein = *p.Protein
	}
	if p.Carbs != nil {
		f.Carbs = *p.Carbs
	}
	if p.Fats != nil {
		f.Fats = *p.Fats
	}
	if p.IsVeg != nil {
		f.IsVeg = *p.IsVeg
	}
	if p.IsAvailable != nil {
		f.IsAvailable = *p.IsAvailable
	}
	return f.Validate()
}

// SortKey orders a catalog listing.
type SortKey string

const (
	SortByName         SortKey = "name"
	SortByCaloriesAsc  SortKey = "calories_asc"
	SortByCaloriesDesc SortKey = "calories_desc"
	SortByProteinDesc  SortKey = "protein_desc"
)

// Normalize maps unknown keys to SortByName.
func (k SortKey) Normalize() SortKey {
	switch k {
	case SortByCaloriesAsc, SortByCaloriesDesc, SortByProteinDesc:
		return k
	default:
		return SortByName
	}
}

// FoodFilter describes a catalog query. Zero values impose no constraint,
// and all set constraints must hold.
type FoodFilter struct {
	Search             string
	IsVeg              *bool
	HighProtein        bool
	MinCalories        *int
	MaxCalories        *int
	SortBy             SortKey
	IncludeUnavailable bool
}

// Match reports whether item satisfies every constraint of f.
func (f FoodFilter) Match(item FoodItem) bool {
	if !f.IncludeUnavailable && !item.IsAvailable {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.IsVeg != nil && item.IsVeg != *f.IsVeg {
		return false
	}
	if f.HighProtein && item.Protein < HighProteinGrams {
		return false
	}
	if f.MinCalories != nil && item.Calories < *f.MinCalories {
		return false
	}
	if f.MaxCalories != nil && item.Calories > *f.MaxCalories {
		return false
	}
	return true
}

// SortFoods orders items in place by key. Ties keep name order.
func SortFoods(items []FoodItem, key SortKey) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch key.Normalize() {
		case SortByCaloriesAsc:
			if a.Calories != b.Calories {
				return a.Calories < b.Calories
			}
		case SortByCaloriesDesc:
			if a.Calories != b.Calories {
				return a.Calories > b.Calories
			}
		case SortByProteinDesc:
			if a.Protein != b.Protein {
				return a.Protein > b.Protein
			}
		}
		return a.Name < b.Name
	})
}

// FoodRepository is the port for catalog persistence.
// FoodByID returns (nil, nil) when no item matches.
type FoodRepository interface {
	ListFoods(ctx context.Context, f FoodFilter) ([]FoodItem, error)
	FoodByID(ctx context.Context, id int64) (*FoodItem, error)
	CreateFood(ctx context.Context, f *FoodItem) (int64, error)
	UpdateFood(ctx context.Context, f *FoodItem) error
	DeleteFood(ctx context.Context, id int64) (bool, error)
}
