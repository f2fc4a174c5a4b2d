package app_test

import (
	"context"
	"errors"
	"testing"

	"canteen/internal/app"
	"canteen/internal/domain"
)

func TestMenu_OnlyAvailable(t *testing.T) {
	var got domain.FoodFilter
	svc := app.NewFoodService(&mockFoodRepo{
		listFn: func(_ context.Context, f domain.FoodFilter) ([]domain.FoodItem, error) {
			got = f
			return nil, nil
		},
	})

	items, err := svc.Menu(context.Background(), domain.FoodFilter{IncludeUnavailable: true, SortBy: "bogus", Search: "dosa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty slice, got %v", items)
	}
	if got.IncludeUnavailable || got.SortBy != domain.SortByName || got.Search != "dosa" {
		t.Fatalf("unexpected filter passed to repo: %+v", got)
	}
}

func TestMenu_TrimsSearch(t *testing.T) {
	var got domain.FoodFilter
	svc := app.NewFoodService(&mockFoodRepo{
		listFn: func(_ context.Context, f domain.FoodFilter) ([]domain.FoodItem, error) {
			got = f
			return nil, nil
		},
	})

	if _, err := svc.Menu(context.Background(), domain.FoodFilter{Search: "  dosa \t"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Search != "dosa" {
		t.Fatalf("expected trimmed search, got %q", got.Search)
	}
}

func TestMenu_EmptyCalorieRange(t *testing.T) {
	svc := app.NewFoodService(&mockFoodRepo{
		listFn: func(context.Context, domain.FoodFilter) ([]domain.FoodItem, error) {
			t.Fatal("repo must not be queried for an empty range")
			return nil, nil
		},
	})
	items, err := svc.Menu(context.Background(), domain.FoodFilter{MinCalories: ptr(500), MaxCalories: ptr(100)})
	if err != nil || len(items) != 0 {
		t.Fatalf("got %v, %v", items, err)
	}
}

func TestCatalog_IncludesUnavailable(t *testing.T) {
	svc := app.NewFoodService(&mockFoodRepo{
		listFn: func(_ context.Context, f domain.FoodFilter) ([]domain.FoodItem, error) {
			if !f.IncludeUnavailable {
				t.Fatal("catalog must include unavailable items")
			}
			return []domain.FoodItem{{ID: 1}}, nil
		},
	})
	items, err := svc.Catalog(context.Background())
	if err != nil || len(items) != 1 {
		t.Fatalf("got %v, %v", items, err)
	}
}

func TestCreateFood(t *testing.T) {
	tests := []struct {
		name    string
		in      domain.FoodPatch
		wantErr bool
	}{
		{"complete", domain.FoodPatch{Name: ptr("Upma"), Calories: ptr(200), Protein: ptr(5.0), Carbs: ptr(35.0), Fats: ptr(5.0)}, false},
		{"zero values are allowed", domain.FoodPatch{Name: ptr("Water"), Calories: ptr(0), Protein: ptr(0.0), Carbs: ptr(0.0), Fats: ptr(0.0)}, false},
		{"missing name", domain.FoodPatch{Calories: ptr(200), Protein: ptr(5.0), Carbs: ptr(35.0), Fats: ptr(5.0)}, true},
		{"missing fats", domain.FoodPatch{Name: ptr("Upma"), Calories: ptr(200), Protein: ptr(5.0), Carbs: ptr(35.0)}, true},
		{"negative calories", domain.FoodPatch{Name: ptr("Upma"), Calories: ptr(-1), Protein: ptr(5.0), Carbs: ptr(35.0), Fats: ptr(5.0)}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := app.NewFoodService(&mockFoodRepo{
				createFn: func(_ context.Context, f *domain.FoodItem) (int64, error) {
					if !f.IsAvailable || f.IsVeg {
						t.Fatalf("unexpected defaults: %+v", f)
					}
					return 11, nil
				},
			})
			item, err := svc.Create(context.Background(), tc.in)
			if tc.wantErr {
				if !domain.IsValidation(err) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.ID != 11 {
				t.Fatalf("id = %d; want 11", item.ID)
			}
		})
	}
}

func TestUpdateFood(t *testing.T) {
	var saved *domain.FoodItem
	svc := app.NewFoodService(&mockFoodRepo{
		updateFn: func(_ context.Context, f *domain.FoodItem) error {
			saved = f
			return nil
		},
	})
	item, err := svc.Update(context.Background(), 3, domain.FoodPatch{IsAvailable: ptr(false)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != item || item.IsAvailable || item.Name != "Poha" {
		t.Fatalf("unexpected item: %+v", item)
	}

	missing := app.NewFoodService(&mockFoodRepo{
		byIDFn: func(context.Context, int64) (*domain.FoodItem, error) { return nil, nil },
	})
	if _, err := missing.Update(context.Background(), 3, domain.FoodPatch{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteFood_NotFound(t *testing.T) {
	svc := app.NewFoodService(&mockFoodRepo{
		deleteFn: func(context.Context, int64) (bool, error) { return false, nil },
	})
	if err := svc.Delete(context.Background(), 99); !errors.Is(err, app.ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}
}
