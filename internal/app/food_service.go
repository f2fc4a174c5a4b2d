package app

import (
	"context"
	"fmt"
	"strings"

	"canteen/internal/domain"
)

// ErrFoodNotFound is returned when a catalog item does not exist.
var ErrFoodNotFound = fmt.Errorf("food item %w", domain.ErrNotFound)

// FoodService encapsulates catalog browsing and administration.
type FoodService struct {
	repo domain.FoodRepository
}

// NewFoodService creates a FoodService backed by the given repository.
func NewFoodService(repo domain.FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

// Menu returns the available items matching f.
func (s *FoodService) Menu(ctx context.Context, f domain.FoodFilter) ([]domain.FoodItem, error) {
	f.IncludeUnavailable = false
	f.Search = strings.TrimSpace(f.Search)
	f.SortBy = f.SortBy.Normalize()
	if f.MinCalories != nil && f.MaxCalories != nil && *f.MinCalories > *f.MaxCalories {
		return []domain.FoodItem{}, nil
	}
	return s.list(ctx, f)
}

// Catalog returns every item, available or not, by name.
func (s *FoodService) Catalog(ctx context.Context) ([]domain.FoodItem, error) {
	return s.list(ctx, domain.FoodFilter{IncludeUnavailable: true, SortBy: domain.SortByName})
}

// Get returns a single item.
func (s *FoodService) Get(ctx context.Context, id int64) (*domain.FoodItem, error) {
	item, err := s.repo.FoodByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrFoodNotFound
	}
	return item, nil
}

// Create adds an item. Name and all nutrient values are required; isVeg
// defaults to false and isAvailable to true.
func (s *FoodService) Create(ctx context.Context, in domain.FoodPatch) (*domain.FoodItem, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" || in.Calories == nil ||
		in.Protein == nil || in.Carbs == nil || in.Fats == nil {
		return nil, domain.Invalid("name, calories, protein, carbs and fats are required")
	}
	item := &domain.FoodItem{IsAvailable: true}
	if err := in.Apply(item); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateFood(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

// Update applies a partial update to an existing item.
func (s *FoodService) Update(ctx context.Context, id int64, patch domain.FoodPatch) (*domain.FoodItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(item); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFood(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item together with its intake and favorite records.
func (s *FoodService) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.DeleteFood(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFoodNotFound
	}
	return nil
}

func (s *FoodService) list(ctx context.Context, f domain.FoodFilter) ([]domain.FoodItem, error) {
	items, err := s.repo.ListFoods(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.FoodItem{}
	}
	return items, nil
}
