package app

import (
	"context"
	"errors"
	"fmt"

	"canteen/internal/domain"
)

var (
	// ErrFavoriteNotFound is returned when removing a pair that does not exist.
	ErrFavoriteNotFound = fmt.Errorf("favorite %w", domain.ErrNotFound)
	// ErrFavoriteExists is returned when adding a pair twice.
	ErrFavoriteExists = fmt.Errorf("favorite %w", domain.ErrConflict)
)

// FavoriteService manages a user's set of favorite foods.
type FavoriteService struct {
	favorites domain.FavoriteRepository
	foods     domain.FoodRepository
}

// NewFavoriteService creates a FavoriteService.
func NewFavoriteService(favorites domain.FavoriteRepository, foods domain.FoodRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, foods: foods}
}

// List returns the user's favorites ordered by food name.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]domain.FavoriteFood, error) {
	items, err := s.favorites.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.FavoriteFood{}
	}
	return items, nil
}

// Add marks foodID as favorite. Adding an existing pair fails with
// ErrFavoriteExists.
func (s *FavoriteService) Add(ctx context.Context, userID, foodID int64) (*domain.FavoriteFood, error) {
	food, err := s.foods.FoodByID(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}
	id, err := s.favorites.AddFavorite(ctx, userID, foodID)
	if errors.Is(err, domain.ErrConflict) {
		return nil, ErrFavoriteExists
	}
	if err != nil {
		return nil, err
	}
	return &domain.FavoriteFood{FoodItem: *food, FavoriteID: id}, nil
}

// Remove unmarks foodID.
func (s *FavoriteService) Remove(ctx context.Context, userID, foodID int64) error {
	ok, err := s.favorites.RemoveFavorite(ctx, userID, foodID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFavoriteNotFound
	}
	return nil
}

// IsFavorite reports whether foodID is in the user's set.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, foodID int64) (bool, error) {
	return s.favorites.IsFavorite(ctx, userID, foodID)
}
