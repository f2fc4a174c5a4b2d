package domain

import "context"

// FavoriteFood is a catalog item marked as favorite by a user.
type FavoriteFood struct {
	FoodItem
	FavoriteID int64 `json:"favoriteId"`
}

// FavoriteRepository is the port for favorites. AddFavorite returns an error
// wrapping ErrConflict when the pair already exists.
type FavoriteRepository interface {
	ListFavorites(ctx context.Context, userID int64) ([]FavoriteFood, error)
	AddFavorite(ctx context.Context, userID, foodID int64) (int64, error)
	RemoveFavorite(ctx context.Context, userID, foodID int64) (bool, error)
	IsFavorite(ctx context.Context, userID, foodID int64) (bool, error)
}
