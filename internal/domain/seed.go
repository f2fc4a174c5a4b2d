package domain

import "context"

// Seeder loads the initial catalog and admin account in one transaction.
// Foods are inserted only into an empty catalog and admin only when no
// administrator exists. It reports how many rows of each were written.
type Seeder interface {
	Seed(ctx context.Context, foods []FoodItem, admin *User) (foodsAdded int, adminAdded bool, err error)
}
