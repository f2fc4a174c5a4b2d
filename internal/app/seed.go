package app

import (
	"context"
	"fmt"
	"log"

	"canteen/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// DemoFoods is the starter canteen menu.
func DemoFoods() []domain.FoodItem {
	type row struct {
		name                 string
		kcal                 int
		protein, carbs, fats float64
		veg                  bool
	}
	rows := []row{
		{"Veg Thali", 450, 15, 60, 18, true},
		{"Samosa (2pc)", 260, 5, 28, 14, true},
		{"Paneer Roll", 380, 12, 35, 22, true},
		{"Masala Dosa", 300, 6, 45, 10, true},
		{"Chole Bhature", 520, 14, 58, 26, true},
		{"Idli Sambhar (3pc)", 210, 6, 38, 4, true},
		{"Grilled Sandwich", 280, 10, 32, 12, true},
		{"Veg Biryani", 420, 10, 55, 18, true},
		{"Aloo Paratha", 350, 8, 42, 16, true},
		{"Pav Bhaji", 380, 9, 48, 16, true},
		{"Dal Rice", 320, 12, 50, 8, true},
		{"Poha", 180, 4, 32, 4, true},
		{"Upma", 200, 5, 35, 5, true},
		{"Egg Biryani", 480, 18, 55, 20, false},
		{"Chicken Roll", 420, 22, 38, 20, false},
		{"Egg Curry with Rice", 450, 16, 52, 18, false},
		{"Chicken Sandwich", 350, 20, 30, 15, false},
		{"Cold Coffee", 190, 5, 28, 6, true},
		{"Fresh Lime Soda", 80, 0, 20, 0, true},
		{"Mango Lassi", 220, 6, 35, 6, true},
		{"Masala Chai", 90, 2, 14, 3, true},
		{"Buttermilk", 60, 2, 8, 2, true},
		{"French Fries", 320, 4, 40, 16, true},
		{"Veg Momos (6pc)", 250, 6, 35, 10, true},
		{"Spring Roll (2pc)", 220, 4, 28, 10, true},
		{"Bread Pakora", 280, 6, 32, 14, true},
	}
	out := make([]domain.FoodItem, len(rows))
	for i, r := range rows {
		out[i] = domain.FoodItem{
			Name: r.name, Calories: r.kcal, Protein: r.protein, Carbs: r.carbs, Fats: r.fats,
			IsVeg: r.veg, IsAvailable: true,
		}
	}
	return out
}

// BootstrapOptions selects what Bootstrap seeds.
type BootstrapOptions struct {
	DemoMenu      bool
	AdminEmail    string
	AdminPassword string
}

// Bootstrap seeds the demo menu and the administrator account in a single
// transaction. Existing data is left untouched.
func Bootstrap(ctx context.Context, seeder domain.Seeder, opts BootstrapOptions) error {
	var foods []domain.FoodItem
	if opts.DemoMenu {
		foods = DemoFoods()
	}

	var admin *domain.User
	if opts.AdminEmail != "" && opts.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("bootstrap: hash admin password: %w", err)
		}
		admin = domain.NewUser(opts.AdminEmail, "Admin", string(hash))
		admin.IsAdmin = true
	}

	added, adminAdded, err := seeder.Seed(ctx, foods, admin)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if added > 0 {
		log.Printf("seeded %d demo food items", added)
	}
	if adminAdded {
		log.Printf("created admin user %s", admin.Email)
	}
	return nil
}
