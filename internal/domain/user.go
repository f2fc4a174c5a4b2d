// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"strings"
)

// Gender selects the sex-specific constant of the BMR equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ActivityLevel scales BMR into a daily energy expenditure.
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

// Valid reports whether a is a known activity level.
func (a ActivityLevel) Valid() bool {
	return a == ActivityLow || a == ActivityMedium || a == ActivityHigh
}

// Defaults applied to freshly registered accounts.
const (
	DefaultHeightCm         = 170.0
	DefaultWeightKg         = 70.0
	DefaultAge              = 25
	DefaultDailyCalorieGoal = 2000
)

// User represents an account together with its body profile.
type User struct {
	ID               int64         `json:"id"`
	Email            string        `json:"email"`
	PasswordHash     string        `json:"-"`
	Name             string        `json:"name"`
	HeightCm         float64       `json:"height"`
	WeightKg         float64       `json:"weight"`
	Age              int           `json:"age"`
	Gender           Gender        `json:"gender"`
	ActivityLevel    ActivityLevel `json:"activityLevel"`
	DailyCalorieGoal int           `json:"dailyCalorieGoal"`
	IsAdmin          bool          `json:"isAdmin"`
}

// NewUser returns a user with the registration defaults filled in.
func NewUser(email, name, passwordHash string) *User {
	return &User{
		Email:            NormalizeEmail(email),
		PasswordHash:     passwordHash,
		Name:             strings.TrimSpace(name),
		HeightCm:         DefaultHeightCm,
		WeightKg:         DefaultWeightKg,
		Age:              DefaultAge,
		Gender:           GenderMale,
		ActivityLevel:    ActivityMedium,
		DailyCalorieGoal: DefaultDailyCalorieGoal,
	}
}

// NormalizeEmail trims and lower-cases an address so lookups are stable.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ProfilePatch carries the optional fields of a profile update. Nil fields
// leave the stored value unchanged.
type ProfilePatch struct {
	Name             *string        `json:"name"`
	HeightCm         *float64       `json:"height"`
	WeightKg         *float64       `json:"weight"`
	Age              *int           `json:"age"`
	Gender           *Gender        `json:"gender"`
	ActivityLevel    *ActivityLevel `json:"activityLevel"`
	DailyCalorieGoal *int           `json:"dailyCalorieGoal"`
	RecalculateGoal  bool           `json:"recalculateGoal"`
}

// Apply validates the patch and copies the set fields onto u.
func (p ProfilePatch) Apply(u *User) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return Invalid("name must not be empty")
		}
		u.Name = name
	}
	if p.HeightCm != nil {
		if *p.HeightCm <= 0 {
			return Invalid("height must be > 0")
		}
		u.HeightCm = *p.HeightCm
	}
	if p.WeightKg != nil {
		if *p.WeightKg <= 0 {
			return Invalid("weight must be > 0")
		}
		u.WeightKg = *p.WeightKg
	}
	if p.Age != nil {
		if *p.Age <= 0 {
			return Invalid("age must be > 0")
		}
		u.Age = *p.Age
	}
	if p.Gender != nil {
		if !p.Gender.Valid() {
			return Invalid("gender must be \"male\" or \"female\"")
		}
		u.Gender = *p.Gender
	}
	if p.ActivityLevel != nil {
		if !p.ActivityLevel.Valid() {
			return Invalid("activityLevel must be \"low\", \"medium\" or \"high\"")
		}
		u.ActivityLevel = *p.ActivityLevel
	}
	if p.DailyCalorieGoal != nil {
		if *p.DailyCalorieGoal < 1 {
			return Invalid("dailyCalorieGoal must be >= 1")
		}
		u.DailyCalorieGoal = *p.DailyCalorieGoal
	}
	if p.RecalculateGoal {
		u.DailyCalorieGoal = EstimateDailyCalories(u.WeightKg, u.HeightCm, u.Age, u.Gender, u.ActivityLevel)
	}
	return nil
}

// UserRepository defines the port for user persistence operations.
// Lookups return (nil, nil) when no user matches.
type UserRepository interface {
	CreateUser(ctx context.Context, u *User) (*User, error)
	UserByEmail(ctx context.Context, email string) (*User, error)
	UserByID(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, u *User) error
}
