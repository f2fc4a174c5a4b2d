// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"canteen/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var (
	// ErrInvalidCredentials indicates that the provided email or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = fmt.Errorf("user %w", domain.ErrNotFound)
	// ErrEmailTaken indicates that another account uses the email.
	ErrEmailTaken = fmt.Errorf("email %w", domain.ErrConflict)
)

var (
	compareHash = bcrypt.CompareHashAndPassword

	// dummyHash is compared against when no usable password hash exists, so
	// unknown accounts cost the same bcrypt work as known ones.
	dummyHash = sync.OnceValue(func() []byte {
		h, _ := bcrypt.GenerateFromPassword([]byte("canteen-no-such-account"), bcrypt.DefaultCost)
		return h
	})
)

// Session is returned by successful registration and login.
type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// AuthService handles accounts, credentials and profiles.
type AuthService struct {
	users  domain.UserRepository
	tokens *TokenIssuer
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, tokens *TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates an account with default profile values and signs it in.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" || strings.TrimSpace(name) == "" {
		return nil, domain.Invalid("email, password, and name are required")
	}
	if !strings.Contains(email, "@") {
		return nil, domain.Invalid("email is malformed")
	}
	if len(password) < MinPasswordLength {
		return nil, domain.Invalid("password must be at least %d characters", MinPasswordLength)
	}
	if len(password) > 72 {
		return nil, domain.Invalid("password must be at most 72 bytes")
	}

	existing, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, domain.NewUser(email, name, string(hash)))
	if errors.Is(err, domain.ErrConflict) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return s.session(user)
}

// Login authenticates a user by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.Invalid("email and password are required")
	}

	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	usable := user != nil && user.PasswordHash != ""
	hash := dummyHash()
	if usable {
		hash = []byte(user.PasswordHash)
	}
	if err := compareHash(hash, []byte(password)); err != nil || !usable {
		return nil, ErrInvalidCredentials
	}
	return s.session(user)
}

// LoginWithEmail signs in a user already authenticated elsewhere (e.g. via
// SSO), creating the account on first use.
func (s *AuthService) LoginWithEmail(ctx context.Context, email, name string) (*Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, domain.Invalid("email is required")
	}

	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if strings.TrimSpace(name) == "" {
			name = email
		}
		// SSO accounts get an unguessable password so local login stays closed.
		hash, err := randomPasswordHash()
		if err != nil {
			return nil, err
		}
		user, err = s.users.CreateUser(ctx, domain.NewUser(email, name, hash))
		if errors.Is(err, domain.ErrConflict) {
			// Lost a race with a concurrent first login.
			user, err = s.users.UserByEmail(ctx, email)
		}
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
	}
	return s.session(user)
}

// Verify validates a bearer token.
func (s *AuthService) Verify(token string) (*Claims, error) {
	return s.tokens.Parse(token)
}

// Profile returns the stored account of userID.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies a partial profile update and returns the result.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, patch domain.ProfilePatch) (*domain.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(user); err != nil {
		return nil, err
	}
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) session(user *domain.User) (*Session, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user}, nil
}

func randomPasswordHash() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(base64.URLEncoding.EncodeToString(b)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
