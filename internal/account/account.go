// Package account implements the registration, login and profile use
// cases on top of the user store and the password hasher.
package account

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/mvolkova/pekarnya/internal/database"
	"github.com/mvolkova/pekarnya/internal/password"
)

// ErrInvalidCredentials is returned when a login attempt fails,
// regardless of whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service provides account operations backed by a user store.
type Service struct {
	db database.DB
}

func New(db database.DB) *Service {
	return &Service{db: db}
}

// Register creates a new user with a hashed password.
// Registration does not log the user in; the caller has to go through
// Login afterwards. Returns database.ErrUsernameTaken when the
// username already exists.
func (s *Service) Register(ctx context.Context, username, plaintext string) (*database.User, error) {
	digest, err := password.Hash(plaintext)
	if err != nil {
		return nil, err
	}
	user, err := s.db.CreateUser(ctx, username, digest)
	if err != nil {
		return nil, err
	}
	log.Info("registered new user", "username", user.Username, "id", user.ID)
	return user, nil
}

// Login checks the given credentials against the store and returns the
// matching user. Unknown usernames, wrong passwords and corrupt stored
// digests all surface as ErrInvalidCredentials; a corrupt digest is
// additionally logged since it needs operator attention.
func (s *Service) Login(ctx context.Context, username, plaintext string) (*database.User, error) {
	user, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := password.Verify(plaintext, user.PasswordHash)
	if err != nil {
		log.Error("stored password digest is malformed", "username", username, "error", err)
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Profile returns the user for the given id.
func (s *Service) Profile(ctx context.Context, id uint) (*database.User, error) {
	return s.db.GetUserByID(ctx, id)
}

// UpdateProfile updates the mutable profile fields (name and gender)
// and returns the updated user.
func (s *Service) UpdateProfile(ctx context.Context, id uint, name, gender string) (*database.User, error) {
	user, err := s.db.UpdateUserProfile(ctx, id, name, gender)
	if err != nil {
		return nil, err
	}
	log.Debug("updated user profile", "id", id)
	return user, nil
}
