package database

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken is returned when a username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)

// User represents a registered user in the database.
// The password is only ever stored as a bcrypt hash; the hash must
// never leave the database and account layers.
type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	Gender       string
}

func (c *Client) CreateUser(ctx context.Context, username, passwordHash string) (*User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := c.db.WithContext(ctx).Create(&user).Error; err != nil {
		// The sqlite driver reports the unique index violation either
		// as a translated gorm error or as a raw constraint error.
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrUsernameTaken
		}
		log.Error("failed to create user", "error", err)
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to get user by ID", "error", err)
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to get user by username", "error", err)
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile persists a new name and gender for an existing user.
// Username and password hash are left untouched.
func (c *Client) UpdateUserProfile(ctx context.Context, id uint, name, gender string) (*User, error) {
	user, err := c.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.db.WithContext(ctx).Model(user).Updates(map[string]any{
		"name":   name,
		"gender": gender,
	}).Error; err != nil {
		log.Error("failed to update user profile", "error", err)
		return nil, err
	}
	return user, nil
}
