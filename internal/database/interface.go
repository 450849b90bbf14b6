package database

import "context"

// DB defines the interface for database operations.
type DB interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	GetUserByID(ctx context.Context, id uint) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UpdateUserProfile(ctx context.Context, id uint, name, gender string) (*User, error)
}
