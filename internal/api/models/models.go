// Package models holds the view models handed to templates.
// Password hashes never appear here; the presentation layer only ever
// sees the fields below.
package models

import (
	"time"

	"github.com/mvolkova/pekarnya/internal/database"
)

// User is the template-facing view of a registered user.
type User struct {
	ID          uint
	Username    string
	Name        string
	Gender      string
	MemberSince time.Time
}

// FromDatabaseUser converts a stored user into its view model.
func FromDatabaseUser(u *database.User) *User {
	return &User{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Gender:      u.Gender,
		MemberSince: u.CreatedAt,
	}
}
