// Package auth implements the cookie-based session identity.
//
// The session cookie is signed by the cookie store and carries nothing
// but the numeric user id. Identity is re-resolved against the store
// on every request: an absent cookie, an unparseable value or a
// vanished user all mean anonymous, never an error.
package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/mvolkova/pekarnya/internal/api/models"
	"github.com/mvolkova/pekarnya/internal/database"
)

const userIDKey = "user_id"

// Sessions resolves and issues session identities.
type Sessions struct {
	db database.DB
}

func New(db database.DB) *Sessions {
	return &Sessions{db: db}
}

// SignIn stores the user's id in the session cookie.
func (s *Sessions) SignIn(c *gin.Context, user *database.User) error {
	session := sessions.Default(c)
	session.Set(userIDKey, user.ID)
	return session.Save()
}

// SignOut drops the session.
func (s *Sessions) SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// CurrentUser resolves the inbound session cookie to a user.
// The second return value is false for anonymous requests.
func (s *Sessions) CurrentUser(c *gin.Context) (*models.User, bool) {
	session := sessions.Default(c)

	var id uint
	switch v := session.Get(userIDKey).(type) {
	case uint:
		id = v
	case int:
		id = uint(v)
	case int64:
		id = uint(v)
	default:
		return nil, false
	}

	user, err := s.db.GetUserByID(c.Request.Context(), id)
	if err != nil {
		// Stale cookie for a vanished user counts as anonymous.
		return nil, false
	}
	return models.FromDatabaseUser(user), true
}

// RequireAuth redirects anonymous requests to the login page and puts
// the resolved user into the gin context for handlers downstream.
func (s *Sessions) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Next()
	}
}
