package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mvolkova/pekarnya/internal/api/models"
	"github.com/mvolkova/pekarnya/internal/database/mock"
)

type AuthTestSuite struct {
	suite.Suite
	db       *mock.MockDB
	sessions *Sessions
	router   *gin.Engine
}

func (s *AuthTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.db = mock.NewMockDB()
	s.sessions = New(s.db)

	s.router = gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	s.router.Use(sessions.Sessions("pekarnya_session", store))
}

// signIn runs a request that signs the given user id into a session
// and returns the resulting cookies.
func (s *AuthTestSuite) signIn(username string) []*http.Cookie {
	user, err := s.db.CreateUser(context.Background(), username, "digest")
	require.NoError(s.T(), err)

	s.router.GET("/signin", func(c *gin.Context) {
		require.NoError(s.T(), s.sessions.SignIn(c, user))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/signin", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(s.T(), http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func (s *AuthTestSuite) TestCurrentUserAnonymous() {
	s.router.GET("/whoami", func(c *gin.Context) {
		user, ok := s.sessions.CurrentUser(c)
		assert.False(s.T(), ok)
		assert.Nil(s.T(), user)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *AuthTestSuite) TestSignInResolvesUser() {
	cookies := s.signIn("ann")

	s.router.GET("/whoami", func(c *gin.Context) {
		user, ok := s.sessions.CurrentUser(c)
		require.True(s.T(), ok)
		assert.Equal(s.T(), "ann", user.Username)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *AuthTestSuite) TestStaleCookieIsAnonymous() {
	cookies := s.signIn("ann")

	// The user disappears while the cookie is still out there.
	s.db.Reset()

	s.router.GET("/whoami", func(c *gin.Context) {
		_, ok := s.sessions.CurrentUser(c)
		assert.False(s.T(), ok)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *AuthTestSuite) TestRequireAuthRedirectsAnonymous() {
	s.router.GET("/protected", s.sessions.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusFound, w.Code)
	assert.Equal(s.T(), "/login", w.Header().Get("Location"))
}

func (s *AuthTestSuite) TestRequireAuthSetsUser() {
	cookies := s.signIn("ann")

	s.router.GET("/protected", s.sessions.RequireAuth(), func(c *gin.Context) {
		user := c.MustGet("user").(*models.User)
		assert.Equal(s.T(), "ann", user.Username)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
