package api

import (
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/mvolkova/pekarnya/internal/account"
	"github.com/mvolkova/pekarnya/internal/api/auth"
	"github.com/mvolkova/pekarnya/internal/api/handler"
	"github.com/mvolkova/pekarnya/internal/config"
	"github.com/mvolkova/pekarnya/internal/database"
	"github.com/mvolkova/pekarnya/internal/web"
)

type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	sessions  *auth.Sessions
	handler   *handler.Handler
}

func New(cfg *config.Config, db database.DB, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ginEngine := gin.Default()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	ginEngine.SetHTMLTemplate(tmpl)

	sess := auth.New(db)

	return &Server{
		cfg:       cfg,
		ginEngine: ginEngine,
		sessions:  sess,
		handler:   handler.New(account.New(db), sess),
	}, nil
}

func (s *Server) setupSession() error {
	key := []byte(s.cfg.SessionKey)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("failed to generate session key: %w", err)
		}
	}

	store := cookie.NewStore(key)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("pekarnya_session", store))
	return nil
}

func (s *Server) setupRoutes() error {
	if err := s.setupSession(); err != nil {
		return err
	}
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	staticFS, err := web.Static()
	if err != nil {
		return fmt.Errorf("failed to load static assets: %w", err)
	}
	s.ginEngine.StaticFS("/static", http.FS(staticFS))

	h := s.handler

	s.ginEngine.GET("/", h.Home)
	s.ginEngine.GET("/menu", h.Menu)
	s.ginEngine.POST("/menu/submit", h.SubmitOrder)
	s.ginEngine.GET("/register", h.RegisterForm)
	s.ginEngine.POST("/register", h.Register)
	s.ginEngine.GET("/login", h.LoginForm)
	s.ginEngine.POST("/login", h.Login)
	s.ginEngine.GET("/logout", h.Logout)

	protected := s.ginEngine.Group("/")
	protected.Use(s.sessions.RequireAuth())

	protected.GET("/profile", h.Profile)
	protected.POST("/profile", h.UpdateProfile)

	return nil
}

func (s *Server) Run() error {
	if err := s.setupRoutes(); err != nil {
		return err
	}
	return s.ginEngine.Run(s.cfg.Listen)
}
