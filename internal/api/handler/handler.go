package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/mvolkova/pekarnya/internal/account"
	"github.com/mvolkova/pekarnya/internal/api/auth"
	"github.com/mvolkova/pekarnya/internal/api/models"
	"github.com/mvolkova/pekarnya/internal/database"
	"github.com/mvolkova/pekarnya/internal/menu"
)

type Handler struct {
	accounts *account.Service
	sessions *auth.Sessions
}

func New(accounts *account.Service, sessions *auth.Sessions) *Handler {
	return &Handler{
		accounts: accounts,
		sessions: sessions,
	}
}

// currentUser returns the optional identity for pages that render for
// anonymous visitors too.
func (h *Handler) currentUser(c *gin.Context) *models.User {
	user, ok := h.sessions.CurrentUser(c)
	if !ok {
		return nil
	}
	return user
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"User": h.currentUser(c),
	})
}

func (h *Handler) Menu(c *gin.Context) {
	c.HTML(http.StatusOK, "menu.html", gin.H{
		"User":     h.currentUser(c),
		"Products": menu.Products(),
		"Drinks":   menu.Drinks(),
	})
}

func (h *Handler) SubmitOrder(c *gin.Context) {
	var form menu.OrderForm
	if err := c.ShouldBind(&form); err != nil {
		log.Debug("invalid order form", "error", err)
		c.HTML(http.StatusBadRequest, "menu.html", gin.H{
			"User":     h.currentUser(c),
			"Products": menu.Products(),
			"Drinks":   menu.Drinks(),
			"Error":    "Please fill in the whole order form.",
		})
		return
	}

	// Orders are summarized for display only, nothing is persisted.
	c.HTML(http.StatusOK, "order_summary.html", gin.H{
		"User":    h.currentUser(c),
		"Summary": menu.Summarize(form),
	})
}

func (h *Handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"User": h.currentUser(c),
	})
}

func (h *Handler) Register(c *gin.Context) {
	username := c.PostForm("username")
	plaintext := c.PostForm("password")

	if username == "" || plaintext == "" {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error": "Username and password are required.",
		})
		return
	}

	if _, err := h.accounts.Register(c.Request.Context(), username, plaintext); err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			c.HTML(http.StatusConflict, "register.html", gin.H{
				"Error": "That username is already taken, please pick another one.",
			})
			return
		}
		log.Error("failed to register user", "error", err)
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{
			"Error": "Something went wrong, please try again.",
		})
		return
	}

	// Registration does not log the user in, they land on the home
	// page and sign in themselves.
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) LoginForm(c *gin.Context) {
	if user := h.currentUser(c); user != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	plaintext := c.PostForm("password")

	user, err := h.accounts.Login(c.Request.Context(), username, plaintext)
	if err != nil {
		if !errors.Is(err, account.ErrInvalidCredentials) {
			log.Error("login failed", "error", err)
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid username or password.",
		})
		return
	}

	if err := h.sessions.SignIn(c, user); err != nil {
		log.Error("failed to save session", "error", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Something went wrong, please try again.",
		})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.SignOut(c); err != nil {
		log.Error("failed to clear session", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Profile(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User": user,
	})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	name := c.PostForm("name")
	gender := c.PostForm("gender")

	if _, err := h.accounts.UpdateProfile(c.Request.Context(), user.ID, name, gender); err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			// The account vanished between resolving the session and
			// the update, treat the request as anonymous.
			c.Redirect(http.StatusFound, "/login")
			return
		}
		log.Error("failed to update profile", "error", err)
		c.HTML(http.StatusInternalServerError, "profile.html", gin.H{
			"User":  user,
			"Error": "Something went wrong, please try again.",
		})
		return
	}
	c.Redirect(http.StatusFound, "/profile")
}
