package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devportfolio/portfolio-backend/internal/auth/service"
	"github.com/devportfolio/portfolio-backend/internal/auth/session"
)

// Handler implements the login/logout endpoints. Auth responses use the
// bare {"message"}/{"error"} shapes, not the CRUD status envelope.
type Handler struct {
	auth     *service.AuthService
	sessions session.Store
	log      *logrus.Logger
}

func New(auth *service.AuthService, sessions session.Store, log *logrus.Logger) *Handler {
	return &Handler{auth: auth, sessions: sessions, log: log}
}

// login runs a short-circuiting validation chain over the raw payload:
// well-formed JSON object, both keys present, both strings, both non-empty
// after trimming, then the credential check.
func (h *Handler) login(c *gin.Context) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request must be in JSON format"})
		return
	}

	rawUsername, hasUsername := data["username"]
	rawPassword, hasPassword := data["password"]
	if !hasUsername || rawUsername == nil || !hasPassword || rawPassword == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	username, usernameIsString := rawUsername.(string)
	pass, passwordIsString := rawPassword.(string)
	if !usernameIsString || !passwordIsString {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password must be strings"})
		return
	}

	if strings.TrimSpace(username) == "" || strings.TrimSpace(pass) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password cannot be empty"})
		return
	}

	if !h.auth.Authenticate(username, pass) {
		h.log.WithField("username", username).Warn("failed login attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if err := h.sessions.Set(c.Writer, c.Request, username); err != nil {
		h.log.WithError(err).Error("failed to establish session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	h.log.WithField("username", username).Info("user logged in")
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// logout clears the session unconditionally; logging out an anonymous
// client still succeeds.
func (h *Handler) logout(c *gin.Context) {
	user, ok := h.sessions.Get(c.Request)
	if !ok {
		user = "unknown"
	}

	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		h.log.WithError(err).Error("failed to clear session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	h.log.WithField("username", user).Info("user logged out")
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

