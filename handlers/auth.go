package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roamify/backend"
	"roamify/middleware"
	"roamify/models"
	"roamify/session"
)

// AuthHandler owns the login/signup/logout pages and the session lifecycle
// around them.
type AuthHandler struct {
	Auth     backend.AuthAPI
	Sessions *session.Manager
}

func NewAuthHandler(auth backend.AuthAPI, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{Auth: auth, Sessions: sessions}
}

// Login signs the user in, persists the session and echoes where to go next:
// the originally requested page when the guard preserved one, `/` otherwise.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := getLogger(c)

	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}

	res, err := h.Auth.SignIn(apiCtx(c), creds)
	if err != nil {
		// Bad credentials come back as 401; on the login page that is a
		// form error, not a session teardown.
		if err == backend.ErrUnauthorized {
			c.JSON(http.StatusUnauthorized, PageError{Error: "Invalid username or password"})
			return
		}
		failPage(c, h.Sessions, err)
		return
	}

	sess, err := h.Sessions.Login(c.Request.Context(), res.Token, res.User())
	if err != nil {
		logger.Error("Failed to persist session", zap.Error(err))
		failPage(c, h.Sessions, err)
		return
	}
	c.SetCookie(middleware.SessionCookie, sess.ID, 0, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"user":     sess.User,
		"redirect": postLoginTarget(c.Query("from")),
	})
}

// postLoginTarget keeps the post-login return on-site: only rooted paths are
// accepted, everything else falls back to the landing page.
func postLoginTarget(from string) string {
	if strings.HasPrefix(from, "/") && !strings.HasPrefix(from, "//") {
		return from
	}
	return "/"
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}
	if err := h.Auth.SignUp(apiCtx(c), req); err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"redirect": "/login"})
}

func (h *AuthHandler) VendorSignup(c *gin.Context) {
	var req models.VendorSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, PageError{Error: "Invalid request: " + err.Error()})
		return
	}
	if req.Department != models.DepartmentTour && req.Department != models.DepartmentVehicle {
		c.JSON(http.StatusBadRequest, PageError{Error: "Department must be TOUR or VEHICLE"})
		return
	}
	if err := h.Auth.VendorSignUp(apiCtx(c), req); err != nil {
		failPage(c, h.Sessions, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Registration submitted and awaiting approval",
		"redirect": "/login",
	})
}

// Logout destroys the session and navigates to the public landing route.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := middleware.CurrentSession(c); sess != nil {
		if err := h.Sessions.Logout(c.Request.Context(), sess.ID); err != nil {
			getLogger(c).Warn("Logout failed to delete session", zap.Error(err))
		}
	}
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// Me reports the current session for the header/nav.
func (h *AuthHandler) Me(c *gin.Context) {
	state := middleware.AuthState(c)
	out := gin.H{"state": state.String(), "authenticated": state == session.StateAuthenticated}
	if sess := middleware.CurrentSession(c); sess != nil {
		out["user"] = sess.User
	}
	c.JSON(http.StatusOK, out)
}
