package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"roamify/models"
	"roamify/session"
)

// Requirement is what a route demands from the session state.
type Requirement int

const (
	// Public routes render for everyone.
	Public Requirement = iota
	// AuthOnly routes require a signed-in user.
	AuthOnly
	// AnonOnly routes (login, signup) are forbidden while authenticated.
	AnonOnly
)

// Decision is the guard's verdict for a request.
type Decision int

const (
	// Render lets the requested page through.
	Render Decision = iota
	// Wait serves a neutral placeholder while the session is still
	// resolving. Rendering protected content here would fail open.
	Wait
	// RedirectLogin sends the caller to /login, preserving the originally
	// requested location for the post-login return.
	RedirectLogin
	// RedirectHome sends an authenticated caller away from anonymous-only
	// pages.
	RedirectHome
)

// Decide is the route-guard state machine. role is the additional role the
// route demands, empty for none; a missing role is treated the same as being
// unauthenticated for that route.
func Decide(state session.State, req Requirement, role string, user *models.User) Decision {
	if req == Public && role == "" {
		return Render
	}
	switch state {
	case session.StateLoading:
		return Wait
	case session.StateAnonymous:
		if req == AnonOnly {
			return Render
		}
		return RedirectLogin
	case session.StateAuthenticated:
		if req == AnonOnly {
			return RedirectHome
		}
		if role != "" && (user == nil || !user.HasRole(role)) {
			return RedirectLogin
		}
		return Render
	}
	return Wait
}

// Guard applies a Decision as gin middleware.
func Guard(req Requirement, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := AuthState(c)
		var user *models.User
		if sess := CurrentSession(c); sess != nil {
			user = &sess.User
		}
		switch Decide(state, req, role, user) {
		case Render:
			c.Next()
		case Wait:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		case RedirectLogin:
			from := c.Request.URL.RequestURI()
			c.Redirect(http.StatusFound, "/login?from="+url.QueryEscape(from))
			c.Abort()
		case RedirectHome:
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		}
	}
}

// RequireAuth gates a route on a signed-in user.
func RequireAuth() gin.HandlerFunc {
	return Guard(AuthOnly, "")
}

// AnonymousOnly gates login/signup style routes.
func AnonymousOnly() gin.HandlerFunc {
	return Guard(AnonOnly, "")
}

// RequireRole gates a route on a signed-in user holding the given role.
func RequireRole(role string) gin.HandlerFunc {
	return Guard(AuthOnly, role)
}
