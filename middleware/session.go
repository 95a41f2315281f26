package middleware

import (
	"github.com/gin-gonic/gin"

	"roamify/session"
)

// SessionCookie carries the persisted session ID across requests.
const SessionCookie = "roamify_sid"

const (
	ctxKeyState   = "authState"
	ctxKeySession = "authSession"
)

// SessionMiddleware resolves the persisted session (if any) once per request
// and attaches the resulting guard state to the context. It never aborts;
// the guards downstream decide what the state means for each route.
func SessionMiddleware(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil {
			sid = ""
		}
		state, sess := mgr.Resolve(c.Request.Context(), sid)
		c.Set(ctxKeyState, state)
		if sess != nil {
			c.Set(ctxKeySession, sess)
		}
		c.Next()
	}
}

// AuthState returns the resolved guard state for this request.
func AuthState(c *gin.Context) session.State {
	if v, ok := c.Get(ctxKeyState); ok {
		if s, ok := v.(session.State); ok {
			return s
		}
	}
	return StateWhenUnresolved
}

// StateWhenUnresolved is what AuthState reports when the session middleware
// never ran. Loading is the safe default: guards wait instead of rendering.
const StateWhenUnresolved = session.StateLoading

// CurrentSession returns the resolved session, or nil while anonymous or
// loading.
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(ctxKeySession); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}
