package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamify/models"
	"roamify/session"
)

func TestDecide(t *testing.T) {
	admin := &models.User{Username: "ada", Roles: []string{models.RoleUser, models.RoleAdmin}}
	plain := &models.User{Username: "bob", Roles: []string{models.RoleUser}}

	tests := []struct {
		name  string
		state session.State
		req   Requirement
		role  string
		user  *models.User
		want  Decision
	}{
		{"public renders while loading", session.StateLoading, Public, "", nil, Render},
		{"public renders for anonymous", session.StateAnonymous, Public, "", nil, Render},
		{"public renders for authenticated", session.StateAuthenticated, Public, "", plain, Render},
		{"protected waits while loading", session.StateLoading, AuthOnly, "", nil, Wait},
		{"role-gated waits while loading", session.StateLoading, AuthOnly, models.RoleAdmin, nil, Wait},
		{"anon-only waits while loading", session.StateLoading, AnonOnly, "", nil, Wait},
		{"protected redirects anonymous to login", session.StateAnonymous, AuthOnly, "", nil, RedirectLogin},
		{"anon-only renders for anonymous", session.StateAnonymous, AnonOnly, "", nil, Render},
		{"protected renders for authenticated", session.StateAuthenticated, AuthOnly, "", plain, Render},
		{"anon-only redirects authenticated home", session.StateAuthenticated, AnonOnly, "", plain, RedirectHome},
		{"role held renders", session.StateAuthenticated, AuthOnly, models.RoleAdmin, admin, Render},
		{"role missing redirects to login", session.StateAuthenticated, AuthOnly, models.RoleAdmin, plain, RedirectLogin},
		{"role check with nil user redirects", session.StateAuthenticated, AuthOnly, models.RoleVendor, nil, RedirectLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state, tt.req, tt.role, tt.user))
		})
	}
}

// withState injects a resolved guard state the way SessionMiddleware would.
func withState(state session.State, sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxKeyState, state)
		if sess != nil {
			c.Set(ctxKeySession, sess)
		}
		c.Next()
	}
}

func guardedRouter(state session.State, sess *session.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withState(state, sess))
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"page": "rendered"}) }
	r.GET("/profile", RequireAuth(), ok)
	r.GET("/login", AnonymousOnly(), ok)
	r.GET("/admin/tours", RequireRole(models.RoleAdmin), ok)
	return r
}

func TestGuardRedirectsAnonymousWithFrom(t *testing.T) {
	r := guardedRouter(session.StateAnonymous, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?from=%2Fprofile", w.Header().Get("Location"))
}

func TestGuardPreservesQueryInFrom(t *testing.T) {
	r := guardedRouter(session.StateAnonymous, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/tours?page=2", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?from="+"%2Fadmin%2Ftours%3Fpage%3D2", w.Header().Get("Location"))
}

func TestGuardNeverRendersWhileLoading(t *testing.T) {
	r := guardedRouter(session.StateLoading, nil)

	for _, path := range []string{"/profile", "/login", "/admin/tours"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code, path)
		assert.Equal(t, "1", w.Header().Get("Retry-After"), path)
		assert.JSONEq(t, `{"status":"loading"}`, w.Body.String(), path)
	}
}

func TestGuardSendsAuthenticatedAwayFromLogin(t *testing.T) {
	sess := &session.Session{ID: "s1", User: models.User{Username: "bob", Roles: []string{models.RoleUser}}}
	r := guardedRouter(session.StateAuthenticated, sess)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestGuardRejectsMissingRole(t *testing.T) {
	sess := &session.Session{ID: "s1", User: models.User{Username: "bob", Roles: []string{models.RoleUser}}}
	r := guardedRouter(session.StateAuthenticated, sess)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/tours", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?from=%2Fadmin%2Ftours", w.Header().Get("Location"))
}

func TestGuardRendersForAuthorizedUser(t *testing.T) {
	sess := &session.Session{ID: "s1", User: models.User{Username: "ada", Roles: []string{models.RoleUser, models.RoleAdmin}}}
	r := guardedRouter(session.StateAuthenticated, sess)

	for _, path := range []string{"/profile", "/admin/tours"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestAuthStateDefaultsToLoading(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, session.StateLoading, AuthState(c))
	assert.Nil(t, CurrentSession(c))
}
