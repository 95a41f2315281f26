package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roamify/models"
)

// memStore is an in-memory Store for tests. failGet simulates the store
// being unreachable.
type memStore struct {
	sessions map[string]*Session
	failGet  bool
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]*Session{}}
}

func (s *memStore) Save(_ context.Context, sess *Session) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *memStore) Get(_ context.Context, id string) (*Session, error) {
	if s.failGet {
		return nil, errors.New("store unreachable")
	}
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "bob", "exp": exp.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestLoginPersistsSession(t *testing.T) {
	store := newMemStore()
	mgr := NewManager(store, zap.NewNop())

	user := models.User{Username: "bob", Email: "bob@example.com", Roles: []string{models.RoleUser}}
	sess, err := mgr.Login(context.Background(), "token-123", user)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, "token-123", sess.Token)
	assert.Equal(t, user, sess.User)

	saved, ok := store.sessions[sess.ID]
	require.True(t, ok)
	assert.Equal(t, sess, saved)
}

func TestResolveWithoutID(t *testing.T) {
	mgr := NewManager(newMemStore(), zap.NewNop())

	state, sess := mgr.Resolve(context.Background(), "")
	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, sess)
}

func TestResolveUnknownID(t *testing.T) {
	mgr := NewManager(newMemStore(), zap.NewNop())

	state, sess := mgr.Resolve(context.Background(), "nope")
	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, sess)
}

func TestResolveStoreFailureStaysLoading(t *testing.T) {
	store := newMemStore()
	store.failGet = true
	mgr := NewManager(store, zap.NewNop())

	state, sess := mgr.Resolve(context.Background(), "some-id")
	assert.Equal(t, StateLoading, state, "a transient store failure must not fail open")
	assert.Nil(t, sess)
}

func TestResolveValidToken(t *testing.T) {
	store := newMemStore()
	mgr := NewManager(store, zap.NewNop())

	token := signedToken(t, time.Now().Add(time.Hour))
	sess, err := mgr.Login(context.Background(), token, models.User{Username: "bob"})
	require.NoError(t, err)

	state, resolved := mgr.Resolve(context.Background(), sess.ID)
	assert.Equal(t, StateAuthenticated, state)
	require.NotNil(t, resolved)
	assert.Equal(t, "bob", resolved.User.Username)
}

func TestResolveExpiredTokenTearsDown(t *testing.T) {
	store := newMemStore()
	mgr := NewManager(store, zap.NewNop())

	token := signedToken(t, time.Now().Add(-time.Hour))
	sess, err := mgr.Login(context.Background(), token, models.User{Username: "bob"})
	require.NoError(t, err)

	state, resolved := mgr.Resolve(context.Background(), sess.ID)
	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, resolved)
	assert.NotContains(t, store.sessions, sess.ID, "expired session should be deleted")
}

func TestResolveOpaqueTokenKept(t *testing.T) {
	store := newMemStore()
	mgr := NewManager(store, zap.NewNop())

	// Not a JWT at all: validity is the backend's call, so the session
	// survives until a 401 tears it down.
	sess, err := mgr.Login(context.Background(), "opaque-token", models.User{Username: "bob"})
	require.NoError(t, err)

	state, _ := mgr.Resolve(context.Background(), sess.ID)
	assert.Equal(t, StateAuthenticated, state)
}

func TestLogoutUnknownIDIsNoError(t *testing.T) {
	mgr := NewManager(newMemStore(), zap.NewNop())

	assert.NoError(t, mgr.Logout(context.Background(), "missing"))
	assert.NoError(t, mgr.Logout(context.Background(), ""))
}

func TestTeardownRemovesSession(t *testing.T) {
	store := newMemStore()
	mgr := NewManager(store, zap.NewNop())

	sess, err := mgr.Login(context.Background(), "token", models.User{Username: "bob"})
	require.NoError(t, err)

	mgr.Teardown(context.Background(), sess.ID)
	assert.NotContains(t, store.sessions, sess.ID)
}
