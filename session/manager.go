package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"roamify/models"
)

// Manager owns the session lifecycle: created on login, resolved on every
// request, destroyed on logout or 401. It is injected everywhere it is
// needed rather than kept as an ambient global.
type Manager struct {
	store  Store
	logger *zap.Logger
}

func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// Login persists a fresh session for the signed-in user and returns it.
func (m *Manager) Login(ctx context.Context, token string, user models.User) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: time.Now(),
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout destroys the persisted session. Unknown IDs are not an error.
func (m *Manager) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := m.store.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// Teardown clears the session after a 401 so subsequent guard checks treat
// the caller as anonymous.
func (m *Manager) Teardown(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if err := m.store.Delete(ctx, id); err != nil {
		m.logger.Warn("Failed to tear down session", zap.String("sessionID", id), zap.Error(err))
	}
}

// Resolve maps a persisted session ID to a guard state.
//
//	no ID / unknown ID / expired token -> StateAnonymous
//	transient store failure            -> StateLoading (never fail open)
//	valid record                       -> StateAuthenticated
func (m *Manager) Resolve(ctx context.Context, id string) (State, *Session) {
	if id == "" {
		return StateAnonymous, nil
	}
	sess, err := m.store.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return StateAnonymous, nil
	}
	if err != nil {
		m.logger.Warn("Session store unavailable, treating session as still loading",
			zap.String("sessionID", id), zap.Error(err))
		return StateLoading, nil
	}
	if tokenExpired(sess.Token) {
		m.Teardown(ctx, id)
		return StateAnonymous, nil
	}
	return StateAuthenticated, sess
}

// tokenExpired checks the exp claim without verifying the signature; the
// signing key lives backend-side and a stale token would be rejected there
// anyway. Tokens without an exp claim are kept until the backend says 401.
func tokenExpired(token string) bool {
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	return !claims.VerifyExpiresAt(time.Now().Unix(), false)
}
