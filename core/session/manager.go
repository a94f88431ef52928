package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/storefront/core/client"
	"github.com/dmitrymomot/storefront/core/state"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

// AuthAPI is the remote auth surface the manager drives.
// *client.AuthService satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, identifier, password string) (client.AuthResult, error)
	Register(ctx context.Context, params client.RegisterParams) (client.AuthResult, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (string, error)
	UpdateProfile(ctx context.Context, params client.UpdateProfileParams) (client.User, error)
}

// Manager owns the session lifecycle. Safe for concurrent use; network calls
// happen outside the lock so the transport's refresh path cannot deadlock.
type Manager struct {
	api   AuthAPI
	store state.Store
	log   *slog.Logger

	mu      sync.Mutex
	sess    Session
	lastErr string
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager creates a session manager over the given auth API and state store.
func NewManager(api AuthAPI, store state.Store, opts ...Option) *Manager {
	m := &Manager{
		api:   api,
		store: store,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// InitAuth rehydrates the persisted session. Idempotent, no network call;
// the access token becomes visible to the request pipeline immediately via
// AccessToken. A missing or unreadable record leaves the session anonymous.
func (m *Manager) InitAuth(ctx context.Context) {
	var sess Session
	if err := m.store.Load(ctx, StorageKey, &sess); err != nil {
		if !errors.Is(err, state.ErrNotFound) {
			m.log.WarnContext(ctx, "discarding unreadable session record",
				logger.Component("session"), logger.Key(StorageKey), logger.Error(err))
		}
		return
	}

	m.mu.Lock()
	m.sess = sess
	m.mu.Unlock()
}

// Login authenticates with a username or email plus password. On success the
// full credential set replaces the session and is persisted. On failure the
// session is left as it was, the server's message is stored for LastError,
// and the wrapped error is returned.
func (m *Manager) Login(ctx context.Context, identifier, password string) error {
	m.setError("")

	res, err := m.api.Login(ctx, identifier, password)
	if err != nil {
		m.setError(client.APIMessage(err))
		return errors.Join(ErrLoginFailed, err)
	}

	m.establish(ctx, res)
	return nil
}

// Register creates an account; the contract matches Login.
func (m *Manager) Register(ctx context.Context, params client.RegisterParams) error {
	m.setError("")

	res, err := m.api.Register(ctx, params)
	if err != nil {
		m.setError(client.APIMessage(err))
		return errors.Join(ErrRegistrationFailed, err)
	}

	m.establish(ctx, res)
	return nil
}

// Logout invalidates the session server-side on a best-effort basis, then
// unconditionally clears local state. It never fails from the caller's
// perspective.
func (m *Manager) Logout(ctx context.Context) {
	if m.hasAccessToken() {
		if err := m.api.Logout(ctx); err != nil {
			m.log.WarnContext(ctx, "remote logout failed, clearing local session anyway",
				logger.Component("session"), logger.Error(err))
		}
	}
	m.Clear(ctx)
}

// Clear drops local session state without contacting the server and persists
// the anonymous session.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.sess = Session{}
	m.mu.Unlock()
	m.persist(ctx, Session{})
}

// RefreshAccessToken exchanges the stored refresh token for a new access
// token. Fails immediately when no refresh token is held. Any exchange
// failure is irrecoverable: the session is fully logged out as a side effect.
func (m *Manager) RefreshAccessToken(ctx context.Context) error {
	m.mu.Lock()
	refreshToken := m.sess.RefreshToken
	m.mu.Unlock()

	if refreshToken == "" {
		return ErrNoRefreshToken
	}

	accessToken, err := m.api.Refresh(ctx, refreshToken)
	if err != nil {
		m.Logout(ctx)
		return errors.Join(ErrRefreshFailed, err)
	}

	m.mu.Lock()
	m.sess.AccessToken = accessToken
	sess := m.sess
	m.mu.Unlock()
	m.persist(ctx, sess)
	return nil
}

// UpdateProfile mutates the authenticated user's profile and stores the
// updated record.
func (m *Manager) UpdateProfile(ctx context.Context, params client.UpdateProfileParams) error {
	m.setError("")

	user, err := m.api.UpdateProfile(ctx, params)
	if err != nil {
		m.setError(client.APIMessage(err))
		return errors.Join(ErrProfileUpdateFailed, err)
	}

	m.mu.Lock()
	m.sess.User = &user
	sess := m.sess
	m.mu.Unlock()
	m.persist(ctx, sess)
	return nil
}

// IsAuthenticated reports whether a complete session is held.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess.IsAuthenticated()
}

// AccessToken implements client.TokenSource.
func (m *Manager) AccessToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess.AccessToken
}

// CurrentUser returns the authenticated user's profile, if any.
func (m *Manager) CurrentUser() (client.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess.User == nil {
		return client.User{}, false
	}
	return *m.sess.User, true
}

// LastError returns the stored human-readable failure message, empty when the
// last operation succeeded.
func (m *Manager) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// ClearError clears the stored failure message without other side effects.
func (m *Manager) ClearError() {
	m.setError("")
}

func (m *Manager) establish(ctx context.Context, res client.AuthResult) {
	user := res.User
	sess := Session{
		User:         &user,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	}

	m.mu.Lock()
	m.sess = sess
	m.mu.Unlock()
	m.persist(ctx, sess)
}

func (m *Manager) hasAccessToken() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess.AccessToken != ""
}

func (m *Manager) setError(msg string) {
	m.mu.Lock()
	m.lastErr = msg
	m.mu.Unlock()
}

// persist rewrites the session record wholesale, last write wins. Persistence
// failures are logged, never surfaced: in-memory state stays authoritative for
// the lifetime of the process.
func (m *Manager) persist(ctx context.Context, sess Session) {
	ctx = context.WithoutCancel(ctx)
	if err := m.store.Save(ctx, StorageKey, sess); err != nil {
		m.log.ErrorContext(ctx, "failed to persist session state",
			logger.Component("session"), logger.Key(StorageKey), logger.Error(err))
	}
}
