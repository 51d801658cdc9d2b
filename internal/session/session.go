package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/five82/cumplesito/internal/logging"
	"github.com/five82/cumplesito/internal/wishlist"
)

// Authenticator is the part of the record-store client the session needs.
type Authenticator interface {
	Register(ctx context.Context, form wishlist.Registration) (*wishlist.User, error)
	Login(ctx context.Context, creds wishlist.Credentials) (string, error)
	Me(ctx context.Context, token string) (*wishlist.User, error)
}

// ErrNotSignedIn is returned by operations that need a session.
var ErrNotSignedIn = errors.New("not signed in")

// Manager holds the bearer token and the signed-in user. It is safe for
// concurrent use; the api client reads Token from request goroutines.
type Manager struct {
	mu      sync.RWMutex
	path    string
	token   string
	user    wishlist.User
	hasUser bool
	expires time.Time
	now     func() time.Time
	log     logrus.FieldLogger
}

type stored struct {
	Token     string    `toml:"token"`
	UserID    string    `toml:"user_id"`
	UserName  string    `toml:"user_name"`
	UserEmail string    `toml:"user_email"`
	SavedAt   time.Time `toml:"saved_at"`
}

// Option customizes a Manager.
type Option func(*Manager)

// WithClock overrides the time source used for token expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger routes session logging to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager builds a Manager persisting to path. An empty path keeps the
// session in memory only.
func NewManager(path string, opts ...Option) *Manager {
	m := &Manager{path: strings.TrimSpace(path), now: time.Now, log: logging.Discard()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load restores a stored session. Expired or unreadable sessions are
// discarded silently.
func (m *Manager) Load() error {
	if m.path == "" {
		return nil
	}
	bytes, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read session: %w", err)
	}
	var s stored
	if err := toml.Unmarshal(bytes, &s); err != nil {
		m.log.WithError(err).Warn("discarding unreadable session file")
		return m.Logout()
	}
	if strings.TrimSpace(s.Token) == "" {
		return nil
	}
	expires := tokenExpiry(s.Token)
	if !expires.IsZero() && !m.now().Before(expires) {
		m.log.Info("stored session expired")
		return m.Logout()
	}

	m.mu.Lock()
	m.token = s.Token
	m.expires = expires
	m.user = wishlist.User{ID: s.UserID, Name: s.UserName, Email: s.UserEmail}
	m.hasUser = s.UserID != ""
	m.mu.Unlock()
	return nil
}

// Verify confirms a restored token with /auth/me and refreshes the cached
// user. A rejected token ends the session.
func (m *Manager) Verify(ctx context.Context, auth Authenticator) error {
	token := m.Token()
	if token == "" {
		return ErrNotSignedIn
	}
	user, err := auth.Me(ctx, token)
	if err != nil {
		m.log.WithError(err).Warn("stored session rejected")
		if lerr := m.Logout(); lerr != nil {
			return errors.Join(err, lerr)
		}
		return err
	}
	return m.set(token, *user)
}

// Login exchanges credentials for a token, then loads the user. If the user
// lookup fails the token is dropped and nothing is stored.
func (m *Manager) Login(ctx context.Context, auth Authenticator, creds wishlist.Credentials) (wishlist.User, error) {
	if err := creds.Validate(); err != nil {
		return wishlist.User{}, err
	}
	token, err := auth.Login(ctx, creds)
	if err != nil {
		return wishlist.User{}, err
	}
	user, err := auth.Me(ctx, token)
	if err != nil {
		return wishlist.User{}, err
	}
	if err := m.set(token, *user); err != nil {
		return wishlist.User{}, err
	}
	m.log.WithField("user_id", user.ID).Info("signed in")
	return *user, nil
}

// Register creates an account and signs it in.
func (m *Manager) Register(ctx context.Context, auth Authenticator, form wishlist.Registration) (wishlist.User, error) {
	if err := form.Validate(); err != nil {
		return wishlist.User{}, err
	}
	if _, err := auth.Register(ctx, form); err != nil {
		return wishlist.User{}, err
	}
	return m.Login(ctx, auth, wishlist.Credentials{Email: form.Email, Password: form.Password})
}

// Logout forgets the session locally. No server call is made.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.token = ""
	m.user = wishlist.User{}
	m.hasUser = false
	m.expires = time.Time{}
	m.mu.Unlock()

	if m.path == "" {
		return nil
	}
	if err := os.Remove(m.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// Token returns the bearer token, or "" when signed out or expired.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return ""
	}
	if !m.expires.IsZero() && !m.now().Before(m.expires) {
		return ""
	}
	return m.token
}

// User returns the signed-in user.
func (m *Manager) User() (wishlist.User, bool) {
	if m.Token() == "" {
		return wishlist.User{}, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user, m.hasUser
}

// UserID returns the signed-in user's id or "".
func (m *Manager) UserID() string {
	user, ok := m.User()
	if !ok {
		return ""
	}
	return user.ID
}

// Authenticated reports whether a usable token is held.
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

func (m *Manager) set(token string, user wishlist.User) error {
	m.mu.Lock()
	m.token = token
	m.user = user
	m.hasUser = true
	m.expires = tokenExpiry(token)
	m.mu.Unlock()

	if m.path == "" {
		return nil
	}
	bytes, err := toml.Marshal(stored{
		Token:     token,
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		SavedAt:   m.now().UTC().Truncate(time.Second),
	})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(m.path, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// tokenExpiry reads the exp claim without checking the signature; the
// record store verifies tokens. Opaque tokens have no expiry.
func tokenExpiry(token string) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
