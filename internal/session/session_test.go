package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/cumplesito/internal/wishlist"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

type fakeAuth struct {
	token     string
	loginErr  error
	meErr     error
	logins    int
	registers int
}

func (f *fakeAuth) Register(ctx context.Context, form wishlist.Registration) (*wishlist.User, error) {
	f.registers++
	return &wishlist.User{ID: "u1", Name: form.Name, Email: form.Email}, nil
}

func (f *fakeAuth) Login(ctx context.Context, creds wishlist.Credentials) (string, error) {
	f.logins++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuth) Me(ctx context.Context, token string) (*wishlist.User, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return &wishlist.User{ID: "u1", Name: "Sofía", Email: "sofi@example.com"}, nil
}

func newManager(t *testing.T) (*Manager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cumplesito", "session.toml")
	return NewManager(path, WithClock(func() time.Time { return now })), path
}

func TestLoginPersistsAndReloads(t *testing.T) {
	m, path := newManager(t)
	auth := &fakeAuth{token: signed(t, now.Add(time.Hour))}

	user, err := m.Login(context.Background(), auth, wishlist.Credentials{Email: " sofi@example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Sofía", user.Name)
	assert.True(t, m.Authenticated())
	assert.Equal(t, "u1", m.UserID())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	restored := NewManager(path, WithClock(func() time.Time { return now }))
	require.NoError(t, restored.Load())
	assert.Equal(t, auth.token, restored.Token())
	got, ok := restored.User()
	require.True(t, ok)
	assert.Equal(t, "sofi@example.com", got.Email)
}

func TestLoginValidatesBeforeCalling(t *testing.T) {
	m, _ := newManager(t)
	auth := &fakeAuth{token: "opaque"}

	_, err := m.Login(context.Background(), auth, wishlist.Credentials{Email: "nope", Password: ""})
	var fields wishlist.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Zero(t, auth.logins)
	assert.False(t, m.Authenticated())
}

func TestLoginDropsTokenWhenMeFails(t *testing.T) {
	m, path := newManager(t)
	auth := &fakeAuth{token: "opaque", meErr: errors.New("401")}

	_, err := m.Login(context.Background(), auth, wishlist.Credentials{Email: "a@b.co", Password: "secret"})
	require.Error(t, err)
	assert.False(t, m.Authenticated())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExpiredTokenIsDropped(t *testing.T) {
	m, path := newManager(t)
	auth := &fakeAuth{token: signed(t, now.Add(time.Minute))}
	_, err := m.Login(context.Background(), auth, wishlist.Credentials{Email: "a@b.co", Password: "secret"})
	require.NoError(t, err)

	later := NewManager(path, WithClock(func() time.Time { return now.Add(2 * time.Minute) }))
	require.NoError(t, later.Load())
	assert.Empty(t, later.Token())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "expired session file should be removed")
}

func TestVerifyRejectedTokenLogsOut(t *testing.T) {
	m, path := newManager(t)
	auth := &fakeAuth{token: "opaque"}
	_, err := m.Login(context.Background(), auth, wishlist.Credentials{Email: "a@b.co", Password: "secret"})
	require.NoError(t, err)

	auth.meErr = errors.New("token revoked")
	err = m.Verify(context.Background(), auth)
	require.Error(t, err)
	assert.False(t, m.Authenticated())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	assert.ErrorIs(t, m.Verify(context.Background(), auth), ErrNotSignedIn)
}

func TestRegisterSignsIn(t *testing.T) {
	m, _ := newManager(t)
	auth := &fakeAuth{token: "opaque"}

	user, err := m.Register(context.Background(), auth, wishlist.Registration{Name: "Sofía", Email: "sofi@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, 1, auth.registers)
	assert.Equal(t, 1, auth.logins)
	assert.True(t, m.Authenticated())
}

func TestLogoutClearsMemoryAndFile(t *testing.T) {
	m, path := newManager(t)
	auth := &fakeAuth{token: "opaque"}
	_, err := m.Login(context.Background(), auth, wishlist.Credentials{Email: "a@b.co", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, m.Logout())
	assert.False(t, m.Authenticated())
	_, ok := m.User()
	assert.False(t, ok)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
	require.NoError(t, m.Logout(), "logout twice is fine")
}

func TestInMemoryManager(t *testing.T) {
	m := NewManager("")
	require.NoError(t, m.Load())
	_, err := m.Login(context.Background(), &fakeAuth{token: "opaque"}, wishlist.Credentials{Email: "a@b.co", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "opaque", m.Token())
}
