package session_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/barberiapp/admin-cli/api"
	apperrors "github.com/barberiapp/admin-cli/internal/errors"
	"github.com/barberiapp/admin-cli/session"
	"github.com/barberiapp/admin-cli/session/storage"
)

const (
	testEmail    = "ana@barberia.cl"
	testPassword = "secreto123"
	testToken    = "header.payload.signature"
	testRefresh  = "refresh-abc"
)

// fakeAuthAPI returns a canned response or error.
type fakeAuthAPI struct {
	resp *api.AuthResponse
	err  error

	loginCalls    int
	registerCalls int
}

var _ session.AuthAPI = (*fakeAuthAPI)(nil)

func (f *fakeAuthAPI) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	f.loginCalls++
	return f.resp, f.err
}

func (f *fakeAuthAPI) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	f.registerCalls++
	return f.resp, f.err
}

// fakeNavigator records login redirects.
type fakeNavigator struct {
	current   string
	redirects []string
}

var _ session.Navigator = (*fakeNavigator)(nil)

func (f *fakeNavigator) CurrentPath() string { return f.current }

func (f *fakeNavigator) NavigateLogin(returnURL string) {
	f.redirects = append(f.redirects, returnURL)
	f.current = session.LoginPath
}

func authResponse() *api.AuthResponse {
	return &api.AuthResponse{
		Token:        testToken,
		RefreshToken: testRefresh,
		ID:           7,
		Email:        testEmail,
		Nombre:       "Ana",
		Apellido:     "Rojas",
		Roles:        []string{"TRABAJADOR"},
		Permisos:     []string{"VENTA_VER", "VENTA_CREAR"},
	}
}

func newTestStore(t *testing.T, auth session.AuthAPI) (*session.Store, storage.Backend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	store := session.NewStore(backend)
	if auth != nil {
		store.BindAuth(auth)
	}
	return store, backend
}

func TestLoginPersistsSession(t *testing.T) {
	store, backend := newTestStore(t, &fakeAuthAPI{resp: authResponse()})

	principal, err := store.Login(context.Background(), api.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.True(t, store.IsAuthenticated())
	require.Equal(t, testEmail, principal.Email)

	token, ok := store.Token()
	require.True(t, ok)
	require.Equal(t, testToken, token)

	refresh, ok := store.RefreshToken()
	require.True(t, ok)
	require.Equal(t, testRefresh, refresh)

	raw, err := backend.Get(storage.KeyUser)
	require.NoError(t, err)
	var saved session.Principal
	require.NoError(t, json.Unmarshal([]byte(raw), &saved))
	require.Equal(t, int64(7), saved.ID)
	require.Equal(t, []string{"VENTA_VER", "VENTA_CREAR"}, saved.Permisos)
}

func TestLoginFailureLeavesStoreUnauthenticated(t *testing.T) {
	store, backend := newTestStore(t, &fakeAuthAPI{err: &api.Error{Status: 401, Message: "Credenciales inválidas"}})

	_, err := store.Login(context.Background(), api.LoginRequest{Email: testEmail, Password: "wrong"})
	require.Error(t, err)
	require.True(t, api.IsStatus(err, 401))
	require.False(t, store.IsAuthenticated())

	_, err = backend.Get(storage.KeyToken)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRegisterPersistsSession(t *testing.T) {
	store, _ := newTestStore(t, &fakeAuthAPI{resp: authResponse()})

	principal, err := store.Register(context.Background(), api.RegisterRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.True(t, store.IsAuthenticated())
	require.Equal(t, "Ana", principal.Nombre)
}

func TestRestoreValidSession(t *testing.T) {
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set(storage.KeyToken, testToken))
	raw, err := json.Marshal(&session.Principal{ID: 7, Email: testEmail, Roles: []string{"ADMIN"}})
	require.NoError(t, err)
	require.NoError(t, backend.Set(storage.KeyUser, string(raw)))

	store := session.NewStore(backend)
	require.True(t, store.IsAuthenticated())
	require.Equal(t, testEmail, store.Principal().Email)
}

func TestRestoreCorruptPrincipalClearsEverything(t *testing.T) {
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set(storage.KeyToken, testToken))
	require.NoError(t, backend.Set(storage.KeyUser, "{not json"))

	store := session.NewStore(backend)
	require.False(t, store.IsAuthenticated())

	_, err := backend.Get(storage.KeyToken)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = backend.Get(storage.KeyUser)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRestorePrincipalMissingEmailIsRejected(t *testing.T) {
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set(storage.KeyToken, testToken))
	raw, err := json.Marshal(&session.Principal{ID: 7})
	require.NoError(t, err)
	require.NoError(t, backend.Set(storage.KeyUser, string(raw)))

	store := session.NewStore(backend)
	require.False(t, store.IsAuthenticated())
	_, ok := store.Token()
	require.False(t, ok)
}

func TestRestoreDanglingTokenIsCleared(t *testing.T) {
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set(storage.KeyToken, testToken))

	store := session.NewStore(backend)
	require.False(t, store.IsAuthenticated())
	_, err := backend.Get(storage.KeyToken)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLogoutClearsAndNavigatesOnce(t *testing.T) {
	store, backend := newTestStore(t, &fakeAuthAPI{resp: authResponse()})
	nav := &fakeNavigator{current: "/ventas"}
	store.BindNavigator(nav)

	_, err := store.Login(context.Background(), api.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	store.Logout()
	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.Principal())
	require.Len(t, nav.redirects, 1)

	_, err = backend.Get(storage.KeyRefreshToken)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLogoutFromLoginViewDoesNotNavigate(t *testing.T) {
	store, _ := newTestStore(t, nil)
	nav := &fakeNavigator{current: session.LoginPath + "?returnUrl=%2Fventas"}
	store.BindNavigator(nav)

	store.Logout()
	require.Empty(t, nav.redirects)
}

func TestLogoutIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t, nil)
	nav := &fakeNavigator{current: "/dashboard"}
	store.BindNavigator(nav)

	store.Logout()
	store.Logout()
	require.False(t, store.IsAuthenticated())
	// The second call sees the login view already active.
	require.Len(t, nav.redirects, 1)
}

func TestInvalidateSessionBehavesLikeLogout(t *testing.T) {
	store, _ := newTestStore(t, &fakeAuthAPI{resp: authResponse()})
	nav := &fakeNavigator{current: "/usuarios"}
	store.BindNavigator(nav)

	_, err := store.Login(context.Background(), api.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	store.InvalidateSession()
	require.False(t, store.IsAuthenticated())
	require.Len(t, nav.redirects, 1)
}

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name      string
		principal *session.Principal
		code      string
		want      bool
	}{
		{"empty code always allowed", &session.Principal{ID: 1, Email: testEmail}, "", true},
		{"admin role overrides", &session.Principal{ID: 1, Email: testEmail, Roles: []string{"ADMIN"}}, "VENTA_ELIMINAR", true},
		{"granted code", &session.Principal{ID: 1, Email: testEmail, Permisos: []string{"VENTA_VER"}}, "VENTA_VER", true},
		{"missing code", &session.Principal{ID: 1, Email: testEmail, Permisos: []string{"VENTA_VER"}}, "VENTA_ELIMINAR", false},
		{"nil principal denies", nil, "VENTA_VER", false},
		{"nil principal allows empty code", nil, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.principal.HasPermission(tc.code))
		})
	}
}

func TestHasPermissionThroughStore(t *testing.T) {
	store, _ := newTestStore(t, &fakeAuthAPI{resp: authResponse()})
	_, err := store.Login(context.Background(), api.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	require.True(t, store.HasPermission("VENTA_VER"))
	require.False(t, store.HasPermission("USUARIO_ELIMINAR"))
	require.True(t, store.HasRole("TRABAJADOR"))
	require.False(t, store.HasRole("ADMIN"))
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": testEmail,
		"exp": exp.Unix(),
	}).SignedString([]byte("clave-de-firma"))
	require.NoError(t, err)

	resp := authResponse()
	resp.Token = signed
	store, _ := newTestStore(t, &fakeAuthAPI{resp: resp})
	_, err = store.Login(context.Background(), api.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	got, ok := store.TokenExpiry()
	require.True(t, ok)
	require.True(t, exp.Equal(got))
}

func TestTokenExpiryWithoutToken(t *testing.T) {
	store, _ := newTestStore(t, nil)
	_, ok := store.TokenExpiry()
	require.False(t, ok)
}
