package router_test

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barberiapp/admin-cli/internal/errors"
	"github.com/barberiapp/admin-cli/router"
	"github.com/barberiapp/admin-cli/session"
	"github.com/barberiapp/admin-cli/session/storage"
)

const testToken = "header.payload.signature"

// authenticatedStore builds a store restored from a complete session.
func authenticatedStore(t *testing.T) (*session.Store, storage.Backend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Set(storage.KeyToken, testToken))
	raw, err := json.Marshal(&session.Principal{ID: 1, Email: "ana@barberia.cl"})
	require.NoError(t, err)
	require.NoError(t, backend.Set(storage.KeyUser, string(raw)))
	return session.NewStore(backend), backend
}

func emptyStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(storage.NewMemoryBackend())
}

func TestNavigateRunsProtectedViewWhenAuthenticated(t *testing.T) {
	store, _ := authenticatedStore(t)
	rt := router.New(store)

	var rendered bool
	rt.HandleProtected("/usuarios", func(ctx context.Context) error {
		rendered = true
		return nil
	})

	require.NoError(t, rt.Navigate(context.Background(), "/usuarios"))
	require.True(t, rendered)
	require.Equal(t, "/usuarios", rt.CurrentPath())
}

func TestNavigateRedirectsToLoginWithoutToken(t *testing.T) {
	store := emptyStore(t)
	rt := router.New(store)

	var rendered, loginShown bool
	rt.HandleProtected("/usuarios", func(ctx context.Context) error {
		rendered = true
		return nil
	})
	rt.Handle(session.LoginPath, func(ctx context.Context) error {
		loginShown = true
		return nil
	})

	require.NoError(t, rt.Navigate(context.Background(), "/usuarios"))
	require.False(t, rendered)
	require.True(t, loginShown)

	current, err := url.Parse(rt.CurrentPath())
	require.NoError(t, err)
	require.Equal(t, session.LoginPath, current.Path)
	require.Equal(t, "/usuarios", current.Query().Get("returnUrl"))
}

func TestNavigateWithDanglingTokenClearsSession(t *testing.T) {
	// A token without an authenticated principal can only come from written
	// storage bypassing the store; the guard clears it.
	backend := storage.NewMemoryBackend()
	store := session.NewStore(backend)
	require.NoError(t, backend.Set(storage.KeyToken, testToken))

	rt := router.New(store)
	rt.HandleProtected("/ventas", nil)

	require.NoError(t, rt.Navigate(context.Background(), "/ventas"))

	_, err := backend.Get(storage.KeyToken)
	require.ErrorIs(t, err, errors.ErrNotFound)
	require.Equal(t, "/ventas", router.ReturnURL(rt.CurrentPath()))
}

func TestNavigateUnknownRoute(t *testing.T) {
	store, _ := authenticatedStore(t)
	rt := router.New(store)

	err := rt.Navigate(context.Background(), "/inventado")
	require.ErrorIs(t, err, errors.ErrUnknownRoute)
}

func TestNavigateRootGoesToLogin(t *testing.T) {
	store := emptyStore(t)
	rt := router.New(store)

	var loginShown bool
	rt.Handle(session.LoginPath, func(ctx context.Context) error {
		loginShown = true
		return nil
	})

	require.NoError(t, rt.Navigate(context.Background(), "/"))
	require.True(t, loginShown)
	require.Equal(t, session.LoginPath, rt.CurrentPath())
}

func TestUnprotectedRouteSkipsGuard(t *testing.T) {
	store := emptyStore(t)
	rt := router.New(store)

	var rendered bool
	rt.Handle("/acerca", func(ctx context.Context) error {
		rendered = true
		return nil
	})

	require.NoError(t, rt.Navigate(context.Background(), "/acerca"))
	require.True(t, rendered)
}

func TestReturnURL(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"with hint", session.LoginPath + "?returnUrl=%2Fusuarios", "/usuarios"},
		{"without hint", session.LoginPath, router.DashboardPath},
		{"unparseable", "://", router.DashboardPath},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, router.ReturnURL(tc.target))
		})
	}
}

func TestLogoutRedirectLandsOnLoginView(t *testing.T) {
	store, _ := authenticatedStore(t)
	rt := router.New(store)
	store.BindNavigator(rt)
	rt.HandleProtected("/ventas", nil)

	require.NoError(t, rt.Navigate(context.Background(), "/ventas"))
	store.Logout()

	require.Equal(t, session.LoginPath, rt.CurrentPath())
	require.False(t, store.IsAuthenticated())
}
