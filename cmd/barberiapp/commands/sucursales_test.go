package commands

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/internal/errors"
	"github.com/barberiapp/admin-cli/router"
	"github.com/barberiapp/admin-cli/session"
	"github.com/barberiapp/admin-cli/session/storage"
)

// newTestApp wires an App against the given backend URL. With
// authenticated set, a complete session is seeded before the store
// restores it.
func newTestApp(t *testing.T, baseURL string, authenticated bool) *App {
	t.Helper()

	backend := storage.NewMemoryBackend()
	if authenticated {
		require.NoError(t, backend.Set(storage.KeyToken, "header.payload.signature"))
		raw, err := json.Marshal(&session.Principal{ID: 1, Email: "ana@barberia.cl", Permisos: []string{"SUCURSAL_VER"}})
		require.NoError(t, err)
		require.NoError(t, backend.Set(storage.KeyUser, string(raw)))
	}
	store := session.NewStore(backend)

	client := api.New(baseURL,
		api.WithHTTPClient(api.NewHTTPClient(store, store, zerolog.Nop())),
	)
	store.BindAuth(client.Auth())

	rt := router.New(store)
	store.BindNavigator(rt)
	rt.Handle(session.LoginPath, func(ctx context.Context) error { return nil })

	return &App{Store: store, Client: client, Router: rt}
}

func runSubcommand(t *testing.T, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	sub, remaining, err := cmd.Find(args)
	require.NoError(t, err)
	sub.SetContext(context.Background())

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	runErr := sub.RunE(sub, remaining)
	w.Close()
	os.Stdout = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestSucursalesListShowsAdministrator(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []api.Sucursal{{
				ID:            3,
				Nombre:        "Centro",
				Direccion:     "Av. Principal 123",
				Administrador: &api.UsuarioBasic{ID: 9, Nombre: "Ana", Apellido: "Rojas"},
			}},
		})
	}))
	defer server.Close()

	appCtx = newTestApp(t, server.URL, true)
	out, err := runSubcommand(t, sucursalesCmd(), []string{"list"})
	require.NoError(t, err)
	require.Equal(t, "/sucursales/todas", gotPath)
	require.Contains(t, out, "Centro")
	require.Contains(t, out, "Ana Rojas")
}

func TestSucursalesListWithoutAdministrator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []api.Sucursal{{ID: 4, Nombre: "Norte", Direccion: "Calle 2"}},
		})
	}))
	defer server.Close()

	appCtx = newTestApp(t, server.URL, true)
	out, err := runSubcommand(t, sucursalesCmd(), []string{"list"})
	require.NoError(t, err)
	require.Contains(t, out, "sin administrador")
}

func TestSucursalesListUnauthenticatedRequiresLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the backend must not be reached without a session")
	}))
	defer server.Close()

	appCtx = newTestApp(t, server.URL, false)
	_, err := runSubcommand(t, sucursalesCmd(), []string{"list"})
	require.ErrorIs(t, err, errors.ErrLoginRequired)
}

func TestSucursalesDeleteRequiresPermission(t *testing.T) {
	appCtx = newTestApp(t, "http://unused", true)
	_, err := runSubcommand(t, sucursalesCmd(), []string{"rm", "3"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "SUCURSAL_ELIMINAR")
}
