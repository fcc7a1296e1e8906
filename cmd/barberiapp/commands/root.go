package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/internal/config"
	"github.com/barberiapp/admin-cli/internal/errors"
	"github.com/barberiapp/admin-cli/router"
	"github.com/barberiapp/admin-cli/session"
	"github.com/barberiapp/admin-cli/session/storage"
)

// App holds the wired collaborators the commands work against.
type App struct {
	Config config.Config
	Log    zerolog.Logger
	Store  *session.Store
	Client *api.Client
	Router *router.Router
}

var (
	apiURL  string
	dataDir string
	appCtx  *App
)

func Execute() error {
	root := &cobra.Command{
		Use:           "barberiapp",
		Short:         "Administración de BarberiApp desde la terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			appCtx = app
			return nil
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (default from config)")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "session data dir (default ~/.barberiapp)")

	root.AddCommand(
		loginCmd(), registerCmd(), logoutCmd(), whoamiCmd(),
		usuariosCmd(), rolesCmd(), permisosCmd(), sucursalesCmd(),
		clientesCmd(), productosCmd(), serviciosCmd(), ventasCmd(),
		metodosPagoCmd(), configuracionCmd(), contabilidadCmd(),
	)
	return root.Execute()
}

func newApp() (*App, error) {
	cfg := config.New()

	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	dir := cfg.GetDataDir()
	if dataDir != "" {
		dir = dataDir
	}

	backend, err := newBackend(cfg, dir)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(backend, session.WithLogger(log))

	base := cfg.GetAPIURL()
	if apiURL != "" {
		base = apiURL
	}
	client := api.New(base,
		api.WithHTTPClient(api.NewHTTPClient(store, store, log)),
		api.WithLogger(log),
	)
	store.BindAuth(client.Auth())

	rt := router.New(store, router.WithLogger(log))
	store.BindNavigator(rt)
	rt.Handle(session.LoginPath, func(ctx context.Context) error {
		fmt.Println("Sesión no iniciada. Ejecuta `barberiapp login` para continuar.")
		return nil
	})
	rt.HandleProtected(router.DashboardPath, nil)

	return &App{
		Config: cfg,
		Log:    log,
		Store:  store,
		Client: client,
		Router: rt,
	}, nil
}

func newBackend(cfg config.Config, dir string) (storage.Backend, error) {
	switch cfg.GetSessionBackend() {
	case "memory":
		return storage.NewMemoryBackend(), nil
	case "redis":
		return storage.NewRedisBackend(cfg.GetRedisAddr()), nil
	default:
		return storage.NewFileBackend(dir)
	}
}

// show routes a protected view through the navigation guard. When the
// guard redirects to login the command fails with a login-required error
// after the login view has rendered its hint.
func (a *App) show(ctx context.Context, path string, view router.View) error {
	a.Router.HandleProtected(path, view)
	if err := a.Router.Navigate(ctx, path); err != nil {
		return err
	}
	if strings.HasPrefix(a.Router.CurrentPath(), session.LoginPath) {
		return errors.ErrLoginRequired
	}
	return nil
}
