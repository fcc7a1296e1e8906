// Package router is the view navigation layer: named views, a guard in
// front of the protected ones, and the redirect-to-login discipline with
// a return-path hint.
package router

import (
	"context"
	"net/url"
	"sync"

	"github.com/rs/zerolog"

	"github.com/barberiapp/admin-cli/internal/errors"
	"github.com/barberiapp/admin-cli/session"
)

// DashboardPath is the default authenticated landing view.
const DashboardPath = "/dashboard"

// View renders a single screen.
type View func(ctx context.Context) error

type route struct {
	view      View
	protected bool
}

// Router dispatches navigation requests, applying the auth guard before
// any protected view is entered.
type Router struct {
	store  *session.Store
	log    zerolog.Logger
	routes map[string]route

	mu      sync.RWMutex
	current string
}

// Option modifies a Router during construction.
type Option func(*Router)

func WithLogger(log zerolog.Logger) Option {
	return func(r *Router) {
		r.log = log
	}
}

func New(store *session.Store, options ...Option) *Router {
	r := &Router{
		store:   store,
		log:     zerolog.Nop(),
		routes:  make(map[string]route),
		current: "/",
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Handle registers an unauthenticated view.
func (r *Router) Handle(path string, view View) {
	r.routes[path] = route{view: view}
}

// HandleProtected registers a view behind the auth guard.
func (r *Router) HandleProtected(path string, view View) {
	r.routes[path] = route{view: view, protected: true}
}

// CurrentPath returns the path of the active view, query included.
func (r *Router) CurrentPath() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// NavigateLogin moves to the login view, carrying the originally
// requested path as a returnUrl hint. Implements session.Navigator.
func (r *Router) NavigateLogin(returnURL string) {
	target := session.LoginPath
	if returnURL != "" {
		target += "?returnUrl=" + url.QueryEscape(returnURL)
	}
	r.setCurrent(target)
	r.log.Debug().Str("target", target).Msg("redirected to login")
}

// Navigate enters the view registered for target. Protected views go
// through the guard first; when it denies, the navigation lands on the
// login view instead and no error is returned. The redirect is the
// outcome.
func (r *Router) Navigate(ctx context.Context, target string) error {
	parsed, err := url.Parse(target)
	if err != nil {
		return errors.Wrapf(err, "[Router.Navigate] parse %q", target)
	}

	// The root path redirects to login, the unauthenticated entry.
	if parsed.Path == "" || parsed.Path == "/" {
		r.NavigateLogin("")
		return r.runView(ctx, session.LoginPath)
	}

	entry, ok := r.routes[parsed.Path]
	if !ok {
		return errors.Wrapf(errors.ErrUnknownRoute, "[Router.Navigate] %q", parsed.Path)
	}

	if entry.protected && !r.allow(target) {
		return r.runView(ctx, session.LoginPath)
	}

	r.setCurrent(target)
	if entry.view == nil {
		return nil
	}
	return entry.view(ctx)
}

// allow applies the guard decision table. It redirects to login (with the
// requested path as returnUrl) on denial, clearing the session first when
// a token exists without an authenticated principal.
func (r *Router) allow(target string) bool {
	_, hasToken := r.store.Token()
	authenticated := r.store.IsAuthenticated()

	if hasToken && authenticated {
		return true
	}

	if hasToken {
		r.log.Warn().Str("target", target).Msg("token present but session not authenticated, clearing")
		// Clear without navigating; the single redirect below is the only
		// navigation side effect.
		r.store.ClearAuthData()
	}

	r.NavigateLogin(target)
	return false
}

func (r *Router) runView(ctx context.Context, path string) error {
	entry, ok := r.routes[path]
	if !ok || entry.view == nil {
		return nil
	}
	return entry.view(ctx)
}

func (r *Router) setCurrent(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = path
}

// ReturnURL extracts the returnUrl hint from a login path, defaulting to
// the dashboard.
func ReturnURL(loginTarget string) string {
	parsed, err := url.Parse(loginTarget)
	if err != nil {
		return DashboardPath
	}
	if ret := parsed.Query().Get("returnUrl"); ret != "" {
		return ret
	}
	return DashboardPath
}
