package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/barberiapp/admin-cli/api"
	"github.com/barberiapp/admin-cli/session/storage"
)

// LoginPath is the unauthenticated entry route.
const LoginPath = "/auth/login"

// AuthAPI is the slice of the backend client the store needs. Bound after
// construction because the HTTP client's transport chain reads the token
// back out of this store.
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
}

// Navigator moves the UI between views. The view router implements it;
// the store only ever asks for a transition to the login view.
type Navigator interface {
	CurrentPath() string
	NavigateLogin(returnURL string)
}

// Store owns the session state: the bearer token, the refresh token and
// the principal snapshot. It is the single writer of the persisted
// entries; guards, transports and views read through it and never touch
// storage directly.
type Store struct {
	mu        sync.RWMutex
	backend   storage.Backend
	auth      AuthAPI
	navigator Navigator
	log       zerolog.Logger

	principal     *Principal
	authenticated bool
}

// StoreOption modifies a Store during construction.
type StoreOption func(*Store)

func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates the session store over the given backend and restores
// any persisted session. A corrupt or incomplete record is cleared
// silently and the store starts unauthenticated.
func NewStore(backend storage.Backend, options ...StoreOption) *Store {
	s := &Store{
		backend: backend,
		log:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	s.restore()
	return s
}

// BindAuth attaches the backend auth endpoints.
func (s *Store) BindAuth(auth AuthAPI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = auth
}

// BindNavigator attaches the view router used for logout redirects.
func (s *Store) BindNavigator(nav Navigator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigator = nav
}

// Login authenticates against the backend and persists the session on
// success. A failure leaves any prior state untouched; the returned error
// carries the server message when one was provided.
func (s *Store) Login(ctx context.Context, credentials api.LoginRequest) (*Principal, error) {
	s.mu.RLock()
	auth := s.auth
	s.mu.RUnlock()
	if auth == nil {
		return nil, errors.New("[Store.Login] auth API not bound")
	}

	s.log.Debug().Str("email", credentials.Email).Msg("attempting login")
	resp, err := auth.Login(ctx, credentials)
	if err != nil {
		s.log.Warn().Err(err).Msg("login failed")
		return nil, err
	}
	return s.saveAuthData(resp)
}

// Register creates an account and persists the session, same contract as
// Login.
func (s *Store) Register(ctx context.Context, data api.RegisterRequest) (*Principal, error) {
	s.mu.RLock()
	auth := s.auth
	s.mu.RUnlock()
	if auth == nil {
		return nil, errors.New("[Store.Register] auth API not bound")
	}

	resp, err := auth.Register(ctx, data)
	if err != nil {
		return nil, err
	}
	return s.saveAuthData(resp)
}

// Logout clears the persisted session and navigates to the login view
// unless the UI is already there. Safe to call repeatedly.
func (s *Store) Logout() {
	s.log.Debug().Msg("logout")
	s.ClearAuthData()

	s.mu.RLock()
	nav := s.navigator
	s.mu.RUnlock()
	if nav == nil {
		return
	}
	if !strings.Contains(nav.CurrentPath(), LoginPath) {
		nav.NavigateLogin("")
	}
}

// InvalidateSession implements api.SessionInvalidator: the transport
// calls it when the server answers 401 on a protected endpoint.
func (s *Store) InvalidateSession() {
	s.Logout()
}

// ClearAuthData removes the token, refresh token and principal together
// without navigating. Used when an inconsistent session is detected, so a
// redirect loop cannot form.
func (s *Store) ClearAuthData() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Store) clearLocked() {
	_ = s.backend.Delete(storage.KeyToken)
	_ = s.backend.Delete(storage.KeyRefreshToken)
	_ = s.backend.Delete(storage.KeyUser)
	s.principal = nil
	s.authenticated = false
	s.log.Debug().Msg("auth data cleared")
}

// Token returns the persisted bearer token, if any. Implements
// api.TokenSource.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, err := s.backend.Get(storage.KeyToken)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// RefreshToken returns the stored refresh token. It is persisted for
// parity with the backend response but never exchanged; no refresh flow
// exists.
func (s *Store) RefreshToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, err := s.backend.Get(storage.KeyRefreshToken)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Principal returns the current principal, or nil when unauthenticated.
func (s *Store) Principal() *Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// HasPermission applies the permission rule to the current principal.
// Without a principal only the empty code is allowed.
func (s *Store) HasPermission(code string) bool {
	return s.Principal().HasPermission(code)
}

func (s *Store) HasRole(role string) bool {
	return s.Principal().HasRole(role)
}

// TokenExpiry decodes the bearer token without verifying it and returns
// its expiry claim. Display only; the server remains the authority on
// token validity.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token, ok := s.Token()
	if !ok {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Store) saveAuthData(resp *api.AuthResponse) (*Principal, error) {
	principal := &Principal{
		ID:       resp.ID,
		Email:    resp.Email,
		Nombre:   resp.Nombre,
		Apellido: resp.Apellido,
		Roles:    resp.Roles,
		Permisos: resp.Permisos,
	}

	raw, err := json.Marshal(principal)
	if err != nil {
		return nil, errors.Wrap(err, "[Store.saveAuthData] marshal principal")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Set(storage.KeyToken, resp.Token); err != nil {
		return nil, errors.Wrap(err, "[Store.saveAuthData] persist token")
	}
	if err := s.backend.Set(storage.KeyRefreshToken, resp.RefreshToken); err != nil {
		return nil, errors.Wrap(err, "[Store.saveAuthData] persist refresh token")
	}
	if err := s.backend.Set(storage.KeyUser, string(raw)); err != nil {
		return nil, errors.Wrap(err, "[Store.saveAuthData] persist principal")
	}

	s.principal = principal
	s.authenticated = true
	s.log.Info().Int64("userId", principal.ID).Str("email", principal.Email).Msg("session saved")
	return principal, nil
}

// restore loads the persisted session at startup. The principal is
// accepted only when it deserializes cleanly and carries id and email;
// anything else clears storage and leaves the store unauthenticated.
func (s *Store) restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, tokenErr := s.backend.Get(storage.KeyToken)
	rawUser, userErr := s.backend.Get(storage.KeyUser)

	if tokenErr != nil || token == "" || userErr != nil || rawUser == "" {
		if token != "" || rawUser != "" {
			// One half of the session without the other: clear the
			// dangling entry rather than restoring a broken session.
			s.clearLocked()
			return
		}
		s.principal = nil
		s.authenticated = false
		return
	}

	var principal Principal
	if err := json.Unmarshal([]byte(rawUser), &principal); err != nil {
		s.log.Warn().Err(err).Msg("stored principal unparseable, clearing session")
		s.clearLocked()
		return
	}
	if !principal.Valid() {
		s.log.Warn().Msg("stored principal missing id or email, clearing session")
		s.clearLocked()
		return
	}

	s.principal = &principal
	s.authenticated = true
	s.log.Debug().Int64("userId", principal.ID).Msg("session restored")
}
