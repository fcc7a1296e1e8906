package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// authEndpointMarker identifies calls to the authentication endpoints,
// which must never receive a bearer token: a stale token on /auth/login
// would be the previous user's.
const authEndpointMarker = "/auth/"

// TokenSource yields the current bearer token. The session store is the
// canonical implementation.
type TokenSource interface {
	Token() (string, bool)
}

// AuthTransport stamps every outbound request with an X-Request-Id and
// attaches the bearer token except on calls to the auth endpoints.
// Requests without a token still go out; rejecting them is the server's
// job.
type AuthTransport struct {
	Source TokenSource
	Base   http.RoundTripper
	Log    zerolog.Logger
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request is not mutated in place.
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-Id", uuid.New().String())

	token, ok := t.Source.Token()
	isAuthEndpoint := strings.Contains(req.URL.Path, authEndpointMarker)

	if ok && !isAuthEndpoint {
		clone.Header.Set("Authorization", "Bearer "+token)
	} else if !ok && !isAuthEndpoint {
		t.Log.Debug().Str("path", req.URL.Path).Msg("request without token to protected endpoint")
	}
	return t.base().RoundTrip(clone)
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// SessionInvalidator is called when the server reports the session is no
// longer valid. The session store implements it with a full clear plus a
// redirect to the login view.
type SessionInvalidator interface {
	InvalidateSession()
}

// ErrorTransport inspects failure responses. A 401 invalidates the
// session; 403 and 500 are logged for observability. The response is
// always handed back unchanged so the caller can react to the failure.
type ErrorTransport struct {
	Invalidator SessionInvalidator
	Base        http.RoundTripper
	Log         zerolog.Logger
}

func (t *ErrorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return resp, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		t.Log.Warn().Str("path", req.URL.Path).Msg("401 unauthorized, invalidating session")
		if t.Invalidator != nil {
			t.Invalidator.InvalidateSession()
		}
	case http.StatusForbidden:
		t.Log.Error().Str("path", req.URL.Path).Msg("403 forbidden")
	case http.StatusInternalServerError:
		t.Log.Error().Str("path", req.URL.Path).Msg("500 internal server error")
	}
	return resp, nil
}

func (t *ErrorTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// NewHTTPClient chains the two transport stages the way the backend
// expects them: token attachment on the way out, failure inspection on the
// way back.
func NewHTTPClient(source TokenSource, invalidator SessionInvalidator, log zerolog.Logger) *http.Client {
	return &http.Client{
		Transport: &AuthTransport{
			Source: source,
			Log:    log,
			Base: &ErrorTransport{
				Invalidator: invalidator,
				Log:         log,
			},
		},
	}
}
