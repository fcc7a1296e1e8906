package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/barberiapp/admin-cli/api"
)

type staticTokenSource struct {
	token string
}

var _ api.TokenSource = (*staticTokenSource)(nil)

func (s *staticTokenSource) Token() (string, bool) {
	return s.token, s.token != ""
}

type recordingInvalidator struct {
	calls int
}

var _ api.SessionInvalidator = (*recordingInvalidator)(nil)

func (r *recordingInvalidator) InvalidateSession() {
	r.calls++
}

func TestAuthTransportAttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := api.NewHTTPClient(&staticTokenSource{token: "tok-123"}, &recordingInvalidator{}, zerolog.Nop())
	resp, err := client.Get(server.URL + "/usuarios")
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, "Bearer tok-123", gotAuth)
	require.NotEmpty(t, gotRequestID)
}

func TestAuthTransportSkipsAuthEndpoints(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := api.NewHTTPClient(&staticTokenSource{token: "tok-123"}, &recordingInvalidator{}, zerolog.Nop())
	resp, err := client.Post(server.URL+"/auth/login", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	require.Empty(t, gotAuth)
	require.NotEmpty(t, gotRequestID)
}

func TestAuthTransportWithoutTokenSendsNoBearer(t *testing.T) {
	var sawAuthHeader bool
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := api.NewHTTPClient(&staticTokenSource{}, &recordingInvalidator{}, zerolog.Nop())
	resp, err := client.Get(server.URL + "/usuarios")
	require.NoError(t, err)
	resp.Body.Close()

	require.False(t, sawAuthHeader)
	require.NotEmpty(t, gotRequestID)
}

func TestErrorTransportInvalidatesOn401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	invalidator := &recordingInvalidator{}
	client := api.NewHTTPClient(&staticTokenSource{token: "expired"}, invalidator, zerolog.Nop())
	resp, err := client.Get(server.URL + "/usuarios")
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 1, invalidator.calls)
}

func TestErrorTransportLeaves403And500Alone(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		invalidator := &recordingInvalidator{}
		client := api.NewHTTPClient(&staticTokenSource{token: "tok"}, invalidator, zerolog.Nop())
		resp, err := client.Get(server.URL + "/usuarios")
		require.NoError(t, err)
		resp.Body.Close()
		server.Close()

		require.Equal(t, status, resp.StatusCode)
		require.Zero(t, invalidator.calls)
	}
}
