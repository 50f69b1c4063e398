package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/armonia-apps/msa-client-api/internal/models"
	"github.com/armonia-apps/msa-client-api/pkg/config"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
)

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := New(config.Backend{URL: srv.URL, RequestTimeout: 2 * time.Second}, tokens, zap.NewNop(), opts...)
	return client, srv
}

func TestBearerTokenAttached(t *testing.T) {
	var got string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"u1","ruolo":"allievo","email":"s@example.com","attivo":true}`)) //nolint:errcheck
	}), StaticToken("session-token"))

	_, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", got)
}

func TestNoHeaderWithoutToken(t *testing.T) {
	var got string
	var present bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, present = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"t","user":{"id":"u1","ruolo":"allievo"}}`)) //nolint:errcheck
	}), StaticToken(""))

	_, err := client.Login(context.Background(), "s@example.com", "secret1")
	require.NoError(t, err)
	assert.False(t, present, "no Authorization header without a token")
	assert.Empty(t, got)
}

func TestBackendDetailPreserved(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Credenziali non valide"}`)) //nolint:errcheck
	}), StaticToken(""))

	_, err := client.Login(context.Background(), "s@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrUnauthorized))
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Credenziali non valide", appErr.Message)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   *appErrors.Error
	}{
		{status: http.StatusForbidden, want: appErrors.ErrForbidden},
		{status: http.StatusNotFound, want: appErrors.ErrNotFound},
		{status: http.StatusBadRequest, want: appErrors.ErrValidation},
		{status: http.StatusConflict, want: appErrors.ErrConflict},
		{status: http.StatusInternalServerError, want: appErrors.ErrBackend},
	}
	for _, tc := range cases {
		status := tc.status
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}), StaticToken("tok"))

		_, err := client.GetUser(context.Background(), "u1")
		require.Error(t, err)
		assert.True(t, appErrors.HasCode(err, tc.want), "status %d should map to %s", tc.status, tc.want.Code)
		assert.Equal(t, tc.status, appErrors.FromError(err).Status, "original status must pass through")
	}
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(config.Backend{URL: srv.URL, RequestTimeout: time.Second}, StaticToken("tok"), zap.NewNop())
	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrUnreachable))
}

func TestTimeoutSurfacesAsNotResponding(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}), StaticToken("tok"))
	client.http.Timeout = 20 * time.Millisecond

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrUnreachable))
	assert.Contains(t, appErrors.FromError(err).Message, "not responding")
}

func TestCancellationKeepsItsIdentity(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}), StaticToken("tok"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Me(ctx)
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "cancelled")
}

func TestObserverSeesBackendCalls(t *testing.T) {
	var method, path string
	var status int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`)) //nolint:errcheck
	}), StaticToken("tok"), WithObserver(func(m, p string, s int, d time.Duration) {
		method, path, status = m, p, s
	}))

	_, err := client.ListUsers(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, method)
	assert.Equal(t, "/utenti", path)
	assert.Equal(t, http.StatusOK, status)
}

func TestQueryFiltersEncoded(t *testing.T) {
	var query string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`)) //nolint:errcheck
	}), StaticToken("tok"))

	active := true
	role := models.RoleTeacher
	_, err := client.ListUsers(context.Background(), models.UserFilter{Role: &role, Active: &active})
	require.NoError(t, err)
	assert.Contains(t, query, "ruolo=insegnante")
	assert.Contains(t, query, "attivo=true")
}
