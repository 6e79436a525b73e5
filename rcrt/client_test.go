package rcrt

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture records the last request the test server saw.
type capture struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

// newCaptureServer answers every request with status and respBody, recording
// what arrived.
func newCaptureServer(t *testing.T, status int, respBody string) (*httptest.Server, *capture) {
	t.Helper()
	cap := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		cap.method = r.Method
		cap.path = r.URL.Path
		cap.query = r.URL.RawQuery
		cap.header = r.Header.Clone()
		cap.body = body
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return srv, cap
}

func TestNewStripsTrailingSlash(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusOK, `{}`)

	c := New(srv.URL + "/")
	_, err := c.GetBreadcrumb(context.Background(), "bc-1")
	require.NoError(t, err)

	assert.Equal(t, "/breadcrumbs/bc-1", cap.path)
}

func TestHealth(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusOK, "ok")

	c := New(srv.URL)
	text, err := c.Health(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ok", text)
	assert.Equal(t, http.MethodGet, cap.method)
	assert.Equal(t, "/health", cap.path)
}

func TestCreateBreadcrumbPassesBodyThrough(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusCreated, `{"id":"bc-1","version":1}`)

	c := New(srv.URL)
	body := Object{"title": "deploy note", "tags": []any{"ops", "deploy"}, "nested": Object{"n": float64(3)}}
	created, err := c.CreateBreadcrumb(context.Background(), body, "")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, cap.method)
	assert.Equal(t, "/breadcrumbs", cap.path)
	assert.JSONEq(t, `{"title":"deploy note","tags":["ops","deploy"],"nested":{"n":3}}`, string(cap.body))
	assert.Equal(t, "application/json", cap.header.Get("Content-Type"))
	assert.Empty(t, cap.header.Get("Idempotency-Key"))
	assert.Equal(t, "bc-1", created["id"])
}

func TestCreateBreadcrumbIdempotencyKey(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusCreated, `{}`)

	c := New(srv.URL)
	_, err := c.CreateBreadcrumb(context.Background(), Object{"a": float64(1)}, "k1")
	require.NoError(t, err)

	assert.Equal(t, "k1", cap.header.Get("Idempotency-Key"))
}

func TestBearerTokenOnlyWhenConfigured(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusOK, `{}`)

	_, err := New(srv.URL).GetBreadcrumb(context.Background(), "bc-1")
	require.NoError(t, err)
	assert.Empty(t, cap.header.Get("Authorization"))

	_, err = New(srv.URL, WithToken("tok")).GetBreadcrumb(context.Background(), "bc-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", cap.header.Get("Authorization"))
}

func TestListBreadcrumbsTagQuery(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusOK, `[{"id":"bc-1"}]`)

	c := New(srv.URL)
	out, err := c.ListBreadcrumbs(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "tag=x", cap.query)
	assert.Len(t, out, 1)

	_, err = c.ListBreadcrumbs(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, cap.query)
}

func TestUpdateBreadcrumbIfMatch(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusOK, `{"version":6}`)

	c := New(srv.URL)
	v := 5
	_, err := c.UpdateBreadcrumb(context.Background(), "bc-1", Object{"title": "edited"}, &v)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, cap.method)
	assert.Equal(t, "/breadcrumbs/bc-1", cap.path)
	assert.Equal(t, `"5"`, cap.header.Get("If-Match"))

	_, err = c.UpdateBreadcrumb(context.Background(), "bc-1", Object{"title": "edited"}, nil)
	require.NoError(t, err)
	_, present := cap.header["If-Match"]
	assert.False(t, present)
}

func TestErrorStatusesSurfaceAsHTTPError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusConflict, http.StatusInternalServerError} {
		srv, _ := newCaptureServer(t, status, `{"error":"nope"}`)

		_, err := New(srv.URL).GetBreadcrumb(context.Background(), "missing")
		require.Error(t, err)

		var httpErr *HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, status, httpErr.StatusCode)
		assert.Equal(t, `{"error":"nope"}`, httpErr.Body)
	}
}

func TestAgentEndpoints(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusOK, `{}`)
	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.RegisterAgent(ctx, "agent-1", []string{"curator", "emitter"})
	require.NoError(t, err)
	assert.Equal(t, "/agents/agent-1", cap.path)
	assert.JSONEq(t, `{"roles":["curator","emitter"]}`, string(cap.body))

	_, err = c.SetAgentSecret(ctx, "agent-1", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "/agents/agent-1/secret", cap.path)
	assert.JSONEq(t, `{"secret":"s3cret"}`, string(cap.body))

	_, err = c.RegisterWebhook(ctx, "agent-1", "http://localhost:8081/hook")
	require.NoError(t, err)
	assert.Equal(t, "/agents/agent-1/webhooks", cap.path)
	assert.JSONEq(t, `{"url":"http://localhost:8081/hook"}`, string(cap.body))
}

func TestCreateSelectorKeysAlwaysPresent(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusCreated, `{}`)
	c := New(srv.URL)

	_, err := c.CreateSelector(context.Background(), []string{"ops"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "/subscriptions/selectors", cap.path)
	assert.JSONEq(t, `{"any_tags":["ops"],"all_tags":null,"schema_name":null}`, string(cap.body))

	_, err = c.CreateSelector(context.Background(), nil, []string{"a", "b"}, "incident.v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"any_tags":null,"all_tags":["a","b"],"schema_name":"incident.v1"}`, string(cap.body))
}

func TestGetBreadcrumbFullAndDelete(t *testing.T) {
	srv, cap := newCaptureServer(t, http.StatusOK, `{"id":"bc-1"}`)
	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.GetBreadcrumbFull(ctx, "bc-1")
	require.NoError(t, err)
	assert.Equal(t, "/breadcrumbs/bc-1/full", cap.path)

	_, err = c.DeleteBreadcrumb(ctx, "bc-1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, cap.method)
	assert.Equal(t, "/breadcrumbs/bc-1", cap.path)
}

func TestNewIdempotencyKeyUnique(t *testing.T) {
	assert.NotEqual(t, NewIdempotencyKey(), NewIdempotencyKey())
}
