package rcrt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 30 * time.Second

// Object is an opaque JSON object payload. Breadcrumb bodies, agent records
// and API responses are all passed through in this shape without modeling.
type Object = map[string]any

// Array is an opaque JSON array payload, as returned by list endpoints.
type Array = []any

// Client talks to an rcrt server. Construct with New; the zero value is not
// usable.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client during construction.
type Option func(*Client)

// WithToken sets a static bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout bounds each request. The default is 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client entirely. The caller
// then owns timeout configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New returns a client for the server at baseURL. Trailing slashes are
// stripped so request paths never double up.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewIdempotencyKey returns a fresh key for CreateBreadcrumb dedupe.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// do performs one request and returns the raw response body. A non-nil body
// is JSON-encoded; extra headers are applied after the common ones. Statuses
// of 400 and above come back as *HTTPError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, extra http.Header) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for name, values := range extra {
		for _, v := range values {
			req.Header.Set(name, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}

// object runs do and decodes the response as a JSON object.
func (c *Client) object(ctx context.Context, method, path string, body any, extra http.Header) (Object, error) {
	respBody, err := c.do(ctx, method, path, nil, body, extra)
	if err != nil {
		return nil, err
	}
	var out Object
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return out, nil
}

// Health pings GET /health and returns the raw response text.
func (c *Client) Health(ctx context.Context) (string, error) {
	respBody, err := c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
	if err != nil {
		return "", err
	}
	return string(respBody), nil
}

// CreateBreadcrumb posts body as a new breadcrumb. A non-empty
// idempotencyKey is sent in the Idempotency-Key header so the server can
// dedupe retried creations; pass "" to omit it.
func (c *Client) CreateBreadcrumb(ctx context.Context, body Object, idempotencyKey string) (Object, error) {
	var extra http.Header
	if idempotencyKey != "" {
		extra = http.Header{"Idempotency-Key": []string{idempotencyKey}}
	}
	return c.object(ctx, http.MethodPost, "/breadcrumbs", body, extra)
}

// GetBreadcrumb fetches one breadcrumb by id.
func (c *Client) GetBreadcrumb(ctx context.Context, id string) (Object, error) {
	return c.object(ctx, http.MethodGet, "/breadcrumbs/"+id, nil, nil)
}

// GetBreadcrumbFull fetches the expanded view of a breadcrumb.
func (c *Client) GetBreadcrumbFull(ctx context.Context, id string) (Object, error) {
	return c.object(ctx, http.MethodGet, "/breadcrumbs/"+id+"/full", nil, nil)
}

// ListBreadcrumbs lists breadcrumbs, filtered by tag when tag is non-empty.
func (c *Client) ListBreadcrumbs(ctx context.Context, tag string) (Array, error) {
	var query url.Values
	if tag != "" {
		query = url.Values{"tag": []string{tag}}
	}
	respBody, err := c.do(ctx, http.MethodGet, "/breadcrumbs", query, nil, nil)
	if err != nil {
		return nil, err
	}
	var out Array
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return out, nil
}

// UpdateBreadcrumb patches a breadcrumb. When expectedVersion is non-nil the
// update is conditional via If-Match; a stale version surfaces as whatever
// status the server answers with (typically 412).
func (c *Client) UpdateBreadcrumb(ctx context.Context, id string, update Object, expectedVersion *int) (Object, error) {
	var extra http.Header
	if expectedVersion != nil {
		extra = http.Header{"If-Match": []string{fmt.Sprintf("\"%d\"", *expectedVersion)}}
	}
	return c.object(ctx, http.MethodPatch, "/breadcrumbs/"+id, update, extra)
}

// DeleteBreadcrumb removes a breadcrumb by id.
func (c *Client) DeleteBreadcrumb(ctx context.Context, id string) (Object, error) {
	return c.object(ctx, http.MethodDelete, "/breadcrumbs/"+id, nil, nil)
}

// RegisterAgent registers agentID with the given role set.
func (c *Client) RegisterAgent(ctx context.Context, agentID string, roles []string) (Object, error) {
	return c.object(ctx, http.MethodPost, "/agents/"+agentID, Object{"roles": roles}, nil)
}

// SetAgentSecret sets the shared secret used to sign webhook deliveries to
// the agent.
func (c *Client) SetAgentSecret(ctx context.Context, agentID, secret string) (Object, error) {
	return c.object(ctx, http.MethodPost, "/agents/"+agentID+"/secret", Object{"secret": secret}, nil)
}

// RegisterWebhook adds a delivery URL to the agent's webhook list.
func (c *Client) RegisterWebhook(ctx context.Context, agentID, webhookURL string) (Object, error) {
	return c.object(ctx, http.MethodPost, "/agents/"+agentID+"/webhooks", Object{"url": webhookURL}, nil)
}

// selectorPayload always carries all three keys, null when unset, matching
// the wire shape the server expects.
type selectorPayload struct {
	AnyTags    []string `json:"any_tags"`
	AllTags    []string `json:"all_tags"`
	SchemaName *string  `json:"schema_name"`
}

// CreateSelector creates a subscription selector matching breadcrumbs that
// carry any of anyTags, all of allTags, and (when schemaName is non-empty)
// the named schema.
func (c *Client) CreateSelector(ctx context.Context, anyTags, allTags []string, schemaName string) (Object, error) {
	payload := selectorPayload{AnyTags: anyTags, AllTags: allTags}
	if schemaName != "" {
		payload.SchemaName = &schemaName
	}
	return c.object(ctx, http.MethodPost, "/subscriptions/selectors", payload, nil)
}
