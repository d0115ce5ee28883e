package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/CazouVilela/webhook/internal/types"
)

// HTTPHelper provides a robust way to make HTTP requests in tests.
// It enforces error checking and provides a fluent API for building requests.
type HTTPHelper struct {
	t   *testing.T
	app *fiber.App
}

// NewHTTPHelper creates a new test helper for a given Fiber app.
func NewHTTPHelper(t *testing.T, app *fiber.App) *HTTPHelper {
	require.NotNil(t, app, "Fiber app provided to HTTPHelper cannot be nil")
	return &HTTPHelper{
		t:   t,
		app: app,
	}
}

// Request represents a test request under construction.
type Request struct {
	helper    *HTTPHelper
	method    string
	path      string
	bodyBytes []byte
	headers   http.Header
}

// NewRequest begins building a new test request. It centralizes body marshaling.
func (h *HTTPHelper) NewRequest(method, path string, body interface{}) *Request {
	var bodyBytes []byte
	if body != nil {
		switch b := body.(type) {
		case []byte:
			bodyBytes = b
		case string:
			bodyBytes = []byte(b)
		default:
			jsonBytes, err := json.Marshal(body)
			require.NoError(h.t, err, "Failed to marshal request body to JSON")
			bodyBytes = jsonBytes
		}
	}

	req := &Request{
		helper:    h,
		method:    method,
		path:      path,
		bodyBytes: bodyBytes,
		headers:   make(http.Header),
	}

	if body != nil {
		req.WithHeader(types.HeaderContentType, "application/json")
	}

	return req
}

// WithHeader adds a header to the request.
func (r *Request) WithHeader(key, value string) *Request {
	r.headers.Add(key, value)
	return r
}

// WithSecret adds the shared webhook secret header.
func (r *Request) WithSecret(token string) *Request {
	return r.WithHeader(types.HeaderWebhookSecret, token)
}

// Do executes the request against the Fiber app and returns the response.
func (r *Request) Do() *http.Response {
	var body io.Reader
	if r.bodyBytes != nil {
		body = bytes.NewReader(r.bodyBytes)
	}
	req := httptest.NewRequest(r.method, r.path, body)
	for key, values := range r.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := r.helper.app.Test(req)
	require.NoError(r.helper.t, err, "app.Test failed for %s %s", r.method, r.path)
	return resp
}

// DecodeJSON decodes the response body into out and closes the body.
func (h *HTTPHelper) DecodeJSON(resp *http.Response, out interface{}) {
	defer resp.Body.Close()
	require.NoError(h.t, json.NewDecoder(resp.Body).Decode(out), "failed to decode response body")
}
