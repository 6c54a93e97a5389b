package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/noill-admin/internal/config"
	"github.com/jwalitptl/noill-admin/internal/router"
	"github.com/jwalitptl/noill-admin/pkg/logger"
	"github.com/jwalitptl/noill-admin/pkg/validator"
)

// Response is the JSON envelope every /api/v1 endpoint answers with.
type Response struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    json.RawMessage        `json:"data"`
	Errors  []validator.FieldError `json:"errors"`

	Code   int         `json:"-"`
	Header http.Header `json:"-"`
}

func (r Response) IsSuccess() bool {
	return r.Status == "success"
}

// DataInto decodes the data member into v.
func (r Response) DataInto(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, v))
}

func (r Response) GetString(t *testing.T, key string) string {
	t.Helper()
	var m map[string]interface{}
	r.DataInto(t, &m)
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: 8080, Mode: "test", RequestTimeout: 5 * time.Second},
		Log:       config.LogConfig{Level: "error", Format: "json"},
		RateLimit: config.RateLimitConfig{Enabled: false, RPS: 1, Burst: 1},
		CORS:      config.CORSConfig{Origins: []string{"*"}},
		Cache:     config.CacheConfig{Enabled: true, TTL: time.Minute, Cleanup: time.Minute},
		Metrics:   config.MetricsConfig{Enabled: true, Prefix: "noill", Path: "/metrics"},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *router.Router {
	t.Helper()
	r, err := newRouter(cfg, logger.Nop(), prometheus.NewRegistry())
	require.NoError(t, err)
	return r
}

// MakeRequest sends a JSON request to the router and decodes the envelope.
func MakeRequest(t *testing.T, h http.Handler, method, path string, body interface{}) Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reqBody = strings.NewReader(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewReader(b)
		}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	resp.Code = w.Code
	resp.Header = w.Header()
	return resp
}

// GetPage requests an HTML page.
func GetPage(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// PostForm submits a dialog the way the browser does.
func PostForm(h http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
