package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specflow/quote-server/internal/api/http/middleware"
	"github.com/specflow/quote-server/internal/id"
	"github.com/specflow/quote-server/internal/model"
	"github.com/specflow/quote-server/internal/pricing"
	"github.com/specflow/quote-server/internal/recommend"
	"github.com/specflow/quote-server/internal/service"
	"github.com/specflow/quote-server/internal/testutil"
)

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (s *memStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[key]
	if !ok {
		return nil, model.ErrNotFound
	}
	return data, nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memStore) List(_ context.Context, prefix string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for key := range s.data {
		if strings.HasPrefix(key, prefix) && len(keys) < limit {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func newTestHandler(adminSecret string) http.Handler {
	log := testutil.MakeNoopLogger()
	tables := pricing.DefaultTables()

	estimateService := service.NewEstimate(
		pricing.NewValidator(tables, false),
		pricing.NewEngine(tables),
		nil,
		log,
	)
	leadService := service.NewLead(
		&memStore{data: make(map[string][]byte)},
		id.NewTimeRandom(),
		"lead:",
		log,
	)

	r := New(estimateService, leadService, recommend.DefaultRegistry(), adminSecret, log)
	return r.Register()
}

func TestRouter_PublicRoutes(t *testing.T) {
	h := newTestHandler("s3cret")

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "estimate",
			method:     http.MethodPost,
			path:       "/api/estimate",
			body:       `{"width": 36, "height": 80}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "lead submission",
			method:     http.MethodPost,
			path:       "/api/leads",
			body:       `{"name": "Ada", "email": "a@example.com", "message": "Hi"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "recommendations",
			method:     http.MethodPost,
			path:       "/api/recommendations",
			body:       `{"width": 36, "height": 80, "door_type": "commercial"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "distributors",
			method:     http.MethodGet,
			path:       "/api/distributors",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong method",
			method:     http.MethodGet,
			path:       "/api/estimate",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/nope",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_AdminRoutesRequireSecret(t *testing.T) {
	h := newTestHandler("s3cret")

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/leads"},
		{http.MethodGet, "/api/admin/leads/some-id"},
		{http.MethodDelete, "/api/admin/leads/some-id"},
	}

	for _, r := range requests {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			req := httptest.NewRequest(r.method, r.path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error": "unauthorized"}`, w.Body.String())
		})
	}
}

func TestRouter_AdminFlow(t *testing.T) {
	h := newTestHandler("s3cret")

	// Submit a lead through the public route.
	req := httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"name": "Ada", "email": "a@example.com", "message": "Hi"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// List it with the secret.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil)
	req.Header.Set(middleware.AdminHeader, "s3cret")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	// The wrong secret still sees nothing even though a lead exists.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil)
	req.Header.Set(middleware.AdminHeader, "wrong")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "unauthorized"}`, w.Body.String())
}
