package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	mw "github-rebac/internal/http/middleware"
	"github-rebac/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSink struct {
	mu      sync.Mutex
	entries []*models.AuditLogEntry
}

func (s *memSink) Enqueue(e *models.AuditLogEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return true
}

func auditedRouter(sink *memSink, authenticated bool) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/repositories", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if authenticated {
					r = r.WithContext(mw.WithUser(r.Context(), alice))
				}
				next.ServeHTTP(w, r)
			})
		})
		r.Use(mw.Audit(sink, "repositories"))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
	})
	return r
}

func TestAudit_RecordsAfterHandler(t *testing.T) {
	sink := &memSink{}

	req := httptest.NewRequest(http.MethodDelete, "/api/repositories/42", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.RemoteAddr = "10.0.0.5:51234"
	w := httptest.NewRecorder()

	auditedRouter(sink, true).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.Len(t, sink.entries, 1)
	e := sink.entries[0]
	assert.Equal(t, alice.ID, e.UserID)
	assert.Equal(t, alice.Email, e.UserEmail)
	assert.Equal(t, http.MethodDelete, e.Action)
	assert.Equal(t, "repositories", e.ResourceType)
	require.NotNil(t, e.ResourceID)
	assert.Equal(t, "42", *e.ResourceID)
	assert.Equal(t, "10.0.0.5", e.IPAddress)
	assert.Equal(t, "test-agent", e.UserAgent)
	assert.Equal(t, http.StatusForbidden, e.StatusCode)
}

func TestAudit_NoResourceID(t *testing.T) {
	sink := &memSink{}

	w := httptest.NewRecorder()
	auditedRouter(sink, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/repositories/", nil))

	require.Len(t, sink.entries, 1)
	assert.Nil(t, sink.entries[0].ResourceID)
	assert.Equal(t, http.StatusOK, sink.entries[0].StatusCode)
}

func TestAudit_SkipsAnonymous(t *testing.T) {
	sink := &memSink{}

	w := httptest.NewRecorder()
	auditedRouter(sink, false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/repositories/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sink.entries)
}
