package middleware

import (
	"net"
	"net/http"

	"github-rebac/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type AuditSink interface {
	Enqueue(entry *models.AuditLogEntry) bool
}

// Audit records one entry per authenticated request once the handler has
// written its response. resourceType names the route group.
func Audit(sink AuditSink, resourceType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			user := UserFromContext(r.Context())
			if user == nil {
				return
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			sink.Enqueue(&models.AuditLogEntry{
				UserID:       user.ID,
				UserEmail:    user.Email,
				Action:       r.Method,
				ResourceType: resourceType,
				ResourceID:   resourceID(r),
				IPAddress:    clientIP(r),
				UserAgent:    r.UserAgent(),
				StatusCode:   status,
			})
		})
	}
}

func resourceID(r *http.Request) *string {
	for _, name := range []string{"id", "repoId", "prId"} {
		if v := chi.URLParam(r, name); v != "" {
			return &v
		}
	}
	return nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
