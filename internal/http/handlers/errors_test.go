package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github-rebac/internal/http/api"
	"github-rebac/internal/http/handlers"
	"github-rebac/internal/lib"
	repo "github-rebac/internal/repository"
	"github-rebac/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestRenderError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"not found", lib.Err("op", repo.ErrNotFound), http.StatusNotFound, api.ErrCodeNotFound, "Thing not found"},
		{"forbidden", lib.Err("op", service.Forbidden("You need %s access", "write")), http.StatusForbidden, api.ErrCodeForbidden, "You need write access"},
		{"self approval", lib.Err("op", service.ErrSelfApproval), http.StatusBadRequest, api.ErrCodeSelfApproval, "you cannot approve your own pull request"},
		{"not open", lib.Err("op", service.ErrPRNotOpen), http.StatusBadRequest, api.ErrCodePRNotOpen, "PR is not open"},
		{"invalid role", lib.Err("op", service.ErrInvalidRole), http.StatusBadRequest, api.ErrCodeInvalidRole, ""},
		{"invalid visibility", lib.Err("op", service.ErrInvalidVisibility), http.StatusBadRequest, api.ErrValidationErr, ""},
		{"repository exists", lib.Err("op", repo.ErrRepositoryExists), http.StatusConflict, api.ErrCodeRepositoryExists, ""},
		{"team exists", lib.Err("op", repo.ErrTeamExists), http.StatusConflict, api.ErrCodeTeamExists, ""},
		{"rule exists", lib.Err("op", repo.ErrRuleExists), http.StatusConflict, api.ErrCodeRuleExists, ""},
		{"policy unavailable", lib.Err("op", service.ErrPolicyUnavailable), http.StatusServiceUnavailable, api.ErrCodePolicyUnavailable, ""},
		{"internal", errors.New("db error"), http.StatusInternalServerError, api.ErrInternalErr, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()

			handlers.RenderError(w, req, handlers.NewLogger(), tt.err, "Thing not found")

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := handlers.DecodeErrorResponse(t, w.Body)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp.Error.Message)
			}
		})
	}
}
