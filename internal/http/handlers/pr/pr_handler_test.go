package pr_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github-rebac/internal/http/api"
	"github-rebac/internal/http/handlers"
	"github-rebac/internal/http/handlers/mocks"
	"github-rebac/internal/http/handlers/pr"
	mw "github-rebac/internal/http/middleware"
	"github-rebac/internal/lib"
	"github-rebac/internal/models"
	repo "github-rebac/internal/repository"
	"github-rebac/internal/service"
	prsvc "github-rebac/internal/service/pr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var alice = &models.User{ID: 1, Email: "alice@example.com", Name: "Alice"}

func newRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	return req.WithContext(mw.WithUser(req.Context(), alice))
}

// Create
func TestPrHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := newRequest(http.MethodPost, "/api/pull-requests", pr.CreateRequest{
		RepoID:       3,
		Title:        "Add login",
		SourceBranch: "feature/login",
		TargetBranch: "main",
	})
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, alice, prsvc.CreateInput{
		RepoID:       3,
		Title:        "Add login",
		SourceBranch: "feature/login",
		TargetBranch: "main",
	}).Return(&models.PullRequest{ID: 11, RepoID: 3, AuthorID: 1, Status: models.PRStatusOpen}, nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.PrResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Pull request created", resp.Message)
	assert.Equal(t, int64(11), resp.PullRequest.ID)
	assert.Equal(t, models.PRStatusOpen, resp.PullRequest.Status)
}

func TestPrHandler_Create_ValidationError(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := newRequest(http.MethodPost, "/api/pull-requests", pr.CreateRequest{RepoID: 3, Title: "x"})
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestPrHandler_Create_TitleTooLong(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := newRequest(http.MethodPost, "/api/pull-requests", pr.CreateRequest{
		RepoID:       3,
		Title:        strings.Repeat("t", 256),
		SourceBranch: "feature/login",
		TargetBranch: "main",
	})
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, api.ErrValidationErr, handlers.DecodeErrorResponse(t, w.Body).Error.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestPrHandler_Create_Forbidden(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := newRequest(http.MethodPost, "/api/pull-requests", pr.CreateRequest{
		RepoID: 3, Title: "Add login", SourceBranch: "f", TargetBranch: "main",
	})
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, alice, mock.Anything).
		Return(nil, lib.Err("service.pr.Create", service.Forbidden("You need write access to create PRs")))

	h.Create(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeForbidden, resp.Error.Code)
	assert.Equal(t, "You need write access to create PRs", resp.Error.Message)
}

// Get
func TestPrHandler_Get_Success(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := handlers.WithURLParams(newRequest(http.MethodGet, "/api/pull-requests/11", nil), "id", "11")
	w := httptest.NewRecorder()

	mockService.On("Get", mock.Anything, alice, int64(11)).Return(&prsvc.PullRequestDetails{
		PullRequest: &models.PullRequest{ID: 11, Status: models.PRStatusOpen},
		Reviews:     []*models.Review{{ID: 1, PrID: 11, ReviewerID: 2, Status: models.ReviewApproved}},
	}, nil)

	h.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.PrDetailsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(11), resp.PullRequest.ID)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, models.ReviewApproved, resp.Reviews[0].Status)
}

// Approve
func TestPrHandler_Approve_Success(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	comment := "LGTM"
	req := handlers.WithURLParams(
		newRequest(http.MethodPost, "/api/pull-requests/11/approve", pr.ApproveRequest{Comment: &comment}),
		"id", "11",
	)
	w := httptest.NewRecorder()

	mockService.On("Approve", mock.Anything, alice, int64(11), &comment).
		Return(&models.Review{ID: 4, PrID: 11, ReviewerID: 1, Status: models.ReviewApproved, Comment: &comment}, nil)

	h.Approve(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.ApproveResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Pull request approved", resp.Message)
	assert.Equal(t, int64(11), resp.PrID)
	assert.Equal(t, alice.Email, resp.Reviewer)
}

func TestPrHandler_Approve_NoBody(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := handlers.WithURLParams(newRequest(http.MethodPost, "/api/pull-requests/11/approve", nil), "id", "11")
	w := httptest.NewRecorder()

	mockService.On("Approve", mock.Anything, alice, int64(11), (*string)(nil)).
		Return(&models.Review{ID: 4, PrID: 11, ReviewerID: 1, Status: models.ReviewApproved}, nil)

	h.Approve(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPrHandler_Approve_SelfApproval(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := handlers.WithURLParams(newRequest(http.MethodPost, "/api/pull-requests/11/approve", nil), "id", "11")
	w := httptest.NewRecorder()

	mockService.On("Approve", mock.Anything, alice, int64(11), mock.Anything).
		Return(nil, lib.Err("service.pr.Approve", service.ErrSelfApproval))

	h.Approve(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeSelfApproval, resp.Error.Code)
	assert.Equal(t, "you cannot approve your own pull request", resp.Error.Message)
}

func TestPrHandler_Approve_NotFound(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := handlers.WithURLParams(newRequest(http.MethodPost, "/api/pull-requests/99/approve", nil), "id", "99")
	w := httptest.NewRecorder()

	mockService.On("Approve", mock.Anything, alice, int64(99), mock.Anything).
		Return(nil, lib.Err("service.pr.Approve", repo.ErrNotFound))

	h.Approve(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, "PR not found", resp.Error.Message)
}

// Merge
func TestPrHandler_Merge_Success(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := handlers.WithURLParams(newRequest(http.MethodPost, "/api/pull-requests/11/merge", nil), "id", "11")
	w := httptest.NewRecorder()

	mergedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mergedBy := alice.ID
	mockService.On("Merge", mock.Anything, alice, int64(11)).Return(&models.PullRequest{
		ID:       11,
		Status:   models.PRStatusMerged,
		MergedAt: &mergedAt,
		MergedBy: &mergedBy,
	}, nil)

	h.Merge(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.MergeResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Pull request merged successfully", resp.Message)
	assert.Equal(t, alice.Email, resp.MergedBy)
	require.NotNil(t, resp.MergedAt)
	assert.True(t, mergedAt.Equal(*resp.MergedAt))
	assert.Equal(t, models.PRStatusMerged, resp.PullRequest.Status)
}

func TestPrHandler_Merge_InsufficientApprovals(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := handlers.WithURLParams(newRequest(http.MethodPost, "/api/pull-requests/11/merge", nil), "id", "11")
	w := httptest.NewRecorder()

	mockService.On("Merge", mock.Anything, alice, int64(11)).
		Return(nil, lib.Err("service.pr.Merge", &service.InsufficientApprovalsError{Required: 2, Current: 1}))

	h.Merge(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp api.MergeBlockedResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, api.ErrCodeInsufficientApprovals, resp.Error.Code)
	assert.Equal(t, "This PR requires 2 approval(s) before merging", resp.Error.Message)
	assert.Equal(t, 2, resp.Required)
	assert.Equal(t, 1, resp.Current)
}

func TestPrHandler_Merge_NotOpen(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := handlers.WithURLParams(newRequest(http.MethodPost, "/api/pull-requests/11/merge", nil), "id", "11")
	w := httptest.NewRecorder()

	mockService.On("Merge", mock.Anything, alice, int64(11)).
		Return(nil, lib.Err("service.pr.Merge", service.ErrPRNotOpen))

	h.Merge(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodePRNotOpen, resp.Error.Code)
}

func TestPrHandler_Merge_InternalError(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := handlers.WithURLParams(newRequest(http.MethodPost, "/api/pull-requests/11/merge", nil), "id", "11")
	w := httptest.NewRecorder()

	mockService.On("Merge", mock.Anything, alice, int64(11)).Return(nil, errors.New("db error"))

	h.Merge(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// Branch protection
func TestPrHandler_CreateBranchProtection_Success(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := newRequest(http.MethodPost, "/api/pull-requests/branch-protection", pr.BranchProtectionRequest{
		RepoID:             3,
		BranchPattern:      "release/*",
		RequiredApprovals:  2,
		AllowAdminOverride: true,
	})
	w := httptest.NewRecorder()

	mockService.On("CreateBranchProtection", mock.Anything, alice, prsvc.RuleInput{
		RepoID:             3,
		BranchPattern:      "release/*",
		RequiredApprovals:  2,
		AllowAdminOverride: true,
	}).Return(&models.BranchProtectionRule{
		ID: 1, RepoID: 3, BranchPattern: "release/%", RequiredApprovals: 2, AllowAdminOverride: true,
	}, nil)

	h.CreateBranchProtection(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.BranchProtectionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Branch protection rule created", resp.Message)
	assert.Equal(t, "release/%", resp.Rule.BranchPattern)
}

func TestPrHandler_CreateBranchProtection_NegativeApprovals(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := newRequest(http.MethodPost, "/api/pull-requests/branch-protection", pr.BranchProtectionRequest{
		RepoID:            3,
		BranchPattern:     "main",
		RequiredApprovals: -1,
	})
	w := httptest.NewRecorder()

	h.CreateBranchProtection(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestPrHandler_CreateBranchProtection_Exists(t *testing.T) {
	mockService := mocks.NewMockPrService(t)
	h := pr.NewPrHandler(handlers.NewLogger(), mockService)

	req := newRequest(http.MethodPost, "/api/pull-requests/branch-protection", pr.BranchProtectionRequest{
		RepoID: 3, BranchPattern: "main", RequiredApprovals: 1,
	})
	w := httptest.NewRecorder()

	mockService.On("CreateBranchProtection", mock.Anything, alice, mock.Anything).
		Return(nil, lib.Err("op", repo.ErrRuleExists))

	h.CreateBranchProtection(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeRuleExists, resp.Error.Code)
}
