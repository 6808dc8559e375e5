package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr               = "INTERNAL_ERROR"
	ErrValidationErr             = "VALIDATION_ERROR"
	ErrBadRequest                = "BAD_REQUEST"
	ErrCodeNotFound              = "NOT_FOUND"
	ErrCodeUnauthorized          = "UNAUTHORIZED"
	ErrCodeForbidden             = "FORBIDDEN"
	ErrCodeRepositoryExists      = "REPOSITORY_EXISTS"
	ErrCodeTeamExists            = "TEAM_EXISTS"
	ErrCodeRuleExists            = "RULE_EXISTS"
	ErrCodeSelfApproval          = "SELF_APPROVAL"
	ErrCodePRNotOpen             = "PR_NOT_OPEN"
	ErrCodeInsufficientApprovals = "INSUFFICIENT_APPROVALS"
	ErrCodeInvalidRole           = "INVALID_ROLE"
	ErrCodePolicyUnavailable     = "POLICY_UNAVAILABLE"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MergeBlockedResponse is returned when branch protection stops a merge.
type MergeBlockedResponse struct {
	Error    ErrorDetail `json:"error"`
	Required int         `json:"required"`
	Current  int         `json:"current"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

func MergeBlocked(required, current int, msg string) MergeBlockedResponse {
	return MergeBlockedResponse{
		Error: ErrorDetail{
			Code:    ErrCodeInsufficientApprovals,
			Message: msg,
		},
		Required: required,
		Current:  current,
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "min":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be at least %s", err.Field(), err.Param()))
		case "max":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be no more than %s characters", err.Field(), err.Param()),
			)
		case "oneof":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be one of: %s", err.Field(), err.Param()),
			)
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be an email address", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type RepositoryResponse struct {
	Message    string           `json:"message,omitempty"`
	Repository RepositorySchema `json:"repository"`
}

type RepositoryListResponse struct {
	Repositories []RepositorySchema `json:"repositories"`
	Count        int                `json:"count"`
	Message      string             `json:"message,omitempty"`
}

type DeleteRepositoryResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type CollaboratorResponse struct {
	Message   string `json:"message"`
	RepoID    int64  `json:"repoId"`
	UserEmail string `json:"userEmail"`
	Role      string `json:"role,omitempty"`
	Synced    *bool  `json:"synced,omitempty"`
}

type TeamResponse struct {
	Message string     `json:"message"`
	Team    TeamSchema `json:"team"`
}

type TeamMemberResponse struct {
	Message   string `json:"message"`
	TeamID    int64  `json:"teamId"`
	UserEmail string `json:"userEmail"`
	Synced    bool   `json:"synced"`
}

type TeamAccessResponse struct {
	Message string `json:"message"`
	TeamID  int64  `json:"teamId"`
	RepoID  int64  `json:"repoId"`
	Role    string `json:"role"`
	Synced  bool   `json:"synced"`
}

type PrResponse struct {
	Message     string            `json:"message,omitempty"`
	PullRequest PullRequestSchema `json:"pullRequest"`
}

type PrDetailsResponse struct {
	PullRequest PullRequestSchema `json:"pullRequest"`
	Reviews     []ReviewSchema    `json:"reviews"`
}

type ApproveResponse struct {
	Message  string       `json:"message"`
	PrID     int64        `json:"prId"`
	Reviewer string       `json:"reviewer"`
	Review   ReviewSchema `json:"review"`
}

type MergeResponse struct {
	Message     string            `json:"message"`
	PrID        int64             `json:"prId"`
	MergedBy    string            `json:"mergedBy"`
	MergedAt    *time.Time        `json:"mergedAt"`
	PullRequest PullRequestSchema `json:"pullRequest"`
}

type BranchProtectionResponse struct {
	Message string                 `json:"message"`
	Rule    BranchProtectionSchema `json:"rule"`
}

type AIReviewResponse struct {
	PrID       int64     `json:"prId"`
	AIReview   string    `json:"aiReview"`
	ReviewedBy string    `json:"reviewedBy"`
	Timestamp  time.Time `json:"timestamp"`
}

type DescriptionResponse struct {
	Description string `json:"description"`
	Commits     int    `json:"commits"`
	GeneratedBy string `json:"generatedBy"`
}

type ExplainResponse struct {
	Allowed     bool   `json:"allowed"`
	Action      string `json:"action"`
	Resource    string `json:"resource"`
	Explanation string `json:"explanation"`
	ExplainedBy string `json:"explainedBy"`
}

type TriageResponse struct {
	IssueTitle string         `json:"issueTitle"`
	Triage     map[string]any `json:"triage"`
	TriagedBy  string         `json:"triagedBy"`
}

type RepoAccessSchema struct {
	RepoID      int64    `json:"repoId"`
	RepoName    string   `json:"repoName"`
	Permissions []string `json:"permissions"`
}

type GraphSummarySchema struct {
	TotalRepos  int `json:"totalRepos"`
	DirectRepos int `json:"directRepos"`
	TeamRepos   int `json:"teamRepos"`
	Teams       int `json:"teams"`
}

type GraphSchema struct {
	User         string             `json:"user"`
	DirectAccess []RepoAccessSchema `json:"directAccess"`
	TeamAccess   []RepoAccessSchema `json:"teamAccess"`
	Summary      GraphSummarySchema `json:"summary"`
}

type GraphResponse struct {
	Graph GraphSchema `json:"graph"`
}

type AuditLogsResponse struct {
	RepoID *int64           `json:"repoId,omitempty"`
	Logs   []AuditLogSchema `json:"logs"`
	Count  int              `json:"count"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}
