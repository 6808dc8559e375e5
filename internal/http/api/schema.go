package api

import (
	"time"

	"github-rebac/internal/models"
)

// Row schemas keep the column names of the underlying tables.

type UserSchema struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type RepositorySchema struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	OrgID       int64      `json:"org_id"`
	Visibility  string     `json:"visibility"`
	Description *string    `json:"description"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type TeamSchema struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	OrgID       int64      `json:"org_id"`
	Description *string    `json:"description"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type PullRequestSchema struct {
	ID           int64      `json:"id"`
	RepoID       int64      `json:"repo_id"`
	AuthorID     int64      `json:"author_id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	SourceBranch string     `json:"source_branch"`
	TargetBranch string     `json:"target_branch"`
	Status       string     `json:"status"`
	MergedAt     *time.Time `json:"merged_at"`
	MergedBy     *int64     `json:"merged_by"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

type ReviewSchema struct {
	ID         int64      `json:"id"`
	PrID       int64      `json:"pr_id"`
	ReviewerID int64      `json:"reviewer_id"`
	Status     string     `json:"status"`
	Comment    *string    `json:"comment"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

type BranchProtectionSchema struct {
	ID                            int64      `json:"id"`
	RepoID                        int64      `json:"repo_id"`
	BranchPattern                 string     `json:"branch_pattern"`
	RequiredApprovals             int        `json:"required_approvals"`
	RequireStatusChecks           bool       `json:"require_status_checks"`
	RequireConversationResolution bool       `json:"require_conversation_resolution"`
	AllowAdminOverride            bool       `json:"allow_admin_override"`
	CreatedAt                     *time.Time `json:"created_at,omitempty"`
}

type AuditLogSchema struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	UserEmail    string     `json:"user_email"`
	Action       string     `json:"action"`
	ResourceType string     `json:"resource_type"`
	ResourceID   *string    `json:"resource_id"`
	IPAddress    string     `json:"ip_address"`
	UserAgent    string     `json:"user_agent"`
	StatusCode   int        `json:"status_code"`
	CreatedAt    *time.Time `json:"created_at"`
}

func NewRepositorySchema(r *models.Repository) RepositorySchema {
	return RepositorySchema{
		ID:          r.ID,
		Name:        r.Name,
		OrgID:       r.OrgID,
		Visibility:  r.Visibility,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func NewRepositorySchemas(rs []*models.Repository) []RepositorySchema {
	out := make([]RepositorySchema, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewRepositorySchema(r))
	}
	return out
}

func NewTeamSchema(t *models.Team) TeamSchema {
	return TeamSchema{
		ID:          t.ID,
		Name:        t.Name,
		OrgID:       t.OrgID,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

func NewPullRequestSchema(pr *models.PullRequest) PullRequestSchema {
	return PullRequestSchema{
		ID:           pr.ID,
		RepoID:       pr.RepoID,
		AuthorID:     pr.AuthorID,
		Title:        pr.Title,
		Description:  pr.Description,
		SourceBranch: pr.SourceBranch,
		TargetBranch: pr.TargetBranch,
		Status:       pr.Status,
		MergedAt:     pr.MergedAt,
		MergedBy:     pr.MergedBy,
		CreatedAt:    pr.CreatedAt,
	}
}

func NewReviewSchema(r *models.Review) ReviewSchema {
	return ReviewSchema{
		ID:         r.ID,
		PrID:       r.PrID,
		ReviewerID: r.ReviewerID,
		Status:     r.Status,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func NewBranchProtectionSchema(r *models.BranchProtectionRule) BranchProtectionSchema {
	return BranchProtectionSchema{
		ID:                            r.ID,
		RepoID:                        r.RepoID,
		BranchPattern:                 r.BranchPattern,
		RequiredApprovals:             r.RequiredApprovals,
		RequireStatusChecks:           r.RequireStatusChecks,
		RequireConversationResolution: r.RequireConversationResolution,
		AllowAdminOverride:            r.AllowAdminOverride,
		CreatedAt:                     r.CreatedAt,
	}
}

func NewAuditLogSchemas(entries []*models.AuditLogEntry) []AuditLogSchema {
	out := make([]AuditLogSchema, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditLogSchema{
			ID:           e.ID,
			UserID:       e.UserID,
			UserEmail:    e.UserEmail,
			Action:       e.Action,
			ResourceType: e.ResourceType,
			ResourceID:   e.ResourceID,
			IPAddress:    e.IPAddress,
			UserAgent:    e.UserAgent,
			StatusCode:   e.StatusCode,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}
