package models

import "time"

const (
	PRStatusOpen   = "open"
	PRStatusMerged = "merged"
	PRStatusClosed = "closed"

	ReviewApproved         = "approved"
	ReviewChangesRequested = "changes_requested"
	ReviewCommented        = "commented"
)

type PullRequest struct {
	ID           int64      `db:"id"`
	RepoID       int64      `db:"repo_id"`
	AuthorID     int64      `db:"author_id"`
	Title        string     `db:"title"`
	Description  *string    `db:"description"`
	SourceBranch string     `db:"source_branch"`
	TargetBranch string     `db:"target_branch"`
	Status       string     `db:"status"`
	MergedAt     *time.Time `db:"merged_at"`
	MergedBy     *int64     `db:"merged_by"`
	CreatedAt    *time.Time `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

type Review struct {
	ID         int64      `db:"id"`
	PrID       int64      `db:"pr_id"`
	ReviewerID int64      `db:"reviewer_id"`
	Status     string     `db:"status"`
	Comment    *string    `db:"comment"`
	CreatedAt  *time.Time `db:"created_at"`
}

// BranchProtectionRule gates merges into branches whose name matches
// BranchPattern (LIKE syntax: '%' any run, '_' one character).
type BranchProtectionRule struct {
	ID                            int64      `db:"id"`
	RepoID                        int64      `db:"repo_id"`
	BranchPattern                 string     `db:"branch_pattern"`
	RequiredApprovals             int        `db:"required_approvals"`
	RequireStatusChecks           bool       `db:"require_status_checks"`
	RequireConversationResolution bool       `db:"require_conversation_resolution"`
	AllowAdminOverride            bool       `db:"allow_admin_override"`
	CreatedAt                     *time.Time `db:"created_at"`
}
