// Package policy talks to the external authorization engine. Who may do what
// is never decided locally: every answer comes from an Oracle.
package policy

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Relations used on repositories, teams and pull requests.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionAdmin  = "admin"
	ActionTriage = "triage"

	RelationMaintain = "maintain"
	RelationMember   = "member"
	RelationAuthor   = "author"

	KindRepository  = "repository"
	KindTeam        = "team"
	KindPullRequest = "pull_request"
)

// RepositoryRoles are the relations a user or team can hold on a repository.
var RepositoryRoles = []string{ActionRead, ActionWrite, RelationMaintain, ActionAdmin}

var ErrUnavailable = errors.New("policy engine unavailable")

// Oracle answers whether subject may perform action on object.
type Oracle interface {
	Check(ctx context.Context, subject, action, object string) (bool, error)
}

// Relationships mutates the relationship graph held by the engine.
type Relationships interface {
	CreateTuple(ctx context.Context, t Tuple) error
	DeleteTuple(ctx context.Context, t Tuple) error
	CreateResourceInstance(ctx context.Context, ri ResourceInstance) error
}

// Engine is a full policy engine client.
type Engine interface {
	Oracle
	Relationships
}

type Tuple struct {
	Subject  string `json:"subject"`
	Relation string `json:"relation"`
	Object   string `json:"object"`
}

type ResourceInstance struct {
	Resource   string         `json:"resource"`
	Key        string         `json:"key"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

func User(email string) string {
	return "user:" + email
}

func Team(id int64) string {
	return Object(KindTeam, strconv.FormatInt(id, 10))
}

func Repository(id int64) string {
	return Object(KindRepository, strconv.FormatInt(id, 10))
}

func PullRequest(id int64) string {
	return Object(KindPullRequest, strconv.FormatInt(id, 10))
}

func Object(kind, id string) string {
	return fmt.Sprintf("%s:%s", kind, id)
}

// IsRepositoryRole reports whether role can be granted on a repository.
func IsRepositoryRole(role string) bool {
	for _, r := range RepositoryRoles {
		if r == role {
			return true
		}
	}
	return false
}
