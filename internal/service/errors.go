package service

import (
	"errors"
	"fmt"

	"github-rebac/internal/policy"
)

var (
	ErrForbidden         = errors.New("forbidden")
	ErrSelfApproval      = errors.New("you cannot approve your own pull request")
	ErrPRNotOpen         = errors.New("PR is not open")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidVisibility = errors.New("invalid visibility")
	ErrPolicyUnavailable = policy.ErrUnavailable
)

// ForbiddenError is a denied permission. It matches ErrForbidden.
type ForbiddenError struct {
	Message string
}

func Forbidden(format string, args ...any) error {
	return &ForbiddenError{Message: fmt.Sprintf(format, args...)}
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InsufficientApprovalsError blocks a merge into a protected branch.
type InsufficientApprovalsError struct {
	Required int
	Current  int
}

func (e *InsufficientApprovalsError) Error() string {
	return fmt.Sprintf("This PR requires %d approval(s) before merging", e.Required)
}
