package service

import (
	"context"

	"github-rebac/internal/policy"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Authorizer
type Authorizer interface {
	Allowed(ctx context.Context, subject, action, object string) (bool, error)
}

// Require returns a ForbiddenError carrying msg unless email may perform
// action on object. Policy engine failures are returned as is.
func Require(ctx context.Context, authz Authorizer, email, action, object, msg string) error {
	allowed, err := authz.Allowed(ctx, policy.User(email), action, object)
	if err != nil {
		return err
	}
	if !allowed {
		return Forbidden("%s", msg)
	}
	return nil
}
