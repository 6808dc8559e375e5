package middleware

import (
	"context"

	"github-rebac/internal/models"
)

type key int

const userKey key = 1

// WithUser stores the authenticated caller in ctx.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the caller set by Authenticate, or nil.
func UserFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}
