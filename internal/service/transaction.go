package service

import "context"

// TransactionManager runs fn in one database transaction carried by ctx.
// Team creation (organization + team) and merges (approval count + status
// update) go through it; policy calls never run inside fn.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
