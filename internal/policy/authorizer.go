package policy

import (
	"context"
	"log/slog"

	"github-rebac/internal/lib"
	"github-rebac/internal/lib/sl"
)

// Authorizer wraps an Oracle with the configured degraded mode. With
// allowOnError set an engine failure is logged and the request is allowed;
// otherwise the failure surfaces as ErrUnavailable.
type Authorizer struct {
	log          *slog.Logger
	oracle       Oracle
	allowOnError bool
}

func NewAuthorizer(log *slog.Logger, oracle Oracle, allowOnError bool) *Authorizer {
	return &Authorizer{
		log:          log,
		oracle:       oracle,
		allowOnError: allowOnError,
	}
}

func (a *Authorizer) Allowed(ctx context.Context, subject, action, object string) (bool, error) {
	const op = "policy.Authorizer.Allowed"

	allowed, err := a.oracle.Check(ctx, subject, action, object)
	if err == nil {
		return allowed, nil
	}

	if a.allowOnError {
		a.log.Warn("policy check failed, allowing in degraded mode",
			slog.String("subject", subject),
			slog.String("action", action),
			slog.String("object", object),
			sl.Err(err),
		)
		return true, nil
	}

	a.log.Error("policy check failed", slog.String("object", object), sl.Err(err))
	return false, lib.Err(op, ErrUnavailable)
}

// Oracle exposes the raw engine for decisions that must not fail open.
func (a *Authorizer) Oracle() Oracle {
	return a.oracle
}
