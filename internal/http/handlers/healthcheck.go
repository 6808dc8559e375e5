package handlers

import (
	"net/http"
	"time"

	"github-rebac/internal/http/api"
	"github.com/go-chi/render"
)

func Healthcheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, api.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
		})
	}
}
