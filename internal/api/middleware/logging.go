package middleware

import (
	"log/slog"
	"net/http"

	"github.com/wordrush/wordrush/internal/middleware"
)

// Logging wraps the shared request logging middleware
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}
