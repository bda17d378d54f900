package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORS returns a CORS middleware for the read-only dashboard API
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Cache-Control",
			"Last-Event-ID",
			"X-Request-ID",
		},
		ExposedHeaders: []string{
			"X-Request-ID",
		},
		MaxAge: 300,
	})
}

// DefaultCORS allows the configured frontend, plus local dev servers when it is local.
// An empty or "*" frontend URL allows every origin.
func DefaultCORS(frontendURL string) func(http.Handler) http.Handler {
	if frontendURL == "" || frontendURL == "*" {
		return CORS([]string{"*"})
	}

	allowedOrigins := []string{frontendURL}
	if strings.Contains(frontendURL, "localhost") || strings.Contains(frontendURL, "127.0.0.1") {
		allowedOrigins = append(allowedOrigins,
			"http://localhost:3000",
			"http://localhost:5000",
			"http://localhost:5173",
			"http://127.0.0.1:5000",
			"http://127.0.0.1:5173",
		)
	}

	return CORS(allowedOrigins)
}
