package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/api/response"
)

// APIKeyMiddleware protects mutating endpoints (snapshot refresh) with a
// shared key read from INTERNAL_API_KEY. When the variable is unset the
// middleware is a no-op, so local development needs no key material.
// Clients send the key in the X-API-Key header.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			next.ServeHTTP(w, r)
			return
		}

		provided := r.Header.Get("X-API-Key")
		if provided == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
