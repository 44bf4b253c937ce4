package jwt

import (
	"context"
	"net/http"
	"strings"

	"zazachat/internal/pkg/logx"
)

// contextKey is a private type for context keys defined in this package,
// preventing collisions with keys from other packages.
type contextKey string

const (
	// ContextSessionPayloadKey stores the parsed session Payload in the request context.
	ContextSessionPayloadKey contextKey = "session_payload"
)

// SessionExtractorMiddleware attempts to extract and validate a session token
// from the Authorization header. It injects the Payload into the context on
// success and otherwise lets the request continue without a session; handlers
// that require a bound session reject the request themselves.
func SessionExtractorMiddleware(secretKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				next.ServeHTTP(w, r)
				return
			}
			tokenString := parts[1]

			payload, err := ParseToken(tokenString, secretKey)
			if err != nil {
				logx.Warn("Invalid or expired session token, treating as no session", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextSessionPayloadKey, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPayloadFromContext safely extracts the session Payload from the request
// context. A nil return means the request carries no valid session.
func GetPayloadFromContext(r *http.Request) *Payload {
	payload, ok := r.Context().Value(ContextSessionPayloadKey).(*Payload)

	if !ok {
		return nil
	}

	return payload
}
