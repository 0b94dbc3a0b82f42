package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"Sociable/internal/api/handlers"
)

// Context keys for storing user information
type contextKey string

const UserIDKey contextKey = "user_id"

// AuthMiddleware verifies Bearer tokens issued by the external
// authentication service. Tokens are HS256-signed with a shared secret and
// carry the acting user's id in the subject claim.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(secret []byte) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// RequireAuth middleware ensures the request carries a valid token
// If not authenticated, returns 401
// If authenticated, injects the user id into the request context.
// The acting user is always taken from the verified token, never from
// request-body fields.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		parsed, err := jwt.Parse([]byte(token),
			jwt.WithKey(jwa.HS256, m.secret),
			jwt.WithValidate(true))
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		userID := parsed.Subject()
		if userID == "" {
			writeAuthError(w, "Missing user id in token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the authenticated user id injected by RequireAuth,
// or "" if the request is unauthenticated
func GetUserID(r *http.Request) string {
	if id, ok := r.Context().Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, message string) {
	handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", message)
}
