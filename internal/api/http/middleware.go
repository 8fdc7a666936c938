package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/logger"
	"gympoint-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

// claimsFromContext returns the authenticated staff claims, if any.
func claimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	return claims, ok
}

func actorID(ctx context.Context) int32 {
	if claims, ok := claimsFromContext(ctx); ok {
		return claims.UserID
	}
	return 0
}

// AuthMiddleware validates the Bearer token and stores the claims in the
// request context. Requests without a valid token are rejected.
func AuthMiddleware(tokenManager security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, domain.ErrUnauthenticated)
				return
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				writeError(w, domain.ErrUnauthenticated)
				return
			}

			claims, err := tokenManager.ValidateToken(tokenString)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole guards a handler so only the listed roles may call it.
func RequireRole(next http.HandlerFunc, roles ...domain.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r.Context())
		if !ok {
			writeError(w, domain.ErrUnauthenticated)
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				next(w, r)
				return
			}
		}
		writeError(w, domain.ErrForbidden)
	}
}

// LoggingMiddleware records method, path, status and latency for every request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
