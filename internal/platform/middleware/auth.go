package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"attestry/pkg/domain"
)

// TokenValidator validates a bearer token and returns the address it binds.
// The hosting environment guarantees caller identity; here that guarantee is
// a signed token whose subject is the caller's address.
type TokenValidator interface {
	ValidateToken(tokenString string) (domain.Address, error)
}

type callerKey struct{}

// Caller retrieves the authenticated caller address from the context.
// The zero address means the request was not authenticated.
func Caller(ctx context.Context) domain.Address {
	addr, ok := ctx.Value(callerKey{}).(domain.Address)
	if !ok {
		return domain.Address{}
	}
	return addr
}

// WithCaller injects a caller address into the context. Exported for tests
// and for the service layer's internal invocations.
func WithCaller(ctx context.Context, caller domain.Address) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// RequireAuth validates the bearer token and stores the caller address in the
// request context. Requests without a valid token are rejected before any
// handler runs.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const bearerPrefix = "Bearer "
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !ok {
				ctx := r.Context()
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			caller, err := validator.ValidateToken(token)
			if err != nil {
				ctx := r.Context()
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
