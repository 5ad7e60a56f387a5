package jwt

import (
	"context"
	"net/http"
	"strings"

	"roomchat/internal/app/user"
	"roomchat/internal/pkg/errs"
	"roomchat/internal/pkg/logx"
	"roomchat/internal/pkg/resp"
)

// contextKey scopes values this package stores in the request context.
type contextKey string

// contextUserKey is the key under which the resolved *user.User is stored.
const contextUserKey contextKey = "auth_user"

// UserResolver maps a token subject to the stored user. A lookup failure
// rejects the request; a valid token whose subject no longer exists grants
// nothing.
type UserResolver func(ctx context.Context, username string) (*user.User, error)

// RequireAuth returns middleware that authenticates every request passing
// through it. It extracts the bearer token from the Authorization header,
// verifies it, resolves the subject via resolve, and injects the user into
// the request context. Every failure mode answers with the same 401 so the
// response does not reveal which check failed.
func RequireAuth(secretKey string, resolve UserResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			payload, err := ParseToken(parts[1], secretKey)
			if err != nil {
				logx.Warn("Rejected invalid or expired bearer token", "error", err)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			u, err := resolve(r.Context(), payload.Username())
			if err != nil {
				logx.Warn("Token subject does not resolve to a user", "subject", payload.Username())
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			ctx := context.WithValue(r.Context(), contextUserKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the authenticated user injected by RequireAuth,
// or nil when the request did not pass through it.
func GetUserFromContext(r *http.Request) *user.User {
	u, ok := r.Context().Value(contextUserKey).(*user.User)
	if !ok {
		return nil
	}
	return u
}
