package http

import (
	"context"
	"net/http"
	"strings"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/security"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthMiddleware validates the Bearer token and injects the resulting Actor
// into the request context. Requests without a valid token never reach a
// handler.
func AuthMiddleware(tokenManager security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondError(w, r, domain.ErrUnauthenticated)
				return
			}
			token := header
			if len(token) > 7 && strings.EqualFold(token[0:7], "bearer ") {
				token = token[7:]
			}

			actor, err := tokenManager.ValidateToken(token)
			if err != nil {
				respondError(w, r, domain.ErrUnauthenticated)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext returns the authenticated actor, or ErrUnauthenticated
// when the middleware did not run.
func ActorFromContext(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthenticated
	}
	return actor, nil
}
