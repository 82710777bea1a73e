package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/templui/healthjournal/internal/ctxkeys"
	"github.com/templui/healthjournal/internal/response"
	"github.com/templui/healthjournal/internal/service"
)

// AuthMiddleware checks the bearer token and adds the caller's identity to
// the context if valid. Requests without a valid token continue anonymous;
// RequireAuth rejects them on protected routes.
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := authService.VerifyToken(token)
			if err != nil {
				slog.DebugContext(r.Context(), "ignoring invalid bearer token", "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the request carries a verified identity and answers
// 401 otherwise.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxkeys.Identity(r.Context()); !ok {
			err := service.ErrMissingOwner
			if bearerToken(r) != "" {
				err = service.ErrInvalidToken
			}
			response.Error(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
