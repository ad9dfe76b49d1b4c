package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/akorchemkin/devstash-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Auth verifies the bearer token and stores the resolved identity in the
// request context. Every route behind this middleware is identity-scoped,
// so requests without a valid token are rejected outright.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), identity)
			ctx = ctxutil.WithSourceAddr(ctx, sourceAddr(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// sourceAddr resolves the client address for access-log records. The first
// X-Forwarded-For hop wins when the service sits behind a proxy.
func sourceAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		addr, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(addr)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
