package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
)

// SessionCookie is the cookie the hosted identity provider sets.
const SessionCookie = "__session"

type identityKey struct{}

// Authenticated reports whether Identity verified the request's session.
func Authenticated(ctx context.Context) bool {
	ok, _ := ctx.Value(identityKey{}).(bool)
	return ok
}

// Identity returns middleware that checks the bearer token or session cookie
// against sessionKeys and records the result on the request context. It never
// rejects a request; every route is readable anonymously.
func Identity(sessionKeys []string) func(http.Handler) http.Handler {
	keys := make([][]byte, 0, len(sessionKeys))
	for _, k := range sessionKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authed := verify(keys, extractToken(r))
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey{}, authed)))
		})
	}
}

// verify compares token against every key so the time taken does not reveal
// which key matched.
func verify(keys [][]byte, token string) bool {
	if token == "" {
		return false
	}
	match := 0
	for _, k := range keys {
		match |= subtle.ConstantTimeCompare([]byte(token), k)
	}
	return match == 1
}

// extractToken looks for a Bearer token in the Authorization header, then for
// the session cookie.
func extractToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		scheme, token, ok := strings.Cut(auth, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}
