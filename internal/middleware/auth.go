package middleware

import (
	"net/http"
	"strings"
	"time"

	"igreja-digital/secretaria/internal/auth"
	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
)

// SessionAuth resolves the bearer token against the session store and puts
// the session into the request context. 401 on missing, unknown or expired
// tokens. Touching the store on success slides the session TTL.
func SessionAuth(store common.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				common.RespondError(w, initTime, nil, constants.MsgUnauthenticated, http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			session, err := store.Get(r.Context(), token)
			if err != nil {
				common.RespondError(w, initTime, nil, constants.MsgUnauthenticated, http.StatusUnauthorized)
				return
			}

			// sliding expiry
			_ = store.Set(r.Context(), session)

			ctx := auth.SetSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles gates a route group to the given roles. Must run after
// SessionAuth. 403 when the session's role is not allowed.
func RequireRoles(allowed ...constants.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			session := auth.GetSession(r.Context())
			if session == nil {
				common.RespondError(w, initTime, nil, constants.MsgUnauthenticated, http.StatusUnauthorized)
				return
			}

			if !session.Role.In(allowed...) {
				common.RespondError(w, initTime, nil, constants.MsgForbidden, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
