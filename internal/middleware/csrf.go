package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"igreja-digital/secretaria/internal/auth"
	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/metrics"
)

// CsrfHeader is the header clients echo the double-submit secret in.
const CsrfHeader = "X-CSRF-Token"

// csrfExemptPaths are the endpoints a client must reach before it can hold a
// CSRF token: login, logout, session check and token issuance itself.
var csrfExemptPaths = map[string]bool{
	"/api/auth/login":   true,
	"/api/auth/logout":  true,
	"/api/auth/session": true,
	"/api/csrf-token":   true,
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// CsrfValidation enforces the double-submit check on every mutating request
// whose path is not exempt. It runs after SessionAuth, so a rejected request
// never reaches handler logic and produces no side effects.
func CsrfValidation(metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutating(r.Method) || csrfExemptPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			initTime := time.Now()

			session := auth.GetSession(r.Context())
			if session == nil {
				common.RespondError(w, initTime, nil, constants.MsgUnauthenticated, http.StatusUnauthorized)
				return
			}

			header := r.Header.Get(CsrfHeader)
			if session.CsrfToken == "" || header == "" ||
				subtle.ConstantTimeCompare([]byte(session.CsrfToken), []byte(header)) != 1 {
				if metricsReg != nil {
					metricsReg.CsrfRejectedTotal.Inc()
				}
				common.RespondError(w, initTime, nil, constants.MsgInvalidCsrf, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
