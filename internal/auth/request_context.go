package auth

import (
	"context"

	"igreja-digital/secretaria/internal/common"
)

type contextKey string

var sessionDataKey contextKey = "session_data"

// SetSession stores the authenticated session in the request context.
func SetSession(ctx context.Context, session *common.SessionData) context.Context {
	return context.WithValue(ctx, sessionDataKey, session)
}

// GetSession retrieves the authenticated session from the request context.
// Returns nil when the request carries no session (e.g. in unit tests that
// bypass the middleware).
func GetSession(ctx context.Context) *common.SessionData {
	val := ctx.Value(sessionDataKey)
	if session, ok := val.(*common.SessionData); ok {
		return session
	}
	return nil
}
