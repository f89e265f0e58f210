package api

import (
	"igreja-digital/secretaria/internal/auth"
	"igreja-digital/secretaria/internal/common"
	"net/http"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// sessionFrom pulls the authenticated session out of the request.
func sessionFrom(r *http.Request) *common.SessionData {
	return auth.GetSession(r.Context())
}

// actorID returns the acting user's id for audit attribution, nil when the
// request carries no session.
func actorID(r *http.Request) *string {
	session := sessionFrom(r)
	if session == nil {
		return nil
	}
	id := session.UserID
	return &id
}
