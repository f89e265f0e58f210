package common

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"igreja-digital/secretaria/internal/constants"
)

// ErrSessionNotFound is returned for unknown or expired session tokens.
var ErrSessionNotFound = errors.New("session not found")

// SessionData is the server-side session record, looked up by its opaque
// token on every authenticated request. The CSRF secret is bound here so the
// double-submit check can compare against it.
type SessionData struct {
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id"`
	Username  string         `json:"username"`
	Role      constants.Role `json:"role"`
	MemberID  *string        `json:"member_id,omitempty"`
	VisitorID *string        `json:"visitor_id,omitempty"`
	CsrfToken string         `json:"csrf_token,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// SessionStore is the contract session backends implement. The default
// backend is in-process memory; a Redis backend covers multi-instance
// deployments.
type SessionStore interface {
	// Get retrieves a session by token. Returns ErrSessionNotFound for
	// unknown or expired tokens.
	Get(ctx context.Context, sessionID string) (*SessionData, error)

	// Set stores or replaces a session, resetting its TTL.
	Set(ctx context.Context, session *SessionData) error

	// Delete removes a session and reports whether one was removed.
	// Deleting an unknown token is not an error.
	Delete(ctx context.Context, sessionID string) (bool, error)

	// Close releases any underlying connections.
	Close() error
}

// NewSessionToken returns a 256-bit random token, hex encoded.
func NewSessionToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure means the process has bigger problems
		panic("session token generation failed: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
