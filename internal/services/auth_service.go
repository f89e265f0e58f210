package services

import (
	"context"
	"errors"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/logging"
	"igreja-digital/secretaria/internal/metrics"
	"igreja-digital/secretaria/internal/models/dtos"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown usernames and wrong
// passwords alike, so the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New(constants.MsgInvalidCredentials)

const bcryptCost = 10

// AuthService authenticates users and owns the session lifecycle.
type AuthService struct {
	users      *repositories.UserRepository
	sessions   common.SessionStore
	metricsReg *metrics.MetricsRegistry
}

func NewAuthService(users *repositories.UserRepository, sessions common.SessionStore, metricsReg *metrics.MetricsRegistry) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		metricsReg: metricsReg,
	}
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login verifies the credentials and creates a session. The returned token
// is the bearer token for subsequent requests.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dtos.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if s.metricsReg != nil {
			s.metricsReg.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.metricsReg != nil {
			s.metricsReg.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return nil, ErrInvalidCredentials
	}

	session := &common.SessionData{
		SessionID: common.NewSessionToken(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		MemberID:  user.MemberID,
		VisitorID: user.VisitorID,
		CreatedAt: time.Now(),
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}

	if s.metricsReg != nil {
		s.metricsReg.LoginsTotal.WithLabelValues("success").Inc()
		s.metricsReg.SessionsActive.Inc()
	}

	logging.Info("User logged in", "user_id", user.ID, "role", user.Role.String())

	return &dtos.LoginResponse{
		SessionID: session.SessionID,
		User: dtos.SessionUser{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role.String(),
			MemberID:  user.MemberID,
			VisitorID: user.VisitorID,
		},
	}, nil
}

// Logout destroys the session. Unknown tokens are ignored; the active
// sessions gauge only moves when a session was actually removed.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	removed, err := s.sessions.Delete(ctx, sessionID)
	if err != nil {
		return err
	}
	if removed && s.metricsReg != nil {
		s.metricsReg.SessionsActive.Dec()
	}
	return nil
}

// IssueCsrfToken generates a fresh CSRF secret and binds it to the session.
// Re-issuing replaces the previous secret.
func (s *AuthService) IssueCsrfToken(ctx context.Context, session *common.SessionData) (string, error) {
	token := common.NewSessionToken()
	session.CsrfToken = token

	if err := s.sessions.Set(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}
