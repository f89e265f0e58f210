package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/metrics"
	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"gorm.io/gorm"
)

// promauto registers on the default registry, so the test binary may build
// the registry only once.
var (
	metricsOnce sync.Once
	metricsReg  *metrics.MetricsRegistry
)

func testMetrics() *metrics.MetricsRegistry {
	metricsOnce.Do(func() {
		metricsReg = metrics.NewMetricsRegistry()
	})
	return metricsReg
}

func seedUser(t *testing.T, gdb *gorm.DB, username, password string, role constants.Role) *gormModels.User {
	t.Helper()

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &gormModels.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func newAuthService(gdb *gorm.DB, sessions common.SessionStore) *AuthService {
	return NewAuthService(repositories.NewUserRepository(gdb), sessions, nil)
}

func TestAuthService_LoginSuccess(t *testing.T) {
	gdb := setupTestDB(t)
	sessions := common.NewMemorySessionStore(time.Hour)
	service := newAuthService(gdb, sessions)
	ctx := context.Background()

	user := seedUser(t, gdb, "pastor", "senha123", constants.RolePastor)

	resp, err := service.Login(ctx, "pastor", "senha123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatal("Expected a session token")
	}
	if len(resp.SessionID) != 64 {
		t.Errorf("Expected a 256-bit hex token (64 chars), got %d chars", len(resp.SessionID))
	}
	if resp.User.ID != user.ID || resp.User.Role != "pastor" {
		t.Errorf("Unexpected user payload: %+v", resp.User)
	}

	stored, err := sessions.Get(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("Session not stored: %v", err)
	}
	if stored.UserID != user.ID || stored.Role != constants.RolePastor {
		t.Errorf("Unexpected stored session: %+v", stored)
	}
}

// Unknown username and wrong password must be indistinguishable.
func TestAuthService_LoginFailuresAreIdentical(t *testing.T) {
	gdb := setupTestDB(t)
	sessions := common.NewMemorySessionStore(time.Hour)
	service := newAuthService(gdb, sessions)
	ctx := context.Background()

	seedUser(t, gdb, "pastor", "senha123", constants.RolePastor)

	_, errUnknown := service.Login(ctx, "no-such-user", "senha123")
	_, errWrongPass := service.Login(ctx, "pastor", "wrong")

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials for unknown user, got %v", errUnknown)
	}
	if !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials for wrong password, got %v", errWrongPass)
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Errorf("Failure messages differ: %q vs %q", errUnknown.Error(), errWrongPass.Error())
	}
	if errUnknown.Error() != constants.MsgInvalidCredentials {
		t.Errorf("Unexpected failure message %q", errUnknown.Error())
	}
}

func TestAuthService_LogoutIsIdempotent(t *testing.T) {
	gdb := setupTestDB(t)
	sessions := common.NewMemorySessionStore(time.Hour)
	service := newAuthService(gdb, sessions)
	ctx := context.Background()

	seedUser(t, gdb, "pastor", "senha123", constants.RolePastor)
	resp, err := service.Login(ctx, "pastor", "senha123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := service.Logout(ctx, resp.SessionID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := sessions.Get(ctx, resp.SessionID); !errors.Is(err, common.ErrSessionNotFound) {
		t.Fatal("Expected session to be gone after logout")
	}

	// deleting an unknown token is not an error
	if err := service.Logout(ctx, resp.SessionID); err != nil {
		t.Errorf("Second logout should be a no-op, got %v", err)
	}
	if err := service.Logout(ctx, "never-existed"); err != nil {
		t.Errorf("Logout of unknown token should be a no-op, got %v", err)
	}
}

// The active sessions gauge only moves when a session was actually removed;
// repeated logouts of the same token must not drift it negative.
func TestAuthService_LogoutOnlyDecrementsGaugeOnRemoval(t *testing.T) {
	gdb := setupTestDB(t)
	sessions := common.NewMemorySessionStore(time.Hour)
	reg := testMetrics()
	service := NewAuthService(repositories.NewUserRepository(gdb), sessions, reg)
	ctx := context.Background()

	seedUser(t, gdb, "pastor", "senha123", constants.RolePastor)
	resp, err := service.Login(ctx, "pastor", "senha123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	after := testutil.ToFloat64(reg.SessionsActive)

	if err := service.Logout(ctx, "never-existed"); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if got := testutil.ToFloat64(reg.SessionsActive); got != after {
		t.Errorf("Logout of unknown token moved the gauge: %v -> %v", after, got)
	}

	if err := service.Logout(ctx, resp.SessionID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if got := testutil.ToFloat64(reg.SessionsActive); got != after-1 {
		t.Errorf("Expected gauge %v after logout, got %v", after-1, got)
	}

	if err := service.Logout(ctx, resp.SessionID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if got := testutil.ToFloat64(reg.SessionsActive); got != after-1 {
		t.Errorf("Repeated logout drifted the gauge: expected %v, got %v", after-1, got)
	}
}

func TestAuthService_IssueCsrfTokenReplacesSecret(t *testing.T) {
	gdb := setupTestDB(t)
	sessions := common.NewMemorySessionStore(time.Hour)
	service := newAuthService(gdb, sessions)
	ctx := context.Background()

	seedUser(t, gdb, "pastor", "senha123", constants.RolePastor)
	resp, err := service.Login(ctx, "pastor", "senha123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	session, err := sessions.Get(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("Session not found: %v", err)
	}

	first, err := service.IssueCsrfToken(ctx, session)
	if err != nil {
		t.Fatalf("IssueCsrfToken failed: %v", err)
	}
	second, err := service.IssueCsrfToken(ctx, session)
	if err != nil {
		t.Fatalf("IssueCsrfToken failed: %v", err)
	}
	if first == second {
		t.Error("Expected re-issuing to mint a fresh secret")
	}

	stored, err := sessions.Get(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("Session not found: %v", err)
	}
	if stored.CsrfToken != second {
		t.Error("Expected the stored session to carry the latest secret")
	}
}
