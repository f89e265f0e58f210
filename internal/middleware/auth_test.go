package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"igreja-digital/secretaria/internal/auth"
	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
)

func seedSession(t *testing.T, store common.SessionStore, role constants.Role) *common.SessionData {
	t.Helper()

	session := &common.SessionData{
		SessionID: common.NewSessionToken(),
		UserID:    "user-1",
		Username:  "pastor",
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := store.Set(context.Background(), session); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}
	return session
}

func TestSessionAuth_RejectsMissingOrUnknownToken(t *testing.T) {
	store := common.NewMemorySessionStore(time.Hour)
	srv := SessionAuth(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run without a valid session")
	}))

	// no Authorization header
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/members", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("No header: expected 401, got %d", rec.Code)
	}

	// unknown token
	r := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	r.Header.Set("Authorization", "Bearer "+common.NewSessionToken())
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, r)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Unknown token: expected 401, got %d", rec.Code)
	}

	// wrong scheme
	r = httptest.NewRequest(http.MethodGet, "/api/members", nil)
	r.Header.Set("Authorization", "Basic abc")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, r)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Wrong scheme: expected 401, got %d", rec.Code)
	}
}

func TestSessionAuth_RejectsExpiredSession(t *testing.T) {
	store := common.NewMemorySessionStore(-time.Second)
	session := seedSession(t, store, constants.RolePastor)

	srv := SessionAuth(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run with an expired session")
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/members", nil)
	r.Header.Set("Authorization", "Bearer "+session.SessionID)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, r)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for expired session, got %d", rec.Code)
	}
}

func TestSessionAuth_PutsSessionInContext(t *testing.T) {
	store := common.NewMemorySessionStore(time.Hour)
	session := seedSession(t, store, constants.RoleTreasurer)

	var seen *common.SessionData
	srv := SessionAuth(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.GetSession(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/tithes", nil)
	r.Header.Set("Authorization", "Bearer "+session.SessionID)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if seen == nil || seen.UserID != "user-1" || seen.Role != constants.RoleTreasurer {
		t.Errorf("Unexpected session in context: %+v", seen)
	}
}

func TestRequireRoles_EnforcesRoleMatrix(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name     string
		allowed  []constants.Role
		role     constants.Role
		expected int
	}{
		{"pastor allowed on members", []constants.Role{constants.RolePastor}, constants.RolePastor, http.StatusOK},
		{"treasurer blocked on members", []constants.Role{constants.RolePastor}, constants.RoleTreasurer, http.StatusForbidden},
		{"deacon allowed on visitors", []constants.Role{constants.RoleDeacon, constants.RolePastor}, constants.RoleDeacon, http.StatusOK},
		{"member blocked on visitors", []constants.Role{constants.RoleDeacon, constants.RolePastor}, constants.RoleMember, http.StatusForbidden},
		{"visitor allowed on lgpd", []constants.Role{constants.RoleMember, constants.RoleVisitor}, constants.RoleVisitor, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := RequireRoles(tc.allowed...)(handler)

			r := httptest.NewRequest(http.MethodGet, "/api/test", nil)
			r = r.WithContext(auth.SetSession(r.Context(), &common.SessionData{
				SessionID: "sess-1",
				Role:      tc.role,
			}))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, r)

			if rec.Code != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, rec.Code)
			}
		})
	}
}

func TestRequireRoles_WithoutSessionIs401(t *testing.T) {
	srv := RequireRoles(constants.RolePastor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run without a session")
	}))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/members", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}
