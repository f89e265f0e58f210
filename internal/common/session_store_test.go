package common

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"igreja-digital/secretaria/internal/constants"
)

func TestNewSessionToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := NewSessionToken()
		if len(token) != 64 {
			t.Fatalf("Expected 64 hex chars, got %d", len(token))
		}
		if seen[token] {
			t.Fatal("Token collision")
		}
		seen[token] = true
	}
}

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	session := &SessionData{
		SessionID: NewSessionToken(),
		UserID:    "user-1",
		Username:  "pastor",
		Role:      constants.RolePastor,
		CreatedAt: time.Now(),
	}
	if err := store.Set(ctx, session); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.UserID != "user-1" || got.Role != constants.RolePastor {
		t.Errorf("Unexpected session: %+v", got)
	}
	if got.ExpiresAt.IsZero() {
		t.Error("Expected Set to stamp an expiry")
	}

	if _, err := store.Get(ctx, "unknown"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore(20 * time.Millisecond)
	ctx := context.Background()

	session := &SessionData{SessionID: NewSessionToken(), UserID: "user-1"}
	if err := store.Set(ctx, session); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := store.Get(ctx, session.SessionID); err != nil {
		t.Fatalf("Expected session alive, got %v", err)
	}

	time.Sleep(40 * time.Millisecond)

	if _, err := store.Get(ctx, session.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after TTL, got %v", err)
	}
}

// Re-setting a session slides the expiry forward.
func TestMemorySessionStore_SlidingTTL(t *testing.T) {
	store := NewMemorySessionStore(50 * time.Millisecond)
	ctx := context.Background()

	session := &SessionData{SessionID: NewSessionToken(), UserID: "user-1"}
	if err := store.Set(ctx, session); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		time.Sleep(30 * time.Millisecond)
		got, err := store.Get(ctx, session.SessionID)
		if err != nil {
			t.Fatalf("Expected session alive at touch %d, got %v", i, err)
		}
		if err := store.Set(ctx, got); err != nil {
			t.Fatalf("Touch failed: %v", err)
		}
	}
}

// Each Get must hand out its own copy of the record. One request touching
// the store (sliding expiry, fresh CSRF secret) must not write into a record
// another request is still reading. Run with -race.
func TestMemorySessionStore_GetReturnsACopy(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	session := &SessionData{SessionID: NewSessionToken(), UserID: "user-1"}
	if err := store.Set(ctx, session); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	held, err := store.Get(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	heldExpiry := held.ExpiresAt

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			got, err := store.Get(ctx, session.SessionID)
			if err != nil {
				t.Errorf("Get failed: %v", err)
				return
			}
			got.CsrfToken = NewSessionToken()
			if err := store.Set(ctx, got); err != nil {
				t.Errorf("Set failed: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = held.ExpiresAt
			_ = held.CsrfToken
		}
	}()
	wg.Wait()

	if held.ExpiresAt != heldExpiry || held.CsrfToken != "" {
		t.Error("Expected the held record to be untouched by later store writes")
	}

	latest, err := store.Get(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if latest.CsrfToken == "" {
		t.Error("Expected the stored record to carry the latest secret")
	}
}

func TestMemorySessionStore_DeleteIsIdempotent(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	session := &SessionData{SessionID: NewSessionToken()}
	if err := store.Set(ctx, session); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	removed, err := store.Delete(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !removed {
		t.Error("Expected first delete to report removal")
	}
	removed, err = store.Delete(ctx, session.SessionID)
	if err != nil {
		t.Errorf("Second delete should be a no-op, got %v", err)
	}
	if removed {
		t.Error("Expected second delete to report nothing removed")
	}
	if _, err := store.Get(ctx, session.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Ana Souza":            "ana.souza",
		"João da Silva":        "joao.da.silva",
		"  Conceição   Assis ": "conceicao.assis",
		"José-Maria d'Ávila":   "jose.maria.d.avila",
		"123 Teste":            "123.teste",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
