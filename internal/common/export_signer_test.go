package common

import (
	"strings"
	"testing"
	"time"
)

func TestExportSigner_RoundTrip(t *testing.T) {
	signer := NewExportSigner([]byte("test-secret"))

	tokenString, err := signer.Sign("user-1", "csv", 15*time.Minute)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	token, err := signer.Validate(tokenString)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if token.UserID != "user-1" || token.Format != "csv" {
		t.Errorf("Unexpected claims: %+v", token)
	}
	if token.TokenID == "" {
		t.Error("Expected a token id for single-use tracking")
	}
}

func TestExportSigner_SingleUse(t *testing.T) {
	signer := NewExportSigner([]byte("test-secret"))

	tokenString, err := signer.Sign("user-1", "json", 15*time.Minute)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	token, err := signer.Validate(tokenString)
	if err != nil {
		t.Fatalf("First validate failed: %v", err)
	}

	signer.MarkUsed(token.TokenID)

	if _, err := signer.Validate(tokenString); err == nil {
		t.Fatal("Expected a used token to be rejected")
	}
}

func TestExportSigner_RejectsExpiredAndTampered(t *testing.T) {
	signer := NewExportSigner([]byte("test-secret"))

	expired, err := signer.Sign("user-1", "json", -time.Minute)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if _, err := signer.Validate(expired); err == nil {
		t.Error("Expected expired token rejected")
	}

	valid, err := signer.Sign("user-1", "json", 15*time.Minute)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	tampered := valid[:len(valid)-2] + "xx"
	if _, err := signer.Validate(tampered); err == nil {
		t.Error("Expected tampered token rejected")
	}

	other := NewExportSigner([]byte("different-secret"))
	foreign, err := other.Sign("user-1", "json", 15*time.Minute)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if _, err := signer.Validate(foreign); err == nil {
		t.Error("Expected token signed with another key rejected")
	}

	if !strings.Contains(valid, ".") {
		t.Error("Expected a JWT-shaped token")
	}
}
