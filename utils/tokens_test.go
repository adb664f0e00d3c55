package utils

import (
	"testing"
	"time"
)

func TestManager_AccessTokenRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	token, err := m.NewAccessToken(42, "admin", time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id %d, want 42", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("role %q, want admin", claims.Role)
	}
}

func TestManager_RejectsForeignKey(t *testing.T) {
	m1, _ := NewManager("key-one")
	m2, _ := NewManager("key-two")

	token, err := m1.NewAccessToken(42, "user", time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := m2.Parse(token); err == nil {
		t.Errorf("token signed with another key parsed successfully")
	}
}

func TestManager_RejectsExpiredToken(t *testing.T) {
	m, _ := NewManager("test-signing-key")

	token, err := m.NewAccessToken(42, "user", -time.Minute)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Errorf("expired token parsed successfully")
	}
}

func TestNewManager_EmptyKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Errorf("expected error for empty signing key")
	}
}

func TestNewRefreshToken_Unique(t *testing.T) {
	m, _ := NewManager("test-signing-key")

	a, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}
	b, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}
	if a == b {
		t.Errorf("two refresh tokens collided")
	}
	if len(a) != 64 {
		t.Errorf("token length %d, want 64 hex chars", len(a))
	}
}
