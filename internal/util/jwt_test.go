package util

import (
	"testing"
	"time"
)

func TestJWTManagerGenerateAndParse(t *testing.T) {
	manager := NewJWTManager("top-secret", time.Minute)

	token, expiresAt, err := manager.Generate(42, "user@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token to be non-empty")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatalf("expected expiry in the future")
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("unexpected email claim %q", claims.Email)
	}
}

func TestJWTManagerTokensAreUnique(t *testing.T) {
	manager := NewJWTManager("top-secret", time.Minute)

	first, _, err := manager.Generate(1, "a@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	second, _, err := manager.Generate(1, "a@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct tokens for repeated logins")
	}
}

func TestJWTManagerRejectsExpired(t *testing.T) {
	manager := NewJWTManager("top-secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	manager.now = func() time.Time { return issued }

	token, _, err := manager.Generate(7, "user@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	manager.now = time.Now
	if _, err := manager.Parse(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestJWTManagerRejectsForeignSecret(t *testing.T) {
	token, _, err := NewJWTManager("one", time.Minute).Generate(7, "user@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := NewJWTManager("two", time.Minute).Parse(token); err == nil {
		t.Fatalf("expected signature mismatch to be rejected")
	}
}
