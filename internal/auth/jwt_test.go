package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(42, "ana@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	userID, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("Verify() userID = %d, want 42", userID)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(42, "ana@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("Verify() accepted a token signed with another secret")
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue(42, "ana@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Error("Verify() accepted an expired token")
	}
}

func TestTokenGarbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	if _, err := m.Verify("not.a.token"); err == nil {
		t.Error("Verify() accepted garbage")
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("CheckPassword() rejected the right password")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("CheckPassword() accepted the wrong password")
	}
}
