package jwt

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("alice", testSecret, 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	payload, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	if payload.Username() != "alice" {
		t.Errorf("payload subject = %q, want %q", payload.Username(), "alice")
	}
	if payload.Issuer != TokenIssuer {
		t.Errorf("payload issuer = %q, want %q", payload.Issuer, TokenIssuer)
	}

	wantExpiry := time.Now().Add(30 * time.Minute).Unix()
	if diff := payload.ExpiresAt - wantExpiry; diff < -5 || diff > 5 {
		t.Errorf("payload expiry = %d, want about %d", payload.ExpiresAt, wantExpiry)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("alice", testSecret, -1*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken(token, testSecret); err == nil {
		t.Error("ParseToken() accepted an expired token")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("alice", testSecret, 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken(token, "a-different-secret"); err == nil {
		t.Error("ParseToken() accepted a token signed with another secret")
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken("alice", testSecret, 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token format: %q", token)
	}
	tampered := parts[0] + ".eyJzdWIiOiJtYWxsb3J5In0." + parts[2]

	if _, err := ParseToken(tampered, testSecret); err == nil {
		t.Error("ParseToken() accepted a tampered token")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(tokenString, testSecret); err == nil {
			t.Errorf("ParseToken(%q) accepted a malformed token", tokenString)
		}
	}
}
