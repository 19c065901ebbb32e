package utils

import (
	"testing"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	accessToken, refreshToken, err := GenerateTokens("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("expected non-empty tokens")
	}
	if accessToken == refreshToken {
		t.Fatal("access and refresh tokens must differ")
	}

	claims, err := ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "42" {
		t.Fatalf("expected user ID 42, got %q", claims.UserID)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	if _, err := ValidateToken("v2.local.not-a-real-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	token, err := GenerateAccessToken("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("SYMMETRIC_KEY", "ffffffffffffffffffffffffffffffff")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected error when decrypting with a different key")
	}
}
