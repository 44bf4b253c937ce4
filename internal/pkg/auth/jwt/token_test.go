package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	payload := &Payload{
		Username: "ayse",
		Room:     "film-gecesi",
		Lang:     "tr",
	}

	tokenString, err := GenerateToken(payload, "test-secret", SessionExpiration)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	parsed, err := ParseToken(tokenString, "test-secret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	if parsed.Username != "ayse" || parsed.Room != "film-gecesi" || parsed.Lang != "tr" {
		t.Fatalf("claims mismatch: %+v", parsed)
	}
	if parsed.Issuer != TokenIssuer {
		t.Fatalf("expected issuer %q, got %q", TokenIssuer, parsed.Issuer)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	tokenString, err := GenerateToken(&Payload{Username: "ayse", Room: "oda"}, "test-secret", SessionExpiration)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(tokenString, "other-secret"); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	tokenString, err := GenerateToken(&Payload{Username: "ayse", Room: "oda"}, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(tokenString, "test-secret"); err == nil {
		t.Fatal("expected parse failure for expired token")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", "test-secret"); err == nil {
		t.Fatal("expected parse failure for malformed token")
	}
}
