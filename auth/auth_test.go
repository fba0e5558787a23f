package auth

import (
	"testing"
)

var secret = []byte("test-secret")

func TestCredentialsRoundTrip(t *testing.T) {
	credentials, err := CreateCredentials("42", "local", 3600, 86400, secret)
	if err != nil {
		t.Fatalf("creating credentials: %v", err)
	}
	if credentials.TokenType != "Bearer" {
		t.Errorf("unexpected token type %q", credentials.TokenType)
	}
	if credentials.ExpiresIn != 3600 {
		t.Errorf("unexpected expiry %d", credentials.ExpiresIn)
	}

	claims, err := VerifyToken(credentials.AccessToken, secret)
	if err != nil {
		t.Fatalf("verifying access token: %v", err)
	}
	sub, err := claims.GetSubject()
	if err != nil || sub != "42" {
		t.Errorf("expected subject 42, got %q (%v)", sub, err)
	}
	aud, err := claims.GetAudience()
	if err != nil || len(aud) == 0 || aud[0] != AudienceAuth {
		t.Errorf("expected audience %q, got %v (%v)", AudienceAuth, aud, err)
	}
}

func TestRefreshTokenAudience(t *testing.T) {
	credentials, err := CreateCredentials("7", "local", 3600, 86400, secret)
	if err != nil {
		t.Fatalf("creating credentials: %v", err)
	}

	claims, err := VerifyToken(credentials.RefreshToken, secret)
	if err != nil {
		t.Fatalf("verifying refresh token: %v", err)
	}
	aud, err := claims.GetAudience()
	if err != nil || len(aud) == 0 || aud[0] != AudienceRefresh {
		t.Errorf("expected audience %q, got %v (%v)", AudienceRefresh, aud, err)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	credentials, err := CreateCredentials("42", "local", 3600, 86400, secret)
	if err != nil {
		t.Fatalf("creating credentials: %v", err)
	}

	if _, err := VerifyToken(credentials.AccessToken, []byte("other-secret")); err == nil {
		t.Error("expected verification to fail with the wrong secret")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	if _, err := VerifyToken("not-a-token", secret); err == nil {
		t.Error("expected verification to fail")
	}
}

func TestHashPassword(t *testing.T) {
	first := HashPassword("hunter2", "salt")
	second := HashPassword("hunter2", "salt")
	if first != second {
		t.Error("same password and salt hashed differently")
	}
	if HashPassword("hunter2", "other") == first {
		t.Error("different salts produced the same hash")
	}
	if HashPassword("hunter3", "salt") == first {
		t.Error("different passwords produced the same hash")
	}
	if len(first) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(first))
	}
}
