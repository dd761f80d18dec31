package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestGenerateTokenEmbedsIdentity(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(42, "alice", "super-admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims: %v", err)
	}

	if claims.AdminID != 42 {
		t.Errorf("AdminID = %d, want 42", claims.AdminID)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want alice", claims.Username)
	}
	if claims.Role != "super-admin" {
		t.Errorf("Role = %q, want super-admin", claims.Role)
	}
}

func TestTokenExpiryIsOneDay(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	before := time.Now()
	token, err := svc.GenerateToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	after := time.Now()

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims: %v", err)
	}

	exp := claims.ExpiresAt.Time
	if exp.Before(before.Add(TokenTTL)) || exp.After(after.Add(TokenTTL)) {
		t.Errorf("expiry %v not one day from issuance window [%v, %v]", exp, before, after)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	otherCfg := newTestConfig()
	otherCfg.JWTSecretKey = "a-different-secret"
	other := NewJWTService(otherCfg)

	token, err := other.GenerateToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ExtractClaims(token); err == nil {
		t.Error("expected validation failure for token signed with another secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	// Hand-craft an already expired token with the same secret
	claims := &JWTClaims{
		AdminID:  1,
		Username: "admin",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := svc.ExtractClaims(expired); err == nil {
		t.Error("expected validation failure for expired token")
	}
}
