package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("alice", RoleAdmin, "s3cret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token, "s3cret")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "alice" || claims.Role != RoleAdmin || claims.Issuer != AppName {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	good, _ := GenerateToken("alice", RoleAdmin, "s3cret", time.Hour)

	expiredClaims := &JWTClaims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}}
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("s3cret"))

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &JWTClaims{}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", good},
		{"garbage", "not-a-token"},
		{"expired", expired},
		{"unsigned", none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret := "s3cret"
			if tt.name == "wrong secret" {
				secret = "other"
			}
			if _, err := ValidateToken(tt.token, secret); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
