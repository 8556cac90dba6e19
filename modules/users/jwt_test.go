package users

import (
	"errors"
	"testing"
	"time"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		SecretKey:     "test-secret-key",
		TokenDuration: time.Hour,
		Issuer:        "test-issuer",
	}
}

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	userID := "user-123"

	token, err := manager.Generate(userID)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if token == "" {
		t.Error("Generate() returned empty token")
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("claims.UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Subject != userID {
		t.Errorf("claims.Subject = %v, want %v", claims.Subject, userID)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("claims.Issuer = %v, want %v", claims.Issuer, "test-issuer")
	}
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	config := testJWTConfig()
	config.TokenDuration = -time.Minute
	manager := NewJWTManager(config)

	token, err := manager.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = manager.Validate(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Validate() error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTManager_InvalidToken(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "garbage token",
			token: "not-a-jwt",
		},
		{
			name:  "truncated token",
			token: "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.Validate(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	token, err := manager.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	otherConfig := testJWTConfig()
	otherConfig.SecretKey = "a-different-secret"
	other := NewJWTManager(otherConfig)

	_, err = other.Validate(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() with wrong secret error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_ExpiredDistinctFromInvalid(t *testing.T) {
	expiredConfig := testJWTConfig()
	expiredConfig.TokenDuration = -time.Minute
	expired := NewJWTManager(expiredConfig)

	expiredToken, err := expired.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	manager := NewJWTManager(testJWTConfig())

	_, expiredErr := manager.Validate(expiredToken)
	_, invalidErr := manager.Validate("garbage")

	if errors.Is(expiredErr, invalidErr) {
		t.Error("expired and invalid tokens must produce distinguishable errors")
	}
	if !errors.Is(expiredErr, ErrExpiredToken) {
		t.Errorf("expired token error = %v, want ErrExpiredToken", expiredErr)
	}
	if !errors.Is(invalidErr, ErrInvalidToken) {
		t.Errorf("invalid token error = %v, want ErrInvalidToken", invalidErr)
	}
}
