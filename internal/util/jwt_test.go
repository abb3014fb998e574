package util

import (
	"testing"
	"time"

	"skillforge_backend/internal/model"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		Email: "mentor@skillforge.dev",
		Role:  model.Mentor,
	}
	user.ID = "user-1"

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != model.Mentor || claims.Email != "mentor@skillforge.dev" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{Email: "s@skillforge.dev", Role: model.Student}
	user.ID = "user-2"

	token, err := GenerateJWT(user, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseJWT(token, "secret-b"); err == nil {
		t.Fatal("expected parse to fail with the wrong secret")
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	user := &model.User{Email: "s@skillforge.dev", Role: model.Student}
	user.ID = "user-3"

	token, err := GenerateJWT(user, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatal("expected parse to fail for expired token")
	}
}
