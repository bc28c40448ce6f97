package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	userModel "schoolku_backend/internals/features/users/user/model"
)

func testUser() userModel.UserModel {
	return userModel.UserModel{
		ID:       uuid.New(),
		UserName: "budi",
		Email:    "budi@example.com",
		FullName: "Budi Santoso",
		Role:     "teacher",
		IsActive: true,
	}
}

func TestCreateAndParseToken(t *testing.T) {
	user := testUser()
	now := time.Now()

	tok, err := CreateToken(user, "test-secret", now)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ParseToken(tok, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if got := claims["id"]; got != user.ID.String() {
		t.Fatalf("id claim = %v, want %s", got, user.ID)
	}
	if got := claims["user_name"]; got != "budi" {
		t.Fatalf("user_name claim = %v, want budi", got)
	}
	if got := claims["role"]; got != "teacher" {
		t.Fatalf("role claim = %v, want teacher", got)
	}
	if got := claims["email"]; got != "budi@example.com" {
		t.Fatalf("email claim = %v, want budi@example.com", got)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing or wrong type: %v", claims["exp"])
	}
	wantExp := now.Add(AccessTokenTTL).Unix()
	if int64(exp) != wantExp {
		t.Fatalf("exp = %d, want %d", int64(exp), wantExp)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	tok, err := CreateToken(testUser(), "right-secret", time.Now())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ParseToken(tok, "wrong-secret"); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestParseTokenExpired(t *testing.T) {
	issued := time.Now().Add(-AccessTokenTTL - time.Hour)
	tok, err := CreateToken(testUser(), "test-secret", issued)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ParseToken(tok, "test-secret"); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", "test-secret"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
