package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	userModel "ttracker_backend/internals/features/users/user/model"
)

const testSecret = "test-secret"

func testUser() *userModel.UserModel {
	return &userModel.UserModel{
		ID:       uuid.New(),
		Username: "johnd",
		Role:     "coach",
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	u := testUser()
	now := time.Now()

	tok, err := GenerateToken(u, testSecret, now)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(tok, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims["sub"] != u.ID.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], u.ID)
	}
	if claims["username"] != "johnd" {
		t.Errorf("username = %v", claims["username"])
	}
	if claims["role"] != "coach" {
		t.Errorf("role = %v", claims["role"])
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	if _, err := GenerateToken(testUser(), "", time.Now()); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tok, err := GenerateToken(testUser(), testSecret, time.Now())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(tok, "other-secret"); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	issued := time.Now().Add(-2 * TokenTTL)
	tok, err := GenerateToken(testUser(), testSecret, issued)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(tok, testSecret); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", testSecret); err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestTokenExpiryMatchesTTL(t *testing.T) {
	now := time.Now()
	tok, err := GenerateToken(testUser(), testSecret, now)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	exp, err := TokenExpiry(tok)
	if err != nil {
		t.Fatalf("TokenExpiry: %v", err)
	}
	want := now.Add(TokenTTL)
	if diff := exp.Sub(want); diff < -time.Second || diff > time.Second {
		t.Errorf("expiry = %v, want about %v", exp, want)
	}
}

func TestTokenExpiryDoesNotVerifySignature(t *testing.T) {
	tok, err := GenerateToken(testUser(), testSecret, time.Now().Add(-2*TokenTTL))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	// Expired tokens still report their exp; logout relies on this.
	if _, err := TokenExpiry(tok); err != nil {
		t.Errorf("TokenExpiry on expired token: %v", err)
	}
}
