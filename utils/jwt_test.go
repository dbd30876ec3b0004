package utils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("42", "editor")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != "42" || claims.Role != "editor" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken("1", "member"); err == nil {
		t.Error("GenerateToken should fail without JWT_SECRET")
	}
	if _, err := VerifyToken("x.y.z"); err == nil {
		t.Error("VerifyToken should fail without JWT_SECRET")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := VerifyToken("not-a-token"); err == nil {
		t.Error("garbage token should not verify")
	}
}
