package utils

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("gizli-parola")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "gizli-parola" {
		t.Fatal("hash should not equal the raw password")
	}
	if !CheckPassword(hash, "gizli-parola") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "yanlis-parola") {
		t.Error("wrong password should not verify")
	}
}
