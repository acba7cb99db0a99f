package security

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Fatalf("hash equals the plaintext")
	}

	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}

	if err := CheckPassword(hash, "correct horse battery staple"); err != nil {
		t.Fatalf("CheckPassword rejected the right password: %v", err)
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("secret-one")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if err := CheckPassword(hash, "secret-two"); err == nil {
		t.Fatalf("expected mismatch error, got nil")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	// must fail cleanly, never panic
	if err := CheckPassword("not-a-bcrypt-digest", "whatever"); err == nil {
		t.Fatalf("expected error for malformed hash, got nil")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	second, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same input are identical, salt missing")
	}
}
