package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_Format(t *testing.T) {
	stored, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	parts := strings.Split(stored, hashSeparator)
	if len(parts) != 2 {
		t.Fatalf("expected hash.salt format, got %q", stored)
	}
	if len(parts[0]) != keyLength*2 {
		t.Fatalf("expected %d hex chars of hash, got %d", keyLength*2, len(parts[0]))
	}
	if len(parts[1]) != saltLength*2 {
		t.Fatalf("expected %d hex chars of salt, got %d", saltLength*2, len(parts[1]))
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := HashPassword("password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := HashPassword("password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must not be equal")
	}
}

func TestCheckPasswordHash(t *testing.T) {
	stored, err := HashPassword("secret-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if !CheckPasswordHash("secret-password", stored) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", stored) {
		t.Fatal("wrong password accepted")
	}
}

func TestCheckPasswordHash_Malformed(t *testing.T) {
	cases := []string{
		"",
		"no-separator",
		"zzzz.abcd",
		"abcd.zzzz",
		"abcd.1234",
	}
	for _, stored := range cases {
		if CheckPasswordHash("password", stored) {
			t.Fatalf("malformed stored value %q accepted", stored)
		}
	}
}
