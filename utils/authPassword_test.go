package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("Str0ng!Pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hashed == "Str0ng!Pass" {
		t.Fatal("hash must not equal the plain-text password")
	}

	if !CheckPassword(hashed, "Str0ng!Pass") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hashed, "WrongPass1!") {
		t.Fatal("expected mismatched password to fail")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("Str0ng!Pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("Str0ng!Pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct hashes for the same password")
	}
}
