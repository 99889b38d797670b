package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("l3ague-night!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("unexpected hash format: %q", hash)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{"matching password", hash, "l3ague-night!", true},
		{"wrong password", hash, "l3ague-night", false},
		{"malformed hash", "not-a-valid-hash", "l3ague-night!", false},
		{"empty hash", "", "l3ague-night!", false},
		{"oversized password", hash, strings.Repeat("x", maxPasswordBytes+1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPassword(tt.hash, tt.password); got != tt.want {
				t.Fatalf("VerifyPassword = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashPasswordRejectsOversizedInput(t *testing.T) {
	if _, err := HashPassword(strings.Repeat("x", maxPasswordBytes)); err != nil {
		t.Fatalf("password at the limit: %v", err)
	}
	if _, err := HashPassword(strings.Repeat("x", maxPasswordBytes+1)); !errors.Is(err, errPasswordTooLong) {
		t.Fatalf("expected errPasswordTooLong, got %v", err)
	}
}
