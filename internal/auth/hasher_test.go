package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	if !h.Verify("correct horse battery staple", hash) {
		t.Error("expected verification to succeed for the right password")
	}
	if h.Verify("wrong password", hash) {
		t.Error("expected verification to fail for the wrong password")
	}
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password should differ due to salting")
	}
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewPasswordHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Errorf("expected fallback to default cost, got %d", h.cost)
	}
}

func TestPasswordHasher_NeedsRehash(t *testing.T) {
	low := NewPasswordHasher(bcrypt.MinCost)
	high := NewPasswordHasher(bcrypt.MinCost + 2)

	hash, err := low.Hash("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if low.NeedsRehash(hash) {
		t.Error("hash at the configured cost should not need a rehash")
	}
	if !high.NeedsRehash(hash) {
		t.Error("hash below the configured cost should need a rehash")
	}
	if !high.NeedsRehash("not-a-bcrypt-hash") {
		t.Error("unparseable hash should need a rehash")
	}

	// Old hashes still verify after the cost is raised.
	if !high.Verify("password123", hash) {
		t.Error("hash produced at a lower cost should still verify")
	}
}
