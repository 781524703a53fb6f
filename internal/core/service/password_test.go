package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashIsSaltedAndVerifiable(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if first == "p1" {
		t.Fatalf("hash equals plaintext")
	}
	if first == second {
		t.Fatalf("expected distinct salts, got identical hashes")
	}
	if !h.Verify("p1", first) || !h.Verify("p1", second) {
		t.Fatalf("expected both hashes to verify")
	}
}

func TestBcryptHasher_VerifyRejectsOtherPlaintext(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	hash, _ := h.Hash("correct horse")

	for _, candidate := range []string{"", "correct", "correct horse ", "Correct horse"} {
		if h.Verify(candidate, hash) {
			t.Fatalf("verify accepted %q", candidate)
		}
	}
	if h.Verify("correct horse", "not-a-hash") {
		t.Fatalf("verify accepted a malformed hash")
	}
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	h := NewBcryptHasher(0)
	hash, err := h.Hash("p")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != DefaultPasswordCost {
		t.Fatalf("expected cost %d, got %d", DefaultPasswordCost, cost)
	}
}
