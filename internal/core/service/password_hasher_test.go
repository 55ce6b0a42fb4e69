package service

import "testing"

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher()

	digest, err := h.Hash("password1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "password1" {
		t.Fatalf("digest must not equal plaintext")
	}

	if !h.Verify("password1", digest) {
		t.Fatalf("expected original password to verify")
	}
	if h.Verify("password2", digest) {
		t.Fatalf("expected other password to fail verification")
	}
	if h.Verify("", digest) {
		t.Fatalf("expected empty password to fail verification")
	}
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("password1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("password1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected salted digests to differ")
	}
}
