package crypto

import (
	"bytes"
	"testing"

	"github.com/cloudflare/circl/kem/kyber/kyber768"
)

func TestX25519ECDH(t *testing.T) {
	alice, err := GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	bob, err := GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}

	sharedAlice, err := ECDH(alice.PrivateKey, bob.PublicKey)
	if err != nil {
		t.Fatalf("ECDH alice: %v", err)
	}
	sharedBob, err := ECDH(bob.PrivateKey, alice.PublicKey)
	if err != nil {
		t.Fatalf("ECDH bob: %v", err)
	}
	if !bytes.Equal(sharedAlice, sharedBob) {
		t.Fatalf("shared secrets do not match")
	}

	var zero [32]byte
	if _, err := ECDH(alice.PrivateKey, zero); err != ErrInvalidPublicKey {
		t.Fatalf("expected ErrInvalidPublicKey for all-zero peer key, got %v", err)
	}
}

func TestClassicalAgreement(t *testing.T) {
	id, err := NewResponderIdentity(false)
	if err != nil {
		t.Fatalf("NewResponderIdentity: %v", err)
	}
	if id.KyberPublic != nil {
		t.Fatalf("classical identity should carry no Kyber key")
	}

	a := NewClassicalAgreement()
	secret, wire, err := a.Agree(id)
	if err != nil {
		t.Fatalf("Agree: %v", err)
	}
	if len(secret) != 32 {
		t.Fatalf("secret length %d, want 32", len(secret))
	}
	if wire != 32 {
		t.Fatalf("wire bytes %d, want 32 (one X25519 public key)", wire)
	}
}

func TestHybridAgreement(t *testing.T) {
	id, err := NewResponderIdentity(true)
	if err != nil {
		t.Fatalf("NewResponderIdentity: %v", err)
	}

	a := NewHybridAgreement()
	secret, wire, err := a.Agree(id)
	if err != nil {
		t.Fatalf("Agree: %v", err)
	}
	if len(secret) != 32+kyber768.SharedKeySize {
		t.Fatalf("secret length %d, want %d", len(secret), 32+kyber768.SharedKeySize)
	}
	wantWire := 32 + kyber768.CiphertextSize + kyber768.PublicKeySize
	if wire != wantWire {
		t.Fatalf("wire bytes %d, want %d", wire, wantWire)
	}
}

func TestHybridAgreementNeedsKyberKey(t *testing.T) {
	id, err := NewResponderIdentity(false)
	if err != nil {
		t.Fatalf("NewResponderIdentity: %v", err)
	}
	if _, _, err := NewHybridAgreement().Agree(id); err != ErrMissingKyberKey {
		t.Fatalf("expected ErrMissingKyberKey, got %v", err)
	}
}

func TestCipherSuites(t *testing.T) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	cases := []struct {
		kind     CipherKind
		nonceLen int
		tagLen   int
	}{
		{AESGCM, 12, 16},
		{ChaCha20, 12, 16},
		{Megolm, 16, 0},
	}
	for _, c := range cases {
		suite := NewCipherSuite(c.kind)
		if suite.Name() != c.kind.String() {
			t.Fatalf("%s: name mismatch: %s", c.kind, suite.Name())
		}
		if suite.NonceSize() != c.nonceLen {
			t.Fatalf("%s: nonce size %d, want %d", c.kind, suite.NonceSize(), c.nonceLen)
		}

		ct, nonceLen, err := suite.Seal(key, plaintext)
		if err != nil {
			t.Fatalf("%s: Seal: %v", c.kind, err)
		}
		if nonceLen != c.nonceLen {
			t.Fatalf("%s: reported nonce length %d, want %d", c.kind, nonceLen, c.nonceLen)
		}
		if len(ct) != len(plaintext)+c.tagLen {
			t.Fatalf("%s: ciphertext length %d, want %d", c.kind, len(ct), len(plaintext)+c.tagLen)
		}

		if _, _, err := suite.Seal(key[:16], plaintext); err != ErrInvalidKeySize {
			t.Fatalf("%s: expected ErrInvalidKeySize for short key, got %v", c.kind, err)
		}
	}
}

func TestSealFreshNonce(t *testing.T) {
	// Megolm is a pure stream cipher, so identical plaintext under the same
	// key encrypts differently only because the IV is fresh per call.
	key := make([]byte, KeySize)
	suite := NewCipherSuite(Megolm)
	plaintext := bytes.Repeat([]byte{0xAA}, 64)

	a, _, err := suite.Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	b, _, err := suite.Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("two Seal calls produced identical ciphertext")
	}
}

func TestDeriveSessionKeys(t *testing.T) {
	id, err := NewResponderIdentity(false)
	if err != nil {
		t.Fatalf("NewResponderIdentity: %v", err)
	}
	secret, _, err := NewClassicalAgreement().Agree(id)
	if err != nil {
		t.Fatalf("Agree: %v", err)
	}

	k1, k2, err := DeriveSessionKeys(secret, id.X25519.PublicKey)
	if err != nil {
		t.Fatalf("DeriveSessionKeys: %v", err)
	}
	if len(k1) != 32 || len(k2) != 32 {
		t.Fatalf("unexpected key lengths")
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("directional keys should differ")
	}
}

func BenchmarkClassicalAgree(b *testing.B) {
	id, _ := NewResponderIdentity(false)
	a := NewClassicalAgreement()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := a.Agree(id); err != nil {
			b.Fatalf("Agree: %v", err)
		}
	}
}

func BenchmarkHybridAgree(b *testing.B) {
	id, _ := NewResponderIdentity(true)
	a := NewHybridAgreement()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := a.Agree(id); err != nil {
			b.Fatalf("Agree: %v", err)
		}
	}
}

func BenchmarkSealAESGCM(b *testing.B) {
	benchmarkSeal(b, AESGCM)
}

func BenchmarkSealChaCha20(b *testing.B) {
	benchmarkSeal(b, ChaCha20)
}

func BenchmarkSealMegolm(b *testing.B) {
	benchmarkSeal(b, Megolm)
}

func benchmarkSeal(b *testing.B, kind CipherKind) {
	key := make([]byte, KeySize)
	suite := NewCipherSuite(kind)
	plaintext := make([]byte, 64*1024)
	b.SetBytes(int64(len(plaintext)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := suite.Seal(key, plaintext); err != nil {
			b.Fatalf("Seal: %v", err)
		}
	}
}
