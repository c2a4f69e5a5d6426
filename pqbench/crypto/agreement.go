package crypto

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/cloudflare/circl/kem/kyber/kyber768"
)

var (
	ErrMissingKyberKey = errors.New("crypto: responder has no Kyber encapsulation key")
	ErrShortSecret     = errors.New("crypto: agreed secret shorter than 32 bytes")
)

// ResponderIdentity is the long-lived key material of the responding party.
// The Kyber pair is only present for hybrid agreements.
type ResponderIdentity struct {
	X25519       X25519KeyPair
	KyberPublic  *kyber768.PublicKey
	KyberPrivate *kyber768.PrivateKey
}

// NewResponderIdentity generates a fresh responder identity. When hybrid is
// true a Kyber768 encapsulation keypair is generated alongside the X25519 one.
func NewResponderIdentity(hybrid bool) (*ResponderIdentity, error) {
	x, err := GenerateX25519()
	if err != nil {
		return nil, err
	}
	id := &ResponderIdentity{X25519: x}
	if hybrid {
		pk, sk, err := kyber768.GenerateKeyPair(rand.Reader)
		if err != nil {
			return nil, err
		}
		id.KyberPublic = pk
		id.KyberPrivate = sk
	}
	return id, nil
}

// KeyAgreement performs one key-establishment operation against a responder
// identity. Implementations report the secret (at least 32 bytes) and the
// number of bytes the exchange would put on the wire.
type KeyAgreement interface {
	Name() string
	Hybrid() bool
	Agree(id *ResponderIdentity) (secret []byte, wireBytes int, err error)
}

// ClassicalAgreement is a single ephemeral X25519 ECDH exchange.
// Wire cost: one encoded X25519 public key.
type ClassicalAgreement struct{}

func NewClassicalAgreement() ClassicalAgreement { return ClassicalAgreement{} }

func (ClassicalAgreement) Name() string { return "Olm-Classical" }
func (ClassicalAgreement) Hybrid() bool { return false }

func (ClassicalAgreement) Agree(id *ResponderIdentity) ([]byte, int, error) {
	eph, err := GenerateX25519()
	if err != nil {
		return nil, 0, err
	}
	secret, err := ECDH(eph.PrivateKey, id.X25519.PublicKey)
	if err != nil {
		return nil, 0, err
	}
	return secret, len(id.X25519.PublicKey), nil
}

// HybridAgreement combines X25519 ECDH with a Kyber768 encapsulation against
// the responder's encapsulation key. The two shared secrets are concatenated.
// Wire cost: X25519 public key + Kyber ciphertext + Kyber public key.
type HybridAgreement struct{}

func NewHybridAgreement() HybridAgreement { return HybridAgreement{} }

func (HybridAgreement) Name() string { return "Olm-Hybrid" }
func (HybridAgreement) Hybrid() bool { return true }

func (HybridAgreement) Agree(id *ResponderIdentity) ([]byte, int, error) {
	if id.KyberPublic == nil || id.KyberPrivate == nil {
		return nil, 0, ErrMissingKyberKey
	}

	eph, err := GenerateX25519()
	if err != nil {
		return nil, 0, err
	}
	classical, err := ECDH(eph.PrivateKey, id.X25519.PublicKey)
	if err != nil {
		return nil, 0, err
	}

	seed := make([]byte, kyber768.EncapsulationSeedSize)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, 0, err
	}
	ct := make([]byte, kyber768.CiphertextSize)
	encapsulated := make([]byte, kyber768.SharedKeySize)
	id.KyberPublic.EncapsulateTo(ct, encapsulated, seed)

	// The responder's decapsulation is part of the measured exchange.
	decapsulated := make([]byte, kyber768.SharedKeySize)
	id.KyberPrivate.DecapsulateTo(decapsulated, ct)

	secret := make([]byte, 0, len(classical)+len(encapsulated))
	secret = append(secret, classical...)
	secret = append(secret, encapsulated...)

	wire := len(id.X25519.PublicKey) + len(ct) + kyber768.PublicKeySize
	return secret, wire, nil
}
