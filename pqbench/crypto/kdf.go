package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a key of the specified length from an agreed secret using
// HKDF-SHA256. salt can be nil (zero salt); info provides context binding.
//
// The measured loop itself keys its ciphers with the raw truncated secret, so
// this helper sits outside the timing window. Real deployments would derive
// here instead of truncating.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	hk := hkdf.New(sha256.New, secret, salt, info)
	key := make([]byte, length)
	if _, err := io.ReadFull(hk, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveSessionKeys derives one 32-byte sending key per direction from an
// agreed secret, bound to the responder's public key.
func DeriveSessionKeys(secret []byte, responderPub [32]byte) ([]byte, []byte, error) {
	info := make([]byte, 0, 32+len("pqbench-session-keys"))
	info = append(info, []byte("pqbench-session-keys")...)
	info = append(info, responderPub[:]...)

	material, err := DeriveKey(secret, nil, info, 64)
	if err != nil {
		return nil, nil, err
	}
	return material[:32], material[32:64], nil
}
