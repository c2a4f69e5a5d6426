package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrInvalidKeySize = errors.New("crypto: cipher key must be 32 bytes")
)

// KeySize is the symmetric key size shared by all suites.
const KeySize = 32

// aeadNonceSize is the 96-bit nonce used by both AEAD suites.
const aeadNonceSize = 12

// ctrIVSize is the full-block IV used by the AES-CTR suite.
const ctrIVSize = 16

// CipherKind identifies a symmetric cipher suite.
type CipherKind int

const (
	AESGCM   CipherKind = iota // AES-256-GCM
	ChaCha20                   // ChaCha20-Poly1305
	Megolm                     // Megolm-like AES-256-CTR
)

// CipherKinds lists every cipher suite in sweep order.
func CipherKinds() []CipherKind {
	return []CipherKind{AESGCM, ChaCha20, Megolm}
}

func (k CipherKind) String() string {
	switch k {
	case AESGCM:
		return "AES-GCM"
	case ChaCha20:
		return "ChaCha20"
	case Megolm:
		return "Megolm-Like"
	default:
		return "Unknown"
	}
}

// CipherSuite encrypts one plaintext under a 32-byte key with a fresh random
// nonce or IV per call. Seal returns the ciphertext (nonce excluded) and the
// nonce/IV length so callers can account for both on the wire.
type CipherSuite interface {
	Name() string
	NonceSize() int
	Seal(key, plaintext []byte) (ciphertext []byte, nonceLen int, err error)
}

// NewCipherSuite returns the suite for the given kind.
func NewCipherSuite(kind CipherKind) CipherSuite {
	switch kind {
	case AESGCM:
		return aesGCMSuite{}
	case ChaCha20:
		return chachaSuite{}
	default:
		return megolmSuite{}
	}
}

func randomNonce(n int) ([]byte, error) {
	nonce := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return nonce, nil
}

type aesGCMSuite struct{}

func (aesGCMSuite) Name() string   { return "AES-GCM" }
func (aesGCMSuite) NonceSize() int { return aeadNonceSize }

func (aesGCMSuite) Seal(key, plaintext []byte) ([]byte, int, error) {
	if len(key) != KeySize {
		return nil, 0, ErrInvalidKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, 0, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, 0, err
	}
	nonce, err := randomNonce(aeadNonceSize)
	if err != nil {
		return nil, 0, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), len(nonce), nil
}

type chachaSuite struct{}

func (chachaSuite) Name() string   { return "ChaCha20" }
func (chachaSuite) NonceSize() int { return aeadNonceSize }

func (chachaSuite) Seal(key, plaintext []byte) ([]byte, int, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, 0, ErrInvalidKeySize
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, 0, err
	}
	nonce, err := randomNonce(aeadNonceSize)
	if err != nil {
		return nil, 0, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), len(nonce), nil
}

// megolmSuite mirrors the Matrix Megolm construction's symmetric layer:
// AES-256 in CTR mode with a random 16-byte IV and no authentication tag.
type megolmSuite struct{}

func (megolmSuite) Name() string   { return "Megolm-Like" }
func (megolmSuite) NonceSize() int { return ctrIVSize }

func (megolmSuite) Seal(key, plaintext []byte) ([]byte, int, error) {
	if len(key) != KeySize {
		return nil, 0, ErrInvalidKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, 0, err
	}
	iv, err := randomNonce(ctrIVSize)
	if err != nil {
		return nil, 0, err
	}
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, plaintext)
	return ciphertext, len(iv), nil
}
