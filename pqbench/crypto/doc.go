// Package crypto implements the key-agreement and cipher-suite capabilities
// measured by the benchmark.
//
// Key agreement comes in two flavors:
//   - Classical: one X25519 ECDH exchange (32 bytes on the wire)
//   - Hybrid: X25519 ECDH plus a Kyber768 encapsulation, with both shared
//     secrets concatenated (~2304 bytes on the wire)
//
// Cipher suites cover AES-256-GCM, ChaCha20-Poly1305 (RFC 8439) and a
// Megolm-like AES-256-CTR construction. Every Seal call draws a fresh random
// nonce or IV; the reported nonce length feeds the bandwidth accounting.
package crypto
