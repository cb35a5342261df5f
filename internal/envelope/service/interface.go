// Package service provides the envelope encryption primitives: random source,
// password-based key derivation, AES-256-CBC with PKCS#7 padding, HMAC-SHA256
// and the encrypt-then-MAC sealer that assembles them.
package service

import (
	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

// RandomSource produces cryptographically secure random bytes.
type RandomSource interface {
	// NextBytes returns n random bytes or ErrEntropyUnavailable.
	NextBytes(n int) ([]byte, error)
}

// KeyDeriver turns a password and salt into a crypt/auth key pair.
type KeyDeriver interface {
	// Derive derives a key pair. A nil salt is replaced by a fresh random salt,
	// returned in the key pair.
	Derive(password string, salt []byte) (*envelopeDomain.KeyPair, error)

	// Iterations returns the cost factor used by Derive.
	Iterations() int

	// WithIterations returns a deriver with the same settings but a different cost factor.
	WithIterations(iterations int) (KeyDeriver, error)
}

// BlockCipher encrypts and decrypts whole messages under a key and iv.
type BlockCipher interface {
	// Encrypt pads and encrypts plaintext.
	Encrypt(plaintext, key, iv []byte) ([]byte, error)

	// Decrypt decrypts ciphertext and removes the padding.
	Decrypt(ciphertext, key, iv []byte) ([]byte, error)
}

// Authenticator computes and verifies MAC tags.
type Authenticator interface {
	// Tag computes the MAC tag of data.
	Tag(key, data []byte) (envelopeDomain.MacTag, error)

	// Verify reports whether tag is the MAC tag of data, in constant time.
	Verify(key, data []byte, tag envelopeDomain.MacTag) (bool, error)
}

// Sealer seals plaintext into envelopes and opens them again.
type Sealer interface {
	// Seal encrypts plaintext and authenticates associatedData || iv || ciphertext.
	Seal(plaintext, cryptKey, authKey, associatedData []byte) (*envelopeDomain.Envelope, error)

	// SealToText is Seal followed by base64 encoding of the envelope.
	SealToText(plaintext, cryptKey, authKey, associatedData []byte) (string, error)

	// Open verifies and decrypts a binary envelope whose associated data is adLen bytes long.
	Open(data, cryptKey, authKey []byte, adLen int) ([]byte, error)

	// OpenEnvelope verifies and decrypts a parsed envelope.
	OpenEnvelope(env *envelopeDomain.Envelope, cryptKey, authKey []byte) ([]byte, error)

	// OpenFromText decodes a base64 envelope and opens it.
	OpenFromText(content string, cryptKey, authKey []byte, adLen int) ([]byte, error)
}
