package domain

import (
	"fmt"
)

// CryptKey is a 256-bit key used only for block cipher encryption and decryption.
type CryptKey [KeySize]byte

// AuthKey is a 256-bit key used only for computing and verifying MAC tags.
type AuthKey [KeySize]byte

// IV is a 128-bit initialization vector. A fresh one is drawn for every seal.
type IV [IVSize]byte

// MacTag is the 256-bit HMAC-SHA256 output that closes every envelope.
type MacTag [TagSize]byte

// Salt is the random input to password-based key derivation.
type Salt []byte

// NewCryptKey copies b into a CryptKey. It returns ErrInvalidKeyLength unless
// b is exactly 32 bytes.
func NewCryptKey(b []byte) (CryptKey, error) {
	var k CryptKey
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: crypt key is %d bits", ErrInvalidKeyLength, len(b)*8)
	}
	copy(k[:], b)
	return k, nil
}

// NewAuthKey copies b into an AuthKey. It returns ErrInvalidKeyLength unless
// b is exactly 32 bytes.
func NewAuthKey(b []byte) (AuthKey, error) {
	var k AuthKey
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: auth key is %d bits", ErrInvalidKeyLength, len(b)*8)
	}
	copy(k[:], b)
	return k, nil
}

// NewSalt copies b into a Salt, requiring at least minBits bits.
func NewSalt(b []byte, minBits int) (Salt, error) {
	if len(b)*8 < minBits {
		return nil, fmt.Errorf("%w: salt is %d bits, minimum is %d", ErrInvalidSalt, len(b)*8, minBits)
	}
	s := make(Salt, len(b))
	copy(s, b)
	return s, nil
}

// KeyPair holds the two keys needed to seal and open envelopes.
// Salt is set when the pair was derived from a password.
type KeyPair struct {
	CryptKey CryptKey
	AuthKey  AuthKey
	Salt     Salt
}

// Zero clears both keys from memory. The salt is not secret and is kept.
func (k *KeyPair) Zero() {
	Zero(k.CryptKey[:])
	Zero(k.AuthKey[:])
}
