package service

import (
	"fmt"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

// EnvelopeSealer implements Sealer with encrypt-then-MAC.
//
// Seal: iv = random(16); ct = Encrypt(pt, cryptKey, iv);
// tag = MAC(authKey, ad || iv || ct); envelope = ad || iv || ct || tag.
//
// Open verifies the tag before decrypting. MAC mismatches and decryption
// failures of authenticated data are both reported as ErrAuthenticationFailed.
//
// Thread safety: the sealer holds no mutable state and is safe for concurrent
// use as long as its RandomSource is.
type EnvelopeSealer struct {
	random RandomSource
	cipher BlockCipher
	auth   Authenticator
}

// NewEnvelopeSealer creates a sealer from its collaborators.
func NewEnvelopeSealer(random RandomSource, cipher BlockCipher, auth Authenticator) *EnvelopeSealer {
	return &EnvelopeSealer{
		random: random,
		cipher: cipher,
		auth:   auth,
	}
}

// Seal encrypts plaintext under cryptKey with a fresh random iv and
// authenticates associatedData || iv || ciphertext under authKey.
//
// All inputs are validated before the random source is touched. Either a
// complete envelope or an error is returned, never both.
func (s *EnvelopeSealer) Seal(
	plaintext, cryptKey, authKey, associatedData []byte,
) (*envelopeDomain.Envelope, error) {
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("%w: plaintext is empty", envelopeDomain.ErrInvalidInput)
	}
	if err := checkKeys(cryptKey, authKey); err != nil {
		return nil, err
	}

	iv, err := s.random.NextBytes(envelopeDomain.IVSize)
	if err != nil {
		return nil, err
	}

	env := &envelopeDomain.Envelope{
		AssociatedData: append([]byte{}, associatedData...),
	}
	copy(env.IV[:], iv)

	env.Ciphertext, err = s.cipher.Encrypt(plaintext, cryptKey, env.IV[:])
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt plaintext: %w", err)
	}

	env.Tag, err = s.auth.Tag(authKey, env.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate envelope: %w", err)
	}

	return env, nil
}

// SealToText seals plaintext and returns the envelope as standard base64.
func (s *EnvelopeSealer) SealToText(plaintext, cryptKey, authKey, associatedData []byte) (string, error) {
	env, err := s.Seal(plaintext, cryptKey, authKey, associatedData)
	if err != nil {
		return "", err
	}
	return env.String(), nil
}

// Open parses a binary envelope and opens it. adLen is the length of the
// associated data bound at seal time.
//
// Returns:
//   - ErrInvalidKeyLength if either key is not 32 bytes
//   - ErrMalformedEnvelope if data cannot hold the mandatory fields
//   - ErrAuthenticationFailed if the tag does not match or decryption fails
func (s *EnvelopeSealer) Open(data, cryptKey, authKey []byte, adLen int) ([]byte, error) {
	if err := checkKeys(cryptKey, authKey); err != nil {
		return nil, err
	}

	env, err := envelopeDomain.ParseEnvelope(data, adLen)
	if err != nil {
		return nil, err
	}

	return s.OpenEnvelope(env, cryptKey, authKey)
}

// OpenEnvelope verifies the tag of env and, only if it matches, decrypts the ciphertext.
func (s *EnvelopeSealer) OpenEnvelope(env *envelopeDomain.Envelope, cryptKey, authKey []byte) ([]byte, error) {
	if err := checkKeys(cryptKey, authKey); err != nil {
		return nil, err
	}
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", envelopeDomain.ErrMalformedEnvelope)
	}

	ok, err := s.auth.Verify(authKey, env.Body(), env.Tag)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, envelopeDomain.ErrAuthenticationFailed
	}

	plaintext, err := s.cipher.Decrypt(env.Ciphertext, cryptKey, env.IV[:])
	if err != nil {
		// Padding errors must look exactly like MAC errors.
		return nil, envelopeDomain.ErrAuthenticationFailed
	}

	return plaintext, nil
}

// OpenFromText decodes a base64 envelope and opens it.
func (s *EnvelopeSealer) OpenFromText(content string, cryptKey, authKey []byte, adLen int) ([]byte, error) {
	if err := checkKeys(cryptKey, authKey); err != nil {
		return nil, err
	}

	env, err := envelopeDomain.ParseEnvelopeText(content, adLen)
	if err != nil {
		return nil, err
	}

	return s.OpenEnvelope(env, cryptKey, authKey)
}

// checkKeys rejects bad key lengths before any randomness is drawn or any
// input is parsed.
func checkKeys(cryptKey, authKey []byte) error {
	ck, err := envelopeDomain.NewCryptKey(cryptKey)
	if err != nil {
		return err
	}
	envelopeDomain.Zero(ck[:])

	ak, err := envelopeDomain.NewAuthKey(authKey)
	if err != nil {
		return err
	}
	envelopeDomain.Zero(ak[:])

	return nil
}
