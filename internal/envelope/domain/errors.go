package domain

import (
	"github.com/allisson/envelope/internal/errors"
)

// Envelope error definitions.
//
// These domain-specific errors wrap the base kinds from internal/errors so
// callers can tell caller misuse (ErrInvalidInput) from integrity failures
// (ErrUnauthorized) and environment failures (ErrUnavailable).
var (
	// ErrInvalidPassword indicates the password is empty or shorter than the
	// configured minimum length.
	ErrInvalidPassword = errors.Wrap(errors.ErrInvalidInput, "invalid password")

	// ErrInvalidKeyLength indicates a crypt or auth key is not exactly 256 bits.
	ErrInvalidKeyLength = errors.Wrap(errors.ErrInvalidInput, "invalid key length")

	// ErrInvalidIVLength indicates an initialization vector is not exactly 128 bits.
	ErrInvalidIVLength = errors.Wrap(errors.ErrInvalidInput, "invalid iv length")

	// ErrInvalidInput indicates an empty plaintext or ciphertext, or a
	// ciphertext that is not a whole number of blocks.
	ErrInvalidInput = errors.Wrap(errors.ErrInvalidInput, "invalid input")

	// ErrInvalidSalt indicates a salt shorter than the configured minimum.
	ErrInvalidSalt = errors.Wrap(errors.ErrInvalidInput, "invalid salt")

	// ErrInvalidOptions indicates the envelope options are out of range.
	ErrInvalidOptions = errors.Wrap(errors.ErrInvalidInput, "invalid options")

	// ErrMalformedEnvelope indicates the envelope is too short to hold the
	// mandatory fields or cannot be decoded.
	ErrMalformedEnvelope = errors.Wrap(errors.ErrInvalidInput, "malformed envelope")

	// ErrInvalidPadding indicates malformed block padding after decryption.
	//
	// It is only returned by the low-level decryptor. Opening an envelope
	// reports ErrAuthenticationFailed instead so padding and MAC failures are
	// indistinguishable to callers.
	ErrInvalidPadding = errors.Wrap(errors.ErrInvalidInput, "invalid padding")

	// ErrAuthenticationFailed indicates the MAC tag did not match or the
	// authenticated ciphertext failed to decrypt. Retrying with the same
	// inputs cannot succeed.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrUnauthorized, "authentication failed")

	// ErrEntropyUnavailable indicates the random source failed to produce bytes.
	ErrEntropyUnavailable = errors.Wrap(errors.ErrUnavailable, "entropy unavailable")
)
