// Package usecase provides the envelope encryption use cases consumed by the
// command-line front end.
package usecase

import (
	"context"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

// Recorder receives operational events such as failed seal or open attempts.
// Messages never carry keys, passwords or plaintext.
type Recorder interface {
	Record(message string)
}

// EnvelopeUseCase defines the interface for envelope encryption operations.
type EnvelopeUseCase interface {
	// GenerateKeys returns two independent random 256-bit keys.
	GenerateKeys(ctx context.Context) (*envelopeDomain.KeyPair, error)

	// DeriveKeys derives a key pair from a password. A nil salt is replaced by
	// a fresh random salt, which the caller must persist.
	DeriveKeys(ctx context.Context, password string, salt []byte) (*envelopeDomain.KeyPair, error)

	// Seal seals plaintext under raw 32-byte keys.
	Seal(
		ctx context.Context,
		plaintext, cryptKey, authKey, associatedData []byte,
	) (*envelopeDomain.Envelope, error)

	// SealText is Seal returning the base64 text form.
	SealText(ctx context.Context, plaintext, cryptKey, authKey, associatedData []byte) (string, error)

	// Open opens a binary envelope whose associated data is adLen bytes long.
	//
	// Security Note: callers own the returned plaintext and should wipe it
	// with envelopeDomain.Zero once done.
	Open(ctx context.Context, envelope, cryptKey, authKey []byte, adLen int) ([]byte, error)

	// OpenText opens a base64 envelope.
	OpenText(ctx context.Context, content string, cryptKey, authKey []byte, adLen int) ([]byte, error)

	// SealWithPassword derives keys from password with a fresh salt and seals
	// plaintext. The result carries the salt and iteration count.
	SealWithPassword(
		ctx context.Context,
		plaintext []byte,
		password string,
		associatedData []byte,
	) (*envelopeDomain.PasswordEnvelope, error)

	// OpenWithPassword opens a password envelope in its text form.
	OpenWithPassword(ctx context.Context, content, password string, adLen int) ([]byte, error)
}
