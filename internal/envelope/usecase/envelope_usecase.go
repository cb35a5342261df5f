package usecase

import (
	"context"
	"fmt"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
	envelopeService "github.com/allisson/envelope/internal/envelope/service"
)

// envelopeUseCase implements EnvelopeUseCase.
type envelopeUseCase struct {
	sealer   envelopeService.Sealer
	deriver  envelopeService.KeyDeriver
	random   envelopeService.RandomSource
	recorder Recorder
}

// NewEnvelopeUseCase creates a new EnvelopeUseCase.
func NewEnvelopeUseCase(
	sealer envelopeService.Sealer,
	deriver envelopeService.KeyDeriver,
	random envelopeService.RandomSource,
	recorder Recorder,
) EnvelopeUseCase {
	return &envelopeUseCase{
		sealer:   sealer,
		deriver:  deriver,
		random:   random,
		recorder: recorder,
	}
}

// GenerateKeys returns two independent random 256-bit keys.
func (e *envelopeUseCase) GenerateKeys(ctx context.Context) (*envelopeDomain.KeyPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pair, err := envelopeService.GenerateKeyPair(e.random)
	if err != nil {
		return nil, e.fail("generate keys", err)
	}
	return pair, nil
}

// DeriveKeys derives a key pair from password and salt.
func (e *envelopeUseCase) DeriveKeys(
	ctx context.Context,
	password string,
	salt []byte,
) (*envelopeDomain.KeyPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pair, err := e.deriver.Derive(password, salt)
	if err != nil {
		return nil, e.fail("derive keys", err)
	}
	return pair, nil
}

// Seal seals plaintext under raw keys.
func (e *envelopeUseCase) Seal(
	ctx context.Context,
	plaintext, cryptKey, authKey, associatedData []byte,
) (*envelopeDomain.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env, err := e.sealer.Seal(plaintext, cryptKey, authKey, associatedData)
	if err != nil {
		return nil, e.fail("seal", err)
	}
	return env, nil
}

// SealText seals plaintext and returns the base64 text form.
func (e *envelopeUseCase) SealText(
	ctx context.Context,
	plaintext, cryptKey, authKey, associatedData []byte,
) (string, error) {
	env, err := e.Seal(ctx, plaintext, cryptKey, authKey, associatedData)
	if err != nil {
		return "", err
	}
	return env.String(), nil
}

// Open opens a binary envelope.
func (e *envelopeUseCase) Open(
	ctx context.Context,
	envelope, cryptKey, authKey []byte,
	adLen int,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plaintext, err := e.sealer.Open(envelope, cryptKey, authKey, adLen)
	if err != nil {
		return nil, e.fail("open", err)
	}
	return plaintext, nil
}

// OpenText opens a base64 envelope.
func (e *envelopeUseCase) OpenText(
	ctx context.Context,
	content string,
	cryptKey, authKey []byte,
	adLen int,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plaintext, err := e.sealer.OpenFromText(content, cryptKey, authKey, adLen)
	if err != nil {
		return nil, e.fail("open", err)
	}
	return plaintext, nil
}

// SealWithPassword derives fresh keys from password and seals plaintext.
//
// The plaintext is checked before derivation so an empty message does not
// pay for key stretching or consume a salt.
func (e *envelopeUseCase) SealWithPassword(
	ctx context.Context,
	plaintext []byte,
	password string,
	associatedData []byte,
) (*envelopeDomain.PasswordEnvelope, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(plaintext) == 0 {
		return nil, e.fail("seal with password", fmt.Errorf("%w: plaintext is empty", envelopeDomain.ErrInvalidInput))
	}

	pair, err := e.deriver.Derive(password, nil)
	if err != nil {
		return nil, e.fail("seal with password", err)
	}
	defer pair.Zero()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env, err := e.sealer.Seal(plaintext, pair.CryptKey[:], pair.AuthKey[:], associatedData)
	if err != nil {
		return nil, e.fail("seal with password", err)
	}

	return &envelopeDomain.PasswordEnvelope{
		Iterations: e.deriver.Iterations(),
		Salt:       pair.Salt,
		Envelope:   env.Bytes(),
	}, nil
}

// OpenWithPassword re-derives the keys recorded in a password envelope and opens it.
//
// The iteration count stored in the envelope is used, not the configured one,
// so envelopes stay readable after the cost factor changes.
func (e *envelopeUseCase) OpenWithPassword(
	ctx context.Context,
	content, password string,
	adLen int,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	passwordEnvelope, err := envelopeDomain.NewPasswordEnvelope(content)
	if err != nil {
		return nil, e.fail("open with password", err)
	}

	deriver := e.deriver
	if passwordEnvelope.Iterations != deriver.Iterations() {
		deriver, err = deriver.WithIterations(passwordEnvelope.Iterations)
		if err != nil {
			// The count came from the envelope, so the envelope is at fault.
			return nil, e.fail("open with password", fmt.Errorf("%w: %v", envelopeDomain.ErrMalformedEnvelope, err))
		}
	}

	pair, err := deriver.Derive(password, passwordEnvelope.Salt)
	if err != nil {
		return nil, e.fail("open with password", err)
	}
	defer pair.Zero()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plaintext, err := e.sealer.Open(passwordEnvelope.Envelope, pair.CryptKey[:], pair.AuthKey[:], adLen)
	if err != nil {
		return nil, e.fail("open with password", err)
	}
	return plaintext, nil
}

// fail records a failed operation and returns err unchanged. Context errors
// never reach it: a canceled call is not a failed seal or open, and the
// metrics decorator labels it "canceled" instead.
func (e *envelopeUseCase) fail(operation string, err error) error {
	e.recorder.Record(fmt.Sprintf("envelope %s failed: %v", operation, err))
	return err
}
