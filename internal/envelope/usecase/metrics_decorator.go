package usecase

import (
	"context"
	"time"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
	"github.com/allisson/envelope/internal/metrics"
)

// envelopeUseCaseWithMetrics decorates EnvelopeUseCase with metrics instrumentation.
type envelopeUseCaseWithMetrics struct {
	next    EnvelopeUseCase
	metrics metrics.BusinessMetrics
}

// NewEnvelopeUseCaseWithMetrics wraps an EnvelopeUseCase with metrics recording.
func NewEnvelopeUseCaseWithMetrics(useCase EnvelopeUseCase, m metrics.BusinessMetrics) EnvelopeUseCase {
	return &envelopeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GenerateKeys records metrics for key generation operations.
func (e *envelopeUseCaseWithMetrics) GenerateKeys(ctx context.Context) (*envelopeDomain.KeyPair, error) {
	start := time.Now()
	pair, err := e.next.GenerateKeys(ctx)
	e.record(ctx, "envelope_generate_keys", start, err)
	return pair, err
}

// DeriveKeys records metrics for key derivation operations.
func (e *envelopeUseCaseWithMetrics) DeriveKeys(
	ctx context.Context,
	password string,
	salt []byte,
) (*envelopeDomain.KeyPair, error) {
	start := time.Now()
	pair, err := e.next.DeriveKeys(ctx, password, salt)
	e.record(ctx, "envelope_derive_keys", start, err)
	return pair, err
}

// Seal records metrics for seal operations.
func (e *envelopeUseCaseWithMetrics) Seal(
	ctx context.Context,
	plaintext, cryptKey, authKey, associatedData []byte,
) (*envelopeDomain.Envelope, error) {
	start := time.Now()
	env, err := e.next.Seal(ctx, plaintext, cryptKey, authKey, associatedData)
	e.record(ctx, "envelope_seal", start, err)
	return env, err
}

// SealText records metrics for text seal operations.
func (e *envelopeUseCaseWithMetrics) SealText(
	ctx context.Context,
	plaintext, cryptKey, authKey, associatedData []byte,
) (string, error) {
	start := time.Now()
	text, err := e.next.SealText(ctx, plaintext, cryptKey, authKey, associatedData)
	e.record(ctx, "envelope_seal_text", start, err)
	return text, err
}

// Open records metrics for open operations.
func (e *envelopeUseCaseWithMetrics) Open(
	ctx context.Context,
	envelope, cryptKey, authKey []byte,
	adLen int,
) ([]byte, error) {
	start := time.Now()
	plaintext, err := e.next.Open(ctx, envelope, cryptKey, authKey, adLen)
	e.record(ctx, "envelope_open", start, err)
	return plaintext, err
}

// OpenText records metrics for text open operations.
func (e *envelopeUseCaseWithMetrics) OpenText(
	ctx context.Context,
	content string,
	cryptKey, authKey []byte,
	adLen int,
) ([]byte, error) {
	start := time.Now()
	plaintext, err := e.next.OpenText(ctx, content, cryptKey, authKey, adLen)
	e.record(ctx, "envelope_open_text", start, err)
	return plaintext, err
}

// SealWithPassword records metrics for password seal operations.
func (e *envelopeUseCaseWithMetrics) SealWithPassword(
	ctx context.Context,
	plaintext []byte,
	password string,
	associatedData []byte,
) (*envelopeDomain.PasswordEnvelope, error) {
	start := time.Now()
	env, err := e.next.SealWithPassword(ctx, plaintext, password, associatedData)
	e.record(ctx, "envelope_seal_password", start, err)
	return env, err
}

// OpenWithPassword records metrics for password open operations.
func (e *envelopeUseCaseWithMetrics) OpenWithPassword(
	ctx context.Context,
	content, password string,
	adLen int,
) ([]byte, error) {
	start := time.Now()
	plaintext, err := e.next.OpenWithPassword(ctx, content, password, adLen)
	e.record(ctx, "envelope_open_password", start, err)
	return plaintext, err
}

// record reports the outcome of operation. A canceled context is reported
// with its own status; the wrapped use case does not record it as a failure.
func (e *envelopeUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.RecordOutcome(ctx, e.metrics, "envelope", operation, start, err)
}
