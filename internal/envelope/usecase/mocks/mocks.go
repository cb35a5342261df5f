// Package mocks provides testify mocks for the envelope use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

// MockEnvelopeUseCase is a mock implementation of usecase.EnvelopeUseCase.
type MockEnvelopeUseCase struct {
	mock.Mock
}

func (m *MockEnvelopeUseCase) GenerateKeys(ctx context.Context) (*envelopeDomain.KeyPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*envelopeDomain.KeyPair), args.Error(1)
}

func (m *MockEnvelopeUseCase) DeriveKeys(
	ctx context.Context,
	password string,
	salt []byte,
) (*envelopeDomain.KeyPair, error) {
	args := m.Called(ctx, password, salt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*envelopeDomain.KeyPair), args.Error(1)
}

func (m *MockEnvelopeUseCase) Seal(
	ctx context.Context,
	plaintext, cryptKey, authKey, associatedData []byte,
) (*envelopeDomain.Envelope, error) {
	args := m.Called(ctx, plaintext, cryptKey, authKey, associatedData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*envelopeDomain.Envelope), args.Error(1)
}

func (m *MockEnvelopeUseCase) SealText(
	ctx context.Context,
	plaintext, cryptKey, authKey, associatedData []byte,
) (string, error) {
	args := m.Called(ctx, plaintext, cryptKey, authKey, associatedData)
	return args.String(0), args.Error(1)
}

func (m *MockEnvelopeUseCase) Open(
	ctx context.Context,
	envelope, cryptKey, authKey []byte,
	adLen int,
) ([]byte, error) {
	args := m.Called(ctx, envelope, cryptKey, authKey, adLen)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockEnvelopeUseCase) OpenText(
	ctx context.Context,
	content string,
	cryptKey, authKey []byte,
	adLen int,
) ([]byte, error) {
	args := m.Called(ctx, content, cryptKey, authKey, adLen)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockEnvelopeUseCase) SealWithPassword(
	ctx context.Context,
	plaintext []byte,
	password string,
	associatedData []byte,
) (*envelopeDomain.PasswordEnvelope, error) {
	args := m.Called(ctx, plaintext, password, associatedData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*envelopeDomain.PasswordEnvelope), args.Error(1)
}

func (m *MockEnvelopeUseCase) OpenWithPassword(
	ctx context.Context,
	content, password string,
	adLen int,
) ([]byte, error) {
	args := m.Called(ctx, content, password, adLen)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockRecorder is a mock implementation of usecase.Recorder.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(message string) {
	m.Called(message)
}
