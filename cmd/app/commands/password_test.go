package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
	usecaseMocks "github.com/allisson/envelope/internal/envelope/usecase/mocks"
)

func TestRunSealPassword(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	sealed := &envelopeDomain.PasswordEnvelope{
		Iterations: 10000,
		Salt:       []byte("0123456789abcdef"),
		Envelope:   []byte("sealed-envelope-bytes"),
	}

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEnvelopeUseCase{}
		mockUseCase.On("SealWithPassword", ctx, []byte("hello world"), "correct horse battery", []byte("")).
			Return(sealed, nil)

		var out bytes.Buffer
		io := IOTuple{Reader: bytes.NewBufferString("hello world"), Writer: &out}
		err := RunSealPassword(ctx, mockUseCase, logger, io, "correct horse battery", "", "text")

		require.NoError(t, err)
		assert.Equal(t, "10000:MDEyMzQ1Njc4OWFiY2RlZg==:c2VhbGVkLWVudmVsb3BlLWJ5dGVz\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEnvelopeUseCase{}
		mockUseCase.On("SealWithPassword", ctx, []byte("hello world"), "correct horse battery", []byte("v1")).
			Return(sealed, nil)

		var out bytes.Buffer
		io := IOTuple{Reader: bytes.NewBufferString("hello world"), Writer: &out}
		err := RunSealPassword(ctx, mockUseCase, logger, io, "correct horse battery", "v1", "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"iterations": 10000`)
		require.Contains(t, out.String(), `"salt": "MDEyMzQ1Njc4OWFiY2RlZg=="`)
		require.Contains(t, out.String(), `"associated_data_length": 2`)
	})

	t.Run("missing-password", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEnvelopeUseCase{}
		io := IOTuple{Reader: bytes.NewBufferString("hello world"), Writer: &bytes.Buffer{}}

		err := RunSealPassword(ctx, mockUseCase, logger, io, "", "", "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "password is required")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEnvelopeUseCase{}
		mockUseCase.On("SealWithPassword", ctx, []byte("hello world"), "short", []byte("")).
			Return(nil, envelopeDomain.ErrInvalidPassword)

		io := IOTuple{Reader: bytes.NewBufferString("hello world"), Writer: &bytes.Buffer{}}
		err := RunSealPassword(ctx, mockUseCase, logger, io, "short", "", "text")

		require.ErrorIs(t, err, envelopeDomain.ErrInvalidPassword)
	})
}

func TestRunOpenPassword(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	content := "10000:MDEyMzQ1Njc4OWFiY2RlZg==:c2VhbGVkLWVudmVsb3BlLWJ5dGVz"

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEnvelopeUseCase{}
		mockUseCase.On("OpenWithPassword", ctx, content, "correct horse battery", 0).
			Return([]byte("hello world"), nil)

		var out bytes.Buffer
		io := IOTuple{Reader: bytes.NewBufferString(content + "\n"), Writer: &out}
		err := RunOpenPassword(ctx, mockUseCase, logger, io, "correct horse battery", 0, "text")

		require.NoError(t, err)
		assert.Equal(t, "hello world", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("wrong-password", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEnvelopeUseCase{}
		mockUseCase.On("OpenWithPassword", ctx, content, "incorrect horse battery", 0).
			Return(nil, envelopeDomain.ErrAuthenticationFailed)

		var out bytes.Buffer
		io := IOTuple{Reader: bytes.NewBufferString(content), Writer: &out}
		err := RunOpenPassword(ctx, mockUseCase, logger, io, "incorrect horse battery", 0, "text")

		require.ErrorIs(t, err, envelopeDomain.ErrAuthenticationFailed)
		assert.Empty(t, out.String())
	})

	t.Run("no-input", func(t *testing.T) {
		mockUseCase := &usecaseMocks.MockEnvelopeUseCase{}
		io := IOTuple{Reader: nil, Writer: &bytes.Buffer{}}

		err := RunOpenPassword(ctx, mockUseCase, logger, io, "correct horse battery", 0, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "no input available")
	})
}
