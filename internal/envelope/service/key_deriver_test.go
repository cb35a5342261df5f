package service

import (
	"bytes"
	"crypto/sha256"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

func newTestDeriver(t *testing.T, random RandomSource) *PBKDF2KeyDeriver {
	t.Helper()
	deriver, err := NewPBKDF2KeyDeriver(random, envelopeDomain.DefaultOptions())
	require.NoError(t, err)
	return deriver
}

func TestNewPBKDF2KeyDeriver(t *testing.T) {
	t.Run("default options", func(t *testing.T) {
		deriver, err := NewPBKDF2KeyDeriver(NewCryptoRandomSource(), envelopeDomain.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 10000, deriver.Iterations())
	})

	t.Run("invalid options", func(t *testing.T) {
		opts := envelopeDomain.DefaultOptions()
		opts.KeyBits = 128

		deriver, err := NewPBKDF2KeyDeriver(NewCryptoRandomSource(), opts)

		assert.Nil(t, deriver)
		assert.ErrorIs(t, err, envelopeDomain.ErrInvalidOptions)
	})
}

func TestPBKDF2KeyDeriver_Derive(t *testing.T) {
	deriver := newTestDeriver(t, NewCryptoRandomSource())
	salt := []byte("0123456789abcdef")

	t.Run("same password and salt yield same keys", func(t *testing.T) {
		first, err := deriver.Derive("correct horse battery", salt)
		require.NoError(t, err)
		second, err := deriver.Derive("correct horse battery", salt)
		require.NoError(t, err)

		assert.Equal(t, first.CryptKey, second.CryptKey)
		assert.Equal(t, first.AuthKey, second.AuthKey)
		assert.Equal(t, envelopeDomain.Salt(salt), first.Salt)
	})

	t.Run("different salt yields different keys", func(t *testing.T) {
		first, err := deriver.Derive("correct horse battery", salt)
		require.NoError(t, err)
		second, err := deriver.Derive("correct horse battery", []byte("fedcba9876543210"))
		require.NoError(t, err)

		assert.NotEqual(t, first.CryptKey, second.CryptKey)
		assert.NotEqual(t, first.AuthKey, second.AuthKey)
	})

	t.Run("crypt and auth keys are the two halves of the PBKDF2 output", func(t *testing.T) {
		pair, err := deriver.Derive("correct horse battery", salt)
		require.NoError(t, err)

		expected := pbkdf2.Key([]byte("correct horse battery"), salt, 10000, 64, sha256.New)
		assert.Equal(t, expected[:32], pair.CryptKey[:])
		assert.Equal(t, expected[32:], pair.AuthKey[:])
		assert.NotEqual(t, pair.CryptKey[:], pair.AuthKey[:])
	})

	t.Run("nil salt generates a fresh one", func(t *testing.T) {
		random := &countingRandomSource{next: NewCryptoRandomSource()}
		d := newTestDeriver(t, random)

		first, err := d.Derive("correct horse battery", nil)
		require.NoError(t, err)
		second, err := d.Derive("correct horse battery", nil)
		require.NoError(t, err)

		assert.Len(t, first.Salt, envelopeDomain.DefaultSaltSize)
		assert.NotEqual(t, first.Salt, second.Salt)
		assert.NotEqual(t, first.CryptKey, second.CryptKey)
		assert.Equal(t, 2, random.calls)

		again, err := d.Derive("correct horse battery", first.Salt)
		require.NoError(t, err)
		assert.Equal(t, first.CryptKey, again.CryptKey)
		assert.Equal(t, first.AuthKey, again.AuthKey)
	})

	t.Run("generated salt honors larger minimum", func(t *testing.T) {
		opts := envelopeDomain.DefaultOptions()
		opts.SaltBits = 256
		d, err := NewPBKDF2KeyDeriver(NewCryptoRandomSource(), opts)
		require.NoError(t, err)

		pair, err := d.Derive("correct horse battery", nil)
		require.NoError(t, err)
		assert.Len(t, pair.Salt, 32)
	})

	t.Run("salt too short", func(t *testing.T) {
		_, err := deriver.Derive("correct horse battery", []byte("short"))
		assert.ErrorIs(t, err, envelopeDomain.ErrInvalidSalt)
	})

	t.Run("entropy failure", func(t *testing.T) {
		d := newTestDeriver(t, NewReaderRandomSource(bytes.NewReader(nil)))

		_, err := d.Derive("correct horse battery", nil)
		assert.ErrorIs(t, err, envelopeDomain.ErrEntropyUnavailable)
	})
}

func TestPBKDF2KeyDeriver_Derive_InvalidPassword(t *testing.T) {
	random := &countingRandomSource{next: NewCryptoRandomSource()}
	deriver := newTestDeriver(t, random)

	tests := []struct {
		name     string
		password string
	}{
		{name: "empty", password: ""},
		{name: "eleven characters", password: "abcdefghijk"},
		{name: "short multibyte", password: "ññññ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := deriver.Derive(tt.password, nil)

			assert.Nil(t, pair)
			assert.ErrorIs(t, err, envelopeDomain.ErrInvalidPassword)
		})
	}

	assert.Equal(t, 0, random.calls)
}

func TestPBKDF2KeyDeriver_WithIterations(t *testing.T) {
	deriver := newTestDeriver(t, NewCryptoRandomSource())
	salt := []byte("0123456789abcdef")

	t.Run("different cost yields different keys", func(t *testing.T) {
		cheaper, err := deriver.WithIterations(1000)
		require.NoError(t, err)
		assert.Equal(t, 1000, cheaper.Iterations())
		assert.Equal(t, 10000, deriver.Iterations())

		a, err := deriver.Derive("correct horse battery", salt)
		require.NoError(t, err)
		b, err := cheaper.Derive("correct horse battery", salt)
		require.NoError(t, err)
		assert.NotEqual(t, a.CryptKey, b.CryptKey)
	})

	t.Run("non-positive iterations", func(t *testing.T) {
		_, err := deriver.WithIterations(0)
		assert.ErrorIs(t, err, envelopeDomain.ErrInvalidOptions)
	})

	t.Run("iterations above the ceiling", func(t *testing.T) {
		_, err := deriver.WithIterations(envelopeDomain.DefaultMaxIterations + 1)
		assert.ErrorIs(t, err, envelopeDomain.ErrInvalidOptions)

		_, err = deriver.WithIterations(math.MaxInt)
		assert.ErrorIs(t, err, envelopeDomain.ErrInvalidOptions)
	})

	t.Run("iterations at the ceiling", func(t *testing.T) {
		costly, err := deriver.WithIterations(envelopeDomain.DefaultMaxIterations)
		require.NoError(t, err)
		assert.Equal(t, envelopeDomain.DefaultMaxIterations, costly.Iterations())
	})
}

func TestGenerateKeyPair(t *testing.T) {
	t.Run("independent keys", func(t *testing.T) {
		pair, err := GenerateKeyPair(NewCryptoRandomSource())
		require.NoError(t, err)

		assert.NotEqual(t, envelopeDomain.CryptKey{}, pair.CryptKey)
		assert.NotEqual(t, pair.CryptKey[:], pair.AuthKey[:])
		assert.Nil(t, pair.Salt)
	})

	t.Run("deterministic source", func(t *testing.T) {
		raw := make([]byte, 64)
		for i := range raw {
			raw[i] = byte(i)
		}

		pair, err := GenerateKeyPair(NewReaderRandomSource(bytes.NewReader(raw)))
		require.NoError(t, err)

		assert.Equal(t, raw[:32], pair.CryptKey[:])
		assert.Equal(t, raw[32:], pair.AuthKey[:])
	})

	t.Run("entropy failure", func(t *testing.T) {
		_, err := GenerateKeyPair(NewReaderRandomSource(failingReader{}))
		assert.ErrorIs(t, err, envelopeDomain.ErrEntropyUnavailable)
	})
}
