package service

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestAESCBCCipher_KnownAnswer(t *testing.T) {
	// NIST SP 800-38A F.2.5 CBC-AES256.Encrypt, first block.
	key := mustHex(t, "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	iv := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := mustHex(t, "6bc1bee22e409f96e93d7e117393172a")

	c := NewAESCBC()
	ciphertext, err := c.Encrypt(plaintext, key, iv)
	require.NoError(t, err)

	require.Len(t, ciphertext, 32)
	assert.Equal(t, mustHex(t, "f58c4c04d6e5f1ba779eabfb5f7bfbd6"), ciphertext[:16])

	decrypted, err := c.Decrypt(ciphertext, key, iv)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestAESCBCCipher_EncryptDecrypt(t *testing.T) {
	c := NewAESCBC()
	key := make([]byte, 32)
	iv := make([]byte, 16)
	_, err := rand.Read(key)
	require.NoError(t, err)
	_, err = rand.Read(iv)
	require.NoError(t, err)

	for _, size := range []int{1, 11, 15, 16, 17, 31, 32, 100, 4096} {
		plaintext := make([]byte, size)
		_, err := rand.Read(plaintext)
		require.NoError(t, err)

		ciphertext, err := c.Encrypt(plaintext, key, iv)
		require.NoError(t, err)
		assert.Equal(t, (size/16+1)*16, len(ciphertext), "size %d", size)

		decrypted, err := c.Decrypt(ciphertext, key, iv)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted, "size %d", size)
	}
}

func TestAESCBCCipher_Preconditions(t *testing.T) {
	c := NewAESCBC()
	key := make([]byte, 32)
	iv := make([]byte, 16)

	tests := []struct {
		name string
		data []byte
		key  []byte
		iv   []byte
		err  error
	}{
		{name: "128-bit key", data: []byte("x"), key: make([]byte, 16), iv: iv, err: envelopeDomain.ErrInvalidKeyLength},
		{name: "512-bit key", data: []byte("x"), key: make([]byte, 64), iv: iv, err: envelopeDomain.ErrInvalidKeyLength},
		{name: "short iv", data: []byte("x"), key: key, iv: make([]byte, 12), err: envelopeDomain.ErrInvalidIVLength},
		{name: "empty input", data: nil, key: key, iv: iv, err: envelopeDomain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run("Encrypt "+tt.name, func(t *testing.T) {
			out, err := c.Encrypt(tt.data, tt.key, tt.iv)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.err)
		})
		t.Run("Decrypt "+tt.name, func(t *testing.T) {
			out, err := c.Decrypt(tt.data, tt.key, tt.iv)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("Decrypt partial block", func(t *testing.T) {
		_, err := c.Decrypt(make([]byte, 17), key, iv)
		assert.ErrorIs(t, err, envelopeDomain.ErrInvalidInput)
	})
}

func TestAESCBCCipher_Decrypt_BadPadding(t *testing.T) {
	c := NewAESCBC()
	key := make([]byte, 32)
	iv := make([]byte, 16)

	ciphertext, err := c.Encrypt([]byte("hello world"), key, iv)
	require.NoError(t, err)

	// Flipping the last iv byte flips the last plaintext byte, i.e. the padding length.
	badIV := append([]byte{}, iv...)
	badIV[15] ^= 0xFF

	plaintext, err := c.Decrypt(ciphertext, key, badIV)

	assert.Nil(t, plaintext)
	assert.ErrorIs(t, err, envelopeDomain.ErrInvalidPadding)
}
