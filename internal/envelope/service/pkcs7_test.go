package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

func TestPKCS7Pad(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{name: "one byte", size: 1, expected: 16},
		{name: "fifteen bytes", size: 15, expected: 16},
		{name: "full block adds a block", size: 16, expected: 32},
		{name: "seventeen bytes", size: 17, expected: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := bytes.Repeat([]byte{'a'}, tt.size)

			padded := pkcs7Pad(data, 16)

			require.Len(t, padded, tt.expected)
			padLen := tt.expected - tt.size
			assert.Equal(t, bytes.Repeat([]byte{byte(padLen)}, padLen), padded[tt.size:])

			unpadded, err := pkcs7Unpad(padded, 16)
			require.NoError(t, err)
			assert.Equal(t, data, unpadded)
		})
	}
}

func TestPKCS7Unpad_Errors(t *testing.T) {
	valid := pkcs7Pad([]byte("hello world"), 16)

	tests := []struct {
		name string
		data func() []byte
	}{
		{name: "empty", data: func() []byte { return nil }},
		{name: "partial block", data: func() []byte { return valid[:15] }},
		{name: "zero padding byte", data: func() []byte {
			b := append([]byte{}, valid...)
			b[15] = 0
			return b
		}},
		{name: "padding larger than block", data: func() []byte {
			b := append([]byte{}, valid...)
			b[15] = 17
			return b
		}},
		{name: "inconsistent padding bytes", data: func() []byte {
			b := append([]byte{}, valid...)
			b[11] = 0x04
			return b
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pkcs7Unpad(tt.data(), 16)
			assert.ErrorIs(t, err, envelopeDomain.ErrInvalidPadding)
		})
	}
}
