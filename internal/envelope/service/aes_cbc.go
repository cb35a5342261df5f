package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

// AESCBCCipher implements BlockCipher using AES-256 in CBC mode with PKCS#7
// padding.
//
// CBC provides confidentiality only. It must always be paired with a MAC over
// the iv and ciphertext, which is what EnvelopeSealer does.
//
// Thread safety: every call builds its own cipher state; the type holds none.
type AESCBCCipher struct{}

// NewAESCBC creates a new AES-256-CBC cipher.
func NewAESCBC() *AESCBCCipher {
	return &AESCBCCipher{}
}

// Encrypt pads plaintext to a whole number of blocks and encrypts it.
//
// Returns ErrInvalidKeyLength, ErrInvalidIVLength or ErrInvalidInput (empty
// plaintext) before any cipher state is created.
func (c *AESCBCCipher) Encrypt(plaintext, key, iv []byte) ([]byte, error) {
	cryptKey, err := checkCipherParams(plaintext, key, iv)
	if err != nil {
		return nil, err
	}
	defer envelopeDomain.Zero(cryptKey[:])

	block, err := aes.NewCipher(cryptKey[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	defer envelopeDomain.Zero(padded)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// Decrypt decrypts ciphertext and strips the padding.
//
// Returns ErrInvalidPadding when the recovered padding is malformed; the
// partially decrypted buffer is wiped and never returned.
func (c *AESCBCCipher) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	cryptKey, err := checkCipherParams(ciphertext, key, iv)
	if err != nil {
		return nil, err
	}
	defer envelopeDomain.Zero(cryptKey[:])
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf(
			"%w: ciphertext is not a multiple of %d bytes",
			envelopeDomain.ErrInvalidInput,
			aes.BlockSize,
		)
	}

	block, err := aes.NewCipher(cryptKey[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		envelopeDomain.Zero(padded)
		return nil, err
	}

	return plaintext, nil
}

func checkCipherParams(data, key, iv []byte) (envelopeDomain.CryptKey, error) {
	cryptKey, err := envelopeDomain.NewCryptKey(key)
	if err != nil {
		return cryptKey, err
	}
	if len(iv) != envelopeDomain.IVSize {
		return cryptKey, fmt.Errorf("%w: iv is %d bits", envelopeDomain.ErrInvalidIVLength, len(iv)*8)
	}
	if len(data) == 0 {
		return cryptKey, fmt.Errorf("%w: empty input", envelopeDomain.ErrInvalidInput)
	}
	return cryptKey, nil
}
