package service

import (
	"crypto/subtle"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

// pkcs7Pad returns a new slice holding data followed by 1..blockSize padding
// bytes, each equal to the padding length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad strips PKCS#7 padding. The whole final block is inspected
// regardless of where the first bad byte is.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	n := len(data)
	if n == 0 || n%blockSize != 0 {
		return nil, envelopeDomain.ErrInvalidPadding
	}

	padLen := int(data[n-1])
	good := subtle.ConstantTimeLessOrEq(1, padLen) & subtle.ConstantTimeLessOrEq(padLen, blockSize)

	for i := 0; i < blockSize; i++ {
		inPadding := subtle.ConstantTimeLessOrEq(i+1, padLen)
		matches := subtle.ConstantTimeByteEq(data[n-1-i], byte(padLen))
		good &= matches | (inPadding ^ 1)
	}

	if good != 1 {
		return nil, envelopeDomain.ErrInvalidPadding
	}
	return data[:n-padLen], nil
}
