package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

// ReaderRandomSource implements RandomSource on top of an io.Reader.
//
// Production code uses NewCryptoRandomSource. Any other reader is only
// suitable for tests that need reproducible output. Reads are serialized so a
// single instance can be shared between goroutines.
type ReaderRandomSource struct {
	mu     sync.Mutex
	reader io.Reader
}

// NewCryptoRandomSource returns a RandomSource backed by the operating system CSPRNG.
func NewCryptoRandomSource() *ReaderRandomSource {
	return &ReaderRandomSource{reader: rand.Reader}
}

// NewReaderRandomSource returns a RandomSource reading from r.
func NewReaderRandomSource(r io.Reader) *ReaderRandomSource {
	return &ReaderRandomSource{reader: r}
}

// NextBytes returns n bytes from the underlying reader.
// A short or failed read is reported as ErrEntropyUnavailable.
func (r *ReaderRandomSource) NextBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", envelopeDomain.ErrInvalidInput, n)
	}

	b := make([]byte, n)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := io.ReadFull(r.reader, b); err != nil {
		return nil, fmt.Errorf("%w: %v", envelopeDomain.ErrEntropyUnavailable, err)
	}
	return b, nil
}
