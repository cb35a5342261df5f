package service

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
	"github.com/allisson/envelope/internal/validation"
)

// PBKDF2KeyDeriver implements KeyDeriver with PBKDF2-HMAC-SHA256.
//
// It derives 64 bytes per call: the first 32 become the crypt key, the last 32
// the auth key. Derivation is deliberately slow; callers on latency-sensitive
// paths should run it off the critical path.
type PBKDF2KeyDeriver struct {
	random            RandomSource
	iterations        int
	maxIterations     int
	saltBits          int
	minPasswordLength int
}

// NewPBKDF2KeyDeriver creates a deriver from validated options.
// Returns ErrInvalidOptions if opts are out of range.
func NewPBKDF2KeyDeriver(random RandomSource, opts envelopeDomain.Options) (*PBKDF2KeyDeriver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &PBKDF2KeyDeriver{
		random:            random,
		iterations:        opts.Iterations,
		maxIterations:     opts.MaxIterations,
		saltBits:          opts.SaltBits,
		minPasswordLength: opts.MinPasswordLength,
	}, nil
}

// Iterations returns the PBKDF2 iteration count.
func (d *PBKDF2KeyDeriver) Iterations() int {
	return d.iterations
}

// WithIterations returns a copy of the deriver using the given iteration count.
// Counts above the configured ceiling are rejected with ErrInvalidOptions.
func (d *PBKDF2KeyDeriver) WithIterations(iterations int) (KeyDeriver, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be positive, got %d", envelopeDomain.ErrInvalidOptions, iterations)
	}
	if iterations > d.maxIterations {
		return nil, fmt.Errorf(
			"%w: %d iterations exceeds the ceiling of %d",
			envelopeDomain.ErrInvalidOptions,
			iterations,
			d.maxIterations,
		)
	}

	clone := *d
	clone.iterations = iterations
	return &clone, nil
}

// Derive validates the password and salt and derives the key pair.
//
// Returns:
//   - ErrInvalidPassword if the password is empty or too short
//   - ErrInvalidSalt if a supplied salt is shorter than the configured minimum
//   - ErrEntropyUnavailable if a salt had to be generated and the random source failed
func (d *PBKDF2KeyDeriver) Derive(password string, salt []byte) (*envelopeDomain.KeyPair, error) {
	rule := validation.PasswordStrength{MinLength: d.minPasswordLength}
	if err := rule.Validate(password); err != nil {
		return nil, fmt.Errorf("%w: %v", envelopeDomain.ErrInvalidPassword, err)
	}

	if salt == nil {
		generated, err := d.random.NextBytes(d.saltSize())
		if err != nil {
			return nil, err
		}
		salt = generated
	}

	s, err := envelopeDomain.NewSalt(salt, d.saltBits)
	if err != nil {
		return nil, err
	}

	derived := pbkdf2.Key([]byte(password), s, d.iterations, 2*envelopeDomain.KeySize, sha256.New)
	defer envelopeDomain.Zero(derived)

	pair := &envelopeDomain.KeyPair{Salt: s}
	copy(pair.CryptKey[:], derived[:envelopeDomain.KeySize])
	copy(pair.AuthKey[:], derived[envelopeDomain.KeySize:])

	return pair, nil
}

// saltSize returns the size of generated salts in bytes.
func (d *PBKDF2KeyDeriver) saltSize() int {
	if n := d.saltBits / 8; n > envelopeDomain.DefaultSaltSize {
		return n
	}
	return envelopeDomain.DefaultSaltSize
}

// GenerateKeyPair draws two independent 256-bit keys from random.
func GenerateKeyPair(random RandomSource) (*envelopeDomain.KeyPair, error) {
	raw, err := random.NextBytes(2 * envelopeDomain.KeySize)
	if err != nil {
		return nil, err
	}
	defer envelopeDomain.Zero(raw)

	pair := &envelopeDomain.KeyPair{}
	copy(pair.CryptKey[:], raw[:envelopeDomain.KeySize])
	copy(pair.AuthKey[:], raw[envelopeDomain.KeySize:])

	return pair, nil
}
