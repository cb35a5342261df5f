package domain

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// PasswordEnvelope is an envelope sealed under password-derived keys, carrying
// what is needed to derive the same keys again.
//
// It serializes to "iterations:salt-base64:envelope-base64".
type PasswordEnvelope struct {
	Iterations int
	Salt       Salt
	Envelope   []byte
}

// NewPasswordEnvelope parses the "iterations:salt-base64:envelope-base64" form.
//
// Returns ErrMalformedEnvelope if the content does not have three parts, the
// iteration count is not in [1, MaxIterations], or a part is not valid base64.
func NewPasswordEnvelope(content string) (*PasswordEnvelope, error) {
	parts := strings.Split(content, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf(
			"%w: expected format 'iterations:salt:envelope', got %d parts",
			ErrMalformedEnvelope,
			len(parts),
		)
	}

	iterations, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid iterations: %v", ErrMalformedEnvelope, err)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be positive, got %d", ErrMalformedEnvelope, iterations)
	}
	if iterations > MaxIterations {
		return nil, fmt.Errorf(
			"%w: %d iterations exceeds the limit of %d",
			ErrMalformedEnvelope,
			iterations,
			MaxIterations,
		)
	}

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64: %v", ErrMalformedEnvelope, err)
	}

	envelope, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid envelope base64: %v", ErrMalformedEnvelope, err)
	}

	return &PasswordEnvelope{
		Iterations: iterations,
		Salt:       salt,
		Envelope:   envelope,
	}, nil
}

// String serializes the password envelope to "iterations:salt-base64:envelope-base64".
func (p *PasswordEnvelope) String() string {
	return fmt.Sprintf(
		"%d:%s:%s",
		p.Iterations,
		base64.StdEncoding.EncodeToString(p.Salt),
		base64.StdEncoding.EncodeToString(p.Envelope),
	)
}
