package domain

import (
	"fmt"

	validation "github.com/jellydator/validation"
)

// Options are the tunables of key derivation and the fixed algorithm sizes.
type Options struct {
	// Iterations is the PBKDF2 cost factor.
	Iterations int
	// MaxIterations bounds the cost factor accepted from a stored password
	// envelope. It must be at least Iterations and at most the MaxIterations
	// constant.
	MaxIterations int
	// SaltBits is the minimum accepted salt size in bits.
	SaltBits int
	// MinPasswordLength is the minimum password length in characters.
	MinPasswordLength int
	// KeyBits must be 256.
	KeyBits int
	// BlockBits must be 128.
	BlockBits int
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Iterations:        DefaultIterations,
		MaxIterations:     DefaultMaxIterations,
		SaltBits:          DefaultSaltBits,
		MinPasswordLength: DefaultMinPasswordLength,
		KeyBits:           KeyBits,
		BlockBits:         BlockBits,
	}
}

var byteAligned = validation.By(func(value interface{}) error {
	bits, _ := value.(int)
	if bits%8 != 0 {
		return validation.NewError("validation_byte_aligned", "must be a multiple of 8")
	}
	return nil
})

// Validate returns ErrInvalidOptions if any option is out of range.
func (o Options) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Iterations, validation.Required, validation.Min(1), validation.Max(MaxIterations)),
		validation.Field(
			&o.MaxIterations,
			validation.Required,
			validation.Min(o.Iterations),
			validation.Max(MaxIterations),
		),
		validation.Field(&o.SaltBits, validation.Required, validation.Min(DefaultSaltBits), byteAligned),
		validation.Field(&o.MinPasswordLength, validation.Required, validation.Min(1)),
		validation.Field(&o.KeyBits, validation.Required, validation.In(KeyBits)),
		validation.Field(&o.BlockBits, validation.Required, validation.In(BlockBits)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}
