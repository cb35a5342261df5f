// Package domain defines the envelope encryption domain models: key material,
// the binary envelope layout and its text form, options and error kinds.
//
// Envelope layout (raw concatenation, no length prefixes):
//
//	[ associated data (N bytes, agreed out-of-band) ]
//	[ iv              (16 bytes)                     ]
//	[ ciphertext      (multiple of 16 bytes)         ]
//	[ mac tag         (32 bytes)                     ]
package domain

const (
	// KeyBits is the size in bits of both the crypt key and the auth key.
	KeyBits = 256
	// BlockBits is the block size in bits of the block cipher.
	BlockBits = 128

	// KeySize is the size in bytes of a crypt or auth key.
	KeySize = KeyBits / 8
	// BlockSize is the block size in bytes of the block cipher.
	BlockSize = BlockBits / 8
	// IVSize is the size in bytes of the initialization vector.
	IVSize = BlockSize
	// TagSize is the size in bytes of the MAC tag (HMAC-SHA256 output).
	TagSize = 32

	// MinEnvelopeSize is the size of the smallest valid envelope without
	// associated data: iv, one ciphertext block and the tag.
	MinEnvelopeSize = IVSize + BlockSize + TagSize

	// DefaultIterations is the default PBKDF2 iteration count.
	DefaultIterations = 10000
	// DefaultMaxIterations is the default ceiling on the iteration count a
	// password envelope may ask for when it is opened.
	DefaultMaxIterations = 1000000
	// MaxIterations is the hard ceiling on any iteration count. Password
	// envelopes above it are rejected before any derivation work starts.
	MaxIterations = 10000000
	// DefaultSaltBits is the minimum accepted salt size in bits.
	DefaultSaltBits = 64
	// DefaultSaltSize is the size in bytes of generated salts.
	DefaultSaltSize = 16
	// DefaultMinPasswordLength is the minimum password length in characters.
	DefaultMinPasswordLength = 12
)
