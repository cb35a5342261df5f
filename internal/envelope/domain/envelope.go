package domain

import (
	"encoding/base64"
	"fmt"
)

// Envelope is a sealed message: associated data, iv, ciphertext and the MAC
// tag computed over the first three fields in that order.
type Envelope struct {
	AssociatedData []byte
	IV             IV
	Ciphertext     []byte
	Tag            MacTag
}

// Body returns associatedData || iv || ciphertext, the exact MAC input.
func (e *Envelope) Body() []byte {
	return e.appendBody(make([]byte, 0, e.Size()-TagSize))
}

// Bytes returns the binary envelope: associatedData || iv || ciphertext || tag.
func (e *Envelope) Bytes() []byte {
	b := e.appendBody(make([]byte, 0, e.Size()))
	return append(b, e.Tag[:]...)
}

// Size returns the length of the binary envelope.
func (e *Envelope) Size() int {
	return len(e.AssociatedData) + IVSize + len(e.Ciphertext) + TagSize
}

// String returns the envelope in standard base64 text form.
func (e *Envelope) String() string {
	return base64.StdEncoding.EncodeToString(e.Bytes())
}

func (e *Envelope) appendBody(b []byte) []byte {
	b = append(b, e.AssociatedData...)
	b = append(b, e.IV[:]...)
	return append(b, e.Ciphertext...)
}

// ParseEnvelope splits a binary envelope into its fields. adLen is the
// associated data length agreed out-of-band (0 when none was bound).
//
// The returned envelope does not alias data.
//
// Returns ErrMalformedEnvelope if data cannot hold the associated data, the
// iv, at least one ciphertext block and the tag, or if the ciphertext is not
// a whole number of blocks.
func ParseEnvelope(data []byte, adLen int) (*Envelope, error) {
	if adLen < 0 {
		return nil, fmt.Errorf("%w: negative associated data length %d", ErrMalformedEnvelope, adLen)
	}
	// adLen is caller supplied; compare without adding so huge values cannot wrap.
	if len(data) < MinEnvelopeSize || adLen > len(data)-MinEnvelopeSize {
		return nil, fmt.Errorf(
			"%w: %d bytes cannot hold %d bytes of associated data",
			ErrMalformedEnvelope,
			len(data),
			adLen,
		)
	}

	ctLen := len(data) - adLen - IVSize - TagSize
	if ctLen%BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a multiple of %d bytes", ErrMalformedEnvelope, BlockSize)
	}

	env := &Envelope{
		AssociatedData: make([]byte, adLen),
		Ciphertext:     make([]byte, ctLen),
	}
	offset := copy(env.AssociatedData, data)
	offset += copy(env.IV[:], data[offset:])
	offset += copy(env.Ciphertext, data[offset:])
	copy(env.Tag[:], data[offset:])

	return env, nil
}

// ParseEnvelopeText decodes a base64 envelope and parses it with ParseEnvelope.
func ParseEnvelopeText(content string, adLen int) (*Envelope, error) {
	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	return ParseEnvelope(data, adLen)
}
