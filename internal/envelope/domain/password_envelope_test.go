package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/envelope/internal/envelope/domain"
)

func TestPasswordEnvelope_RoundTrip(t *testing.T) {
	original := &domain.PasswordEnvelope{
		Iterations: 10000,
		Salt:       domain.Salt("0123456789abcdef"),
		Envelope:   []byte("sealed-envelope-bytes"),
	}

	serialized := original.String()
	parsed, err := domain.NewPasswordEnvelope(serialized)

	require.NoError(t, err)
	assert.Equal(t, original, parsed)
	assert.Equal(t, "10000:MDEyMzQ1Njc4OWFiY2RlZg==:c2VhbGVkLWVudmVsb3BlLWJ5dGVz", serialized)
}

func TestNewPasswordEnvelope_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ""},
		{name: "TwoParts", input: "10000:c2FsdA=="},
		{name: "FourParts", input: "10000:c2FsdA==:ZW52:extra"},
		{name: "NonNumericIterations", input: "many:c2FsdA==:ZW52"},
		{name: "ZeroIterations", input: "0:c2FsdA==:ZW52"},
		{name: "NegativeIterations", input: "-5:c2FsdA==:ZW52"},
		{name: "IterationsAboveLimit", input: "10000001:c2FsdA==:ZW52"},
		{name: "IterationsMaxInt", input: "9223372036854775807:AAAAAAAAAAAAAAAAAAAAAA==:AAAA"},
		{name: "IterationsOverflow", input: "99999999999999999999:c2FsdA==:ZW52"},
		{name: "InvalidSaltBase64", input: "10000:!!!:ZW52"},
		{name: "InvalidEnvelopeBase64", input: "10000:c2FsdA==:###"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := domain.NewPasswordEnvelope(tt.input)

			assert.Nil(t, env)
			assert.ErrorIs(t, err, domain.ErrMalformedEnvelope)
		})
	}
}

func TestNewPasswordEnvelope_IterationsAtLimit(t *testing.T) {
	parsed, err := domain.NewPasswordEnvelope("10000000:c2FsdA==:ZW52")

	require.NoError(t, err)
	assert.Equal(t, domain.MaxIterations, parsed.Iterations)
}
