package validation

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase64(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		shouldErr bool
	}{
		{name: "valid base64", input: "aGVsbG8=", shouldErr: false},
		{name: "empty string left to Required", input: "", shouldErr: false},
		{name: "invalid characters", input: "not base64!", shouldErr: true},
		{name: "not a string", input: 42, shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Base64.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBase64Key(t *testing.T) {
	rule := Base64Key(32)

	t.Run("32-byte key", func(t *testing.T) {
		key := base64.StdEncoding.EncodeToString(make([]byte, 32))
		assert.NoError(t, rule.Validate(key))
	})

	t.Run("16-byte key", func(t *testing.T) {
		key := base64.StdEncoding.EncodeToString(make([]byte, 16))
		err := rule.Validate(key)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exactly 32 bytes")
	})

	t.Run("invalid base64", func(t *testing.T) {
		assert.Error(t, rule.Validate("%%%"))
	})

	t.Run("empty string left to Required", func(t *testing.T) {
		assert.NoError(t, rule.Validate(""))
	})
}
