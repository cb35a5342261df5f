// Package commands contains CLI command implementations for the application.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	validation "github.com/jellydator/validation"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
	customValidation "github.com/allisson/envelope/internal/validation"
)

// maxInputSize caps how much is read from stdin for a single command.
const maxInputSize = 64 << 20

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// validateFormat returns an error unless format is "text" or "json".
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// keyFlags are the base64-encoded raw keys passed on the command line.
type keyFlags struct {
	CryptKey string `json:"crypt_key"`
	AuthKey  string `json:"auth_key"`
}

// Validate checks that both keys are present and decode to 32 bytes.
func (k keyFlags) Validate() error {
	err := validation.ValidateStruct(&k,
		validation.Field(&k.CryptKey, validation.Required, customValidation.Base64Key(envelopeDomain.KeySize)),
		validation.Field(&k.AuthKey, validation.Required, customValidation.Base64Key(envelopeDomain.KeySize)),
	)
	return customValidation.WrapValidationError(err)
}

// decode returns the raw key bytes. Callers must call Validate first.
func (k keyFlags) decode() (cryptKey, authKey []byte, err error) {
	if cryptKey, err = decodeBase64(k.CryptKey); err != nil {
		return nil, nil, err
	}
	if authKey, err = decodeBase64(k.AuthKey); err != nil {
		envelopeDomain.Zero(cryptKey)
		return nil, nil, err
	}
	return cryptKey, authKey, nil
}

// readInput reads the whole command input, bounded by maxInputSize.
func readInput(reader io.Reader) ([]byte, error) {
	if reader == nil {
		return nil, fmt.Errorf("no input available")
	}
	data, err := io.ReadAll(io.LimitReader(reader, maxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) > maxInputSize {
		return nil, fmt.Errorf("input exceeds %d bytes", maxInputSize)
	}
	return data, nil
}

// readTextInput reads a text-form envelope, dropping surrounding whitespace.
func readTextInput(reader io.Reader) (string, error) {
	data, err := readInput(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
