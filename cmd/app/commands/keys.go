package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	validation "github.com/jellydator/validation"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
	envelopeUseCase "github.com/allisson/envelope/internal/envelope/usecase"
	customValidation "github.com/allisson/envelope/internal/validation"
)

// keyPairOutput is the JSON shape of a generated or derived key pair.
type keyPairOutput struct {
	CryptKey string `json:"crypt_key"`
	AuthKey  string `json:"auth_key"`
	Salt     string `json:"salt,omitempty"`
}

func newKeyPairOutput(pair *envelopeDomain.KeyPair) keyPairOutput {
	out := keyPairOutput{
		CryptKey: encodeBase64(pair.CryptKey[:]),
		AuthKey:  encodeBase64(pair.AuthKey[:]),
	}
	if len(pair.Salt) > 0 {
		out.Salt = encodeBase64(pair.Salt)
	}
	return out
}

// RunGenerateKeys generates an independent random crypt key and auth key and
// prints them base64-encoded. Key material is zeroed from memory after encoding.
func RunGenerateKeys(
	ctx context.Context,
	useCase envelopeUseCase.EnvelopeUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	pair, err := useCase.GenerateKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate keys: %w", err)
	}
	defer pair.Zero()

	if err := outputKeyPair(writer, newKeyPairOutput(pair), format); err != nil {
		return err
	}

	logger.Info("keys generated successfully")
	return nil
}

// RunDeriveKeys derives a crypt key and an auth key from a password.
// When saltB64 is empty a fresh random salt is drawn and printed with the keys;
// it must be kept to derive the same keys again.
func RunDeriveKeys(
	ctx context.Context,
	useCase envelopeUseCase.EnvelopeUseCase,
	logger *slog.Logger,
	writer io.Writer,
	password string,
	saltB64 string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if err := validation.Validate(saltB64, customValidation.Base64); err != nil {
		return customValidation.WrapValidationError(fmt.Errorf("salt: %w", err))
	}

	var salt []byte
	if saltB64 != "" {
		var err error
		if salt, err = decodeBase64(saltB64); err != nil {
			return err
		}
	}

	pair, err := useCase.DeriveKeys(ctx, password, salt)
	if err != nil {
		return fmt.Errorf("failed to derive keys: %w", err)
	}
	defer pair.Zero()

	if err := outputKeyPair(writer, newKeyPairOutput(pair), format); err != nil {
		return err
	}

	logger.Info("keys derived successfully", slog.Bool("generated_salt", saltB64 == ""))
	return nil
}

func outputKeyPair(writer io.Writer, out keyPairOutput, format string) error {
	if format == "json" {
		return writeJSON(writer, out)
	}

	if _, err := fmt.Fprintf(writer, "CRYPT_KEY=%s\nAUTH_KEY=%s\n", out.CryptKey, out.AuthKey); err != nil {
		return err
	}
	if out.Salt != "" {
		if _, err := fmt.Fprintf(writer, "SALT=%s\n", out.Salt); err != nil {
			return err
		}
	}
	return nil
}
