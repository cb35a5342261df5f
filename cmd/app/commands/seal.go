package commands

import (
	"context"
	"fmt"
	"log/slog"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
	envelopeUseCase "github.com/allisson/envelope/internal/envelope/usecase"
)

// sealOutput is the JSON shape of a sealed envelope.
type sealOutput struct {
	Envelope             string `json:"envelope"`
	AssociatedDataLength int    `json:"associated_data_length"`
}

// openOutput is the JSON shape of an opened envelope. The plaintext is
// base64-encoded because it may be binary.
type openOutput struct {
	Plaintext string `json:"plaintext"`
}

// RunSeal reads plaintext from io.Reader, seals it under the given keys and
// writes the base64 envelope to io.Writer.
//
// The associated data is stored in clear at the front of the envelope. Its
// length must be passed back to open.
func RunSeal(
	ctx context.Context,
	useCase envelopeUseCase.EnvelopeUseCase,
	logger *slog.Logger,
	io IOTuple,
	cryptKeyB64, authKeyB64 string,
	associatedData string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	keys := keyFlags{CryptKey: cryptKeyB64, AuthKey: authKeyB64}
	if err := keys.Validate(); err != nil {
		return err
	}
	cryptKey, authKey, err := keys.decode()
	if err != nil {
		return err
	}
	defer envelopeDomain.Zero(cryptKey)
	defer envelopeDomain.Zero(authKey)

	plaintext, err := readInput(io.Reader)
	if err != nil {
		return err
	}
	defer envelopeDomain.Zero(plaintext)

	text, err := useCase.SealText(ctx, plaintext, cryptKey, authKey, []byte(associatedData))
	if err != nil {
		return fmt.Errorf("failed to seal: %w", err)
	}

	if format == "json" {
		err = writeJSON(io.Writer, sealOutput{Envelope: text, AssociatedDataLength: len(associatedData)})
	} else {
		_, err = fmt.Fprintln(io.Writer, text)
	}
	if err != nil {
		return err
	}

	logger.Info("envelope sealed",
		slog.Int("plaintext_size", len(plaintext)),
		slog.Int("associated_data_length", len(associatedData)),
	)
	return nil
}

// RunOpen reads a base64 envelope from io.Reader, verifies and decrypts it and
// writes the plaintext to io.Writer. Text format writes the raw plaintext.
func RunOpen(
	ctx context.Context,
	useCase envelopeUseCase.EnvelopeUseCase,
	logger *slog.Logger,
	io IOTuple,
	cryptKeyB64, authKeyB64 string,
	adLen int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if adLen < 0 {
		return fmt.Errorf("associated data length must not be negative, got: %d", adLen)
	}

	keys := keyFlags{CryptKey: cryptKeyB64, AuthKey: authKeyB64}
	if err := keys.Validate(); err != nil {
		return err
	}
	cryptKey, authKey, err := keys.decode()
	if err != nil {
		return err
	}
	defer envelopeDomain.Zero(cryptKey)
	defer envelopeDomain.Zero(authKey)

	content, err := readTextInput(io.Reader)
	if err != nil {
		return err
	}

	plaintext, err := useCase.OpenText(ctx, content, cryptKey, authKey, adLen)
	if err != nil {
		return fmt.Errorf("failed to open: %w", err)
	}
	defer envelopeDomain.Zero(plaintext)

	if err := outputPlaintext(io, plaintext, format); err != nil {
		return err
	}

	logger.Info("envelope opened", slog.Int("plaintext_size", len(plaintext)))
	return nil
}

func outputPlaintext(io IOTuple, plaintext []byte, format string) error {
	if format == "json" {
		return writeJSON(io.Writer, openOutput{Plaintext: encodeBase64(plaintext)})
	}
	_, err := io.Writer.Write(plaintext)
	return err
}
