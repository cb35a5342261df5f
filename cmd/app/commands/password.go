package commands

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/jellydator/validation"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
	envelopeUseCase "github.com/allisson/envelope/internal/envelope/usecase"
	customValidation "github.com/allisson/envelope/internal/validation"
)

// passwordSealOutput is the JSON shape of a password envelope.
type passwordSealOutput struct {
	Envelope             string `json:"envelope"`
	Iterations           int    `json:"iterations"`
	Salt                 string `json:"salt"`
	AssociatedDataLength int    `json:"associated_data_length"`
}

func validatePassword(password string) error {
	err := validation.Validate(password, validation.Required.Error("password is required"))
	return customValidation.WrapValidationError(err)
}

// RunSealPassword reads plaintext from io.Reader and seals it under keys derived
// from password with a fresh salt. The output carries the iteration count and
// salt needed to open it: "<iterations>:<salt>:<envelope>".
func RunSealPassword(
	ctx context.Context,
	useCase envelopeUseCase.EnvelopeUseCase,
	logger *slog.Logger,
	io IOTuple,
	password string,
	associatedData string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	plaintext, err := readInput(io.Reader)
	if err != nil {
		return err
	}
	defer envelopeDomain.Zero(plaintext)

	sealed, err := useCase.SealWithPassword(ctx, plaintext, password, []byte(associatedData))
	if err != nil {
		return fmt.Errorf("failed to seal with password: %w", err)
	}

	if format == "json" {
		err = writeJSON(io.Writer, passwordSealOutput{
			Envelope:             sealed.String(),
			Iterations:           sealed.Iterations,
			Salt:                 encodeBase64(sealed.Salt),
			AssociatedDataLength: len(associatedData),
		})
	} else {
		_, err = fmt.Fprintln(io.Writer, sealed.String())
	}
	if err != nil {
		return err
	}

	logger.Info("envelope sealed with password",
		slog.Int("iterations", sealed.Iterations),
		slog.Int("plaintext_size", len(plaintext)),
	)
	return nil
}

// RunOpenPassword reads a password envelope from io.Reader, re-derives the keys
// with its stored salt and iteration count and writes the plaintext.
func RunOpenPassword(
	ctx context.Context,
	useCase envelopeUseCase.EnvelopeUseCase,
	logger *slog.Logger,
	io IOTuple,
	password string,
	adLen int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	if adLen < 0 {
		return fmt.Errorf("associated data length must not be negative, got: %d", adLen)
	}

	content, err := readTextInput(io.Reader)
	if err != nil {
		return err
	}

	plaintext, err := useCase.OpenWithPassword(ctx, content, password, adLen)
	if err != nil {
		return fmt.Errorf("failed to open with password: %w", err)
	}
	defer envelopeDomain.Zero(plaintext)

	if err := outputPlaintext(io, plaintext, format); err != nil {
		return err
	}

	logger.Info("envelope opened with password", slog.Int("plaintext_size", len(plaintext)))
	return nil
}
