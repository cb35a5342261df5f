package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/envelope/cmd/app/commands"
	"github.com/allisson/envelope/internal/app"
	"github.com/allisson/envelope/internal/config"
	envelopeUseCase "github.com/allisson/envelope/internal/envelope/usecase"
)

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getKeyCommands()...)
	cmds = append(cmds, getEnvelopeCommands()...)
	return cmds
}

// action builds the container, resolves the envelope use case and hands both
// to run. The container is shut down afterwards so metrics get exported.
func action(
	run func(ctx context.Context, cmd *cli.Command, useCase envelopeUseCase.EnvelopeUseCase, logger *slog.Logger) error,
) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg := config.Load()
		container := app.NewContainer(cfg)
		logger := container.Logger()
		defer func() {
			if err := container.Shutdown(ctx); err != nil {
				logger.Error("failed to shutdown container", slog.Any("error", err))
			}
		}()

		useCase, err := container.EnvelopeUseCase()
		if err != nil {
			return err
		}

		return run(ctx, cmd, useCase, logger)
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func keyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "crypt-key",
			Sources:  cli.EnvVars("ENVELOPE_CRYPT_KEY"),
			Required: true,
			Usage:    "Base64-encoded 32-byte encryption key",
		},
		&cli.StringFlag{
			Name:     "auth-key",
			Sources:  cli.EnvVars("ENVELOPE_AUTH_KEY"),
			Required: true,
			Usage:    "Base64-encoded 32-byte authentication key",
		},
	}
}

func passwordFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "password",
		Aliases:  []string{"p"},
		Sources:  cli.EnvVars("ENVELOPE_PASSWORD"),
		Required: true,
		Usage:    "Password to derive the keys from (prefer ENVELOPE_PASSWORD over the flag)",
	}
}

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-keys",
			Usage: "Generate a random crypt key and auth key",
			Flags: []cli.Flag{formatFlag()},
			Action: action(func(ctx context.Context, cmd *cli.Command, useCase envelopeUseCase.EnvelopeUseCase, logger *slog.Logger) error {
				return commands.RunGenerateKeys(ctx, useCase, logger, commands.DefaultIO().Writer, cmd.String("format"))
			}),
		},
		{
			Name:  "derive-keys",
			Usage: "Derive a crypt key and auth key from a password with PBKDF2",
			Flags: []cli.Flag{
				passwordFlag(),
				&cli.StringFlag{
					Name:    "salt",
					Aliases: []string{"s"},
					Usage:   "Base64-encoded salt (omit to generate a random one)",
				},
				formatFlag(),
			},
			Action: action(func(ctx context.Context, cmd *cli.Command, useCase envelopeUseCase.EnvelopeUseCase, logger *slog.Logger) error {
				return commands.RunDeriveKeys(
					ctx,
					useCase,
					logger,
					commands.DefaultIO().Writer,
					cmd.String("password"),
					cmd.String("salt"),
					cmd.String("format"),
				)
			}),
		},
	}
}

func associatedDataFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "associated-data",
		Aliases: []string{"ad"},
		Usage:   "Associated data stored in clear and covered by the tag",
	}
}

func adLengthFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "ad-length",
		Aliases: []string{"l"},
		Value:   0,
		Usage:   "Length in bytes of the associated data at the front of the envelope",
	}
}

func getEnvelopeCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "seal",
			Usage: "Seal stdin with raw keys and print the base64 envelope",
			Flags: append(keyFlags(), associatedDataFlag(), formatFlag()),
			Action: action(func(ctx context.Context, cmd *cli.Command, useCase envelopeUseCase.EnvelopeUseCase, logger *slog.Logger) error {
				return commands.RunSeal(
					ctx,
					useCase,
					logger,
					commands.DefaultIO(),
					cmd.String("crypt-key"),
					cmd.String("auth-key"),
					cmd.String("associated-data"),
					cmd.String("format"),
				)
			}),
		},
		{
			Name:  "open",
			Usage: "Verify and decrypt a base64 envelope read from stdin",
			Flags: append(keyFlags(), adLengthFlag(), formatFlag()),
			Action: action(func(ctx context.Context, cmd *cli.Command, useCase envelopeUseCase.EnvelopeUseCase, logger *slog.Logger) error {
				return commands.RunOpen(
					ctx,
					useCase,
					logger,
					commands.DefaultIO(),
					cmd.String("crypt-key"),
					cmd.String("auth-key"),
					int(cmd.Int("ad-length")),
					cmd.String("format"),
				)
			}),
		},
		{
			Name:  "seal-password",
			Usage: "Seal stdin with keys derived from a password",
			Flags: []cli.Flag{passwordFlag(), associatedDataFlag(), formatFlag()},
			Action: action(func(ctx context.Context, cmd *cli.Command, useCase envelopeUseCase.EnvelopeUseCase, logger *slog.Logger) error {
				return commands.RunSealPassword(
					ctx,
					useCase,
					logger,
					commands.DefaultIO(),
					cmd.String("password"),
					cmd.String("associated-data"),
					cmd.String("format"),
				)
			}),
		},
		{
			Name:  "open-password",
			Usage: "Open a password envelope read from stdin",
			Flags: []cli.Flag{passwordFlag(), adLengthFlag(), formatFlag()},
			Action: action(func(ctx context.Context, cmd *cli.Command, useCase envelopeUseCase.EnvelopeUseCase, logger *slog.Logger) error {
				return commands.RunOpenPassword(
					ctx,
					useCase,
					logger,
					commands.DefaultIO(),
					cmd.String("password"),
					int(cmd.Int("ad-length")),
					cmd.String("format"),
				)
			}),
		},
	}
}
