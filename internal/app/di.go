// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/envelope/internal/config"
	envelopeService "github.com/allisson/envelope/internal/envelope/service"
	envelopeUseCase "github.com/allisson/envelope/internal/envelope/usecase"
	"github.com/allisson/envelope/internal/eventlog"
	"github.com/allisson/envelope/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	randomSource envelopeService.RandomSource
	keyDeriver   envelopeService.KeyDeriver
	sealer       envelopeService.Sealer

	// Use Cases
	recorder        envelopeUseCase.Recorder
	envelopeUseCase envelopeUseCase.EnvelopeUseCase

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	randomSourceInit    sync.Once
	keyDeriverInit      sync.Once
	sealerInit          sync.Once
	recorderInit        sync.Once
	envelopeUseCaseInit sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider.
// It returns nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.setInitError("metricsProvider", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("metricsProvider"); storedErr != nil {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// A no-op implementation is returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.setInitError("businessMetrics", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("businessMetrics"); storedErr != nil {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// RandomSource returns the cryptographically secure random source.
func (c *Container) RandomSource() envelopeService.RandomSource {
	c.randomSourceInit.Do(func() {
		c.randomSource = envelopeService.NewCryptoRandomSource()
	})
	return c.randomSource
}

// KeyDeriver returns the password key deriver configured from the environment.
func (c *Container) KeyDeriver() (envelopeService.KeyDeriver, error) {
	var err error
	c.keyDeriverInit.Do(func() {
		c.keyDeriver, err = c.initKeyDeriver()
		if err != nil {
			c.setInitError("keyDeriver", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("keyDeriver"); storedErr != nil {
		return nil, storedErr
	}
	return c.keyDeriver, nil
}

// Sealer returns the envelope sealer.
func (c *Container) Sealer() envelopeService.Sealer {
	c.sealerInit.Do(func() {
		c.sealer = envelopeService.NewEnvelopeSealer(
			c.RandomSource(),
			envelopeService.NewAESCBC(),
			envelopeService.NewHMACSHA256Authenticator(),
		)
	})
	return c.sealer
}

// Recorder returns the failure recorder backed by the application logger.
func (c *Container) Recorder() envelopeUseCase.Recorder {
	c.recorderInit.Do(func() {
		if !c.config.EventLogEnabled {
			c.recorder = eventlog.NewNopRecorder()
			return
		}
		c.recorder = eventlog.NewSlogRecorder(c.Logger())
	})
	return c.recorder
}

// EnvelopeUseCase returns the envelope use case instance.
func (c *Container) EnvelopeUseCase() (envelopeUseCase.EnvelopeUseCase, error) {
	var err error
	c.envelopeUseCaseInit.Do(func() {
		c.envelopeUseCase, err = c.initEnvelopeUseCase()
		if err != nil {
			c.setInitError("envelopeUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("envelopeUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.envelopeUseCase, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if c.config.MetricsTextfile != "" {
			if err := c.metricsProvider.WriteToTextfile(c.config.MetricsTextfile); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics export: %w", err))
			}
		}
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	// Logs go to stderr so command output on stdout stays machine-readable.
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetricsProvider creates the Prometheus-backed provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initKeyDeriver creates the PBKDF2 key deriver from the configured options.
func (c *Container) initKeyDeriver() (envelopeService.KeyDeriver, error) {
	deriver, err := envelopeService.NewPBKDF2KeyDeriver(c.RandomSource(), c.config.EnvelopeOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create key deriver: %w", err)
	}
	return deriver, nil
}

// initEnvelopeUseCase creates the envelope use case with all its dependencies.
func (c *Container) initEnvelopeUseCase() (envelopeUseCase.EnvelopeUseCase, error) {
	keyDeriver, err := c.KeyDeriver()
	if err != nil {
		return nil, fmt.Errorf("failed to get key deriver for envelope use case: %w", err)
	}

	baseUseCase := envelopeUseCase.NewEnvelopeUseCase(
		c.Sealer(),
		keyDeriver,
		c.RandomSource(),
		c.Recorder(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for envelope use case: %w", err)
		}
		return envelopeUseCase.NewEnvelopeUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
