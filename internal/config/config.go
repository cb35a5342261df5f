// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	envelopeDomain "github.com/allisson/envelope/internal/envelope/domain"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
	// EventLogEnabled controls whether failed operations are written to the log
	// as warn-level events.
	EventLogEnabled bool

	// KDFIterations is the PBKDF2 iteration count used for new password envelopes.
	KDFIterations int
	// MaxKDFIterations is the highest iteration count accepted from a password envelope.
	MaxKDFIterations int
	// SaltBits is the minimum salt size in bits accepted by key derivation.
	SaltBits int
	// MinPasswordLength is the minimum number of characters a password must have.
	MinPasswordLength int
	// KeyBits is the size of each derived key in bits.
	KeyBits int
	// BlockBits is the cipher block size in bits.
	BlockBits int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfile is the path the metrics are written to on shutdown.
	// Empty disables the export.
	MetricsTextfile string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel:        env.GetString("LOG_LEVEL", "info"),
		EventLogEnabled: env.GetBool("EVENTLOG_ENABLED", true),

		// Envelope
		KDFIterations:     env.GetInt("ENVELOPE_KDF_ITERATIONS", envelopeDomain.DefaultIterations),
		MaxKDFIterations:  env.GetInt("ENVELOPE_MAX_KDF_ITERATIONS", envelopeDomain.DefaultMaxIterations),
		SaltBits:          env.GetInt("ENVELOPE_SALT_BITS", envelopeDomain.DefaultSaltBits),
		MinPasswordLength: env.GetInt("ENVELOPE_MIN_PASSWORD_LENGTH", envelopeDomain.DefaultMinPasswordLength),
		KeyBits:           env.GetInt("ENVELOPE_KEY_BITS", envelopeDomain.KeyBits),
		BlockBits:         env.GetInt("ENVELOPE_BLOCK_BITS", envelopeDomain.BlockBits),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "envelope"),
		MetricsTextfile:  env.GetString("METRICS_TEXTFILE", ""),
	}
}

// EnvelopeOptions returns the key derivation options described by the configuration.
// The result is not validated; the key deriver rejects out-of-range values.
func (c *Config) EnvelopeOptions() envelopeDomain.Options {
	return envelopeDomain.Options{
		Iterations:        c.KDFIterations,
		MaxIterations:     c.MaxKDFIterations,
		SaltBits:          c.SaltBits,
		MinPasswordLength: c.MinPasswordLength,
		KeyBits:           c.KeyBits,
		BlockBits:         c.BlockBits,
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
