// SPDX-License-Identifier: MIT

package execution

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Environment variables read by InitFromEnv.
const (
	EnvMode     = "GRAPHBLAS_MODE"
	EnvLogLevel = "GRAPHBLAS_LOG_LEVEL"
)

// Config is the environment-driven part of the execution setup.
type Config struct {
	Mode     string `env:"GRAPHBLAS_MODE" envDefault:"nonblocking"`
	LogLevel string `env:"GRAPHBLAS_LOG_LEVEL" envDefault:"warn"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, executionErrorf("parse env", err)
	}

	return cfg, nil
}

// ParseMode resolves Config.Mode ("blocking" or "nonblocking", any case).
func (c Config) ParseMode() (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(c.Mode)) {
	case "blocking":
		return Blocking, nil
	case "nonblocking", "non-blocking", "":
		return NonBlocking, nil
	default:
		return 0, fmt.Errorf("%s=%q: %w", EnvMode, c.Mode, ErrInvalidValue)
	}
}

// ParseLogLevel resolves Config.LogLevel with slog's level syntax.
func (c Config) ParseLogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%s=%q: %w", EnvLogLevel, c.LogLevel, ErrInvalidValue)
	}

	return level, nil
}

// Option configures a Context at Init.
type Option func(*settings)

type settings struct {
	logger *slog.Logger
	tracer trace.TracerProvider
}

// WithLogger routes call diagnostics to logger.
// Panics on nil: passing no logger is a programmer error.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("execution: WithLogger(nil)")
	}

	return func(s *settings) { s.logger = logger }
}

// WithTracerProvider records one span per engine call through tp.
// Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("execution: WithTracerProvider(nil)")
	}

	return func(s *settings) { s.tracer = tp }
}

// gatherSettings applies opts over the defaults: a discarding logger and the
// global OpenTelemetry provider (a no-op until the process installs one).
func gatherSettings(opts []Option) settings {
	s := settings{
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// textLogger builds the stderr logger InitFromEnv installs at level.
func textLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
