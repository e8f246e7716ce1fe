// Package config loads decorator settings from YAML.
//
//	disable:
//	  report: true
//	retry:
//	  max_retries: 3
//	  delay_seconds: 0.5
//	  report: true
//	history:
//	  max_length: 10
//	validate:
//	  undeclared: skip
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/on-the-ground/gecko/callhistory"
	"github.com/on-the-ground/gecko/disable"
	"github.com/on-the-ground/gecko/retry"
	"github.com/on-the-ground/gecko/validate"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Disable struct {
	Report bool `yaml:"report"`
	Return any  `yaml:"return"`
}

type Retry struct {
	MaxRetries   int     `yaml:"max_retries"`
	DelaySeconds float64 `yaml:"delay_seconds"`
	Report       bool    `yaml:"report"`
}

type History struct {
	MaxLength int `yaml:"max_length"`
}

type Validate struct {
	Undeclared string `yaml:"undeclared"`
}

// Config holds the settings of every decorator.
type Config struct {
	Disable  Disable  `yaml:"disable"`
	Retry    Retry    `yaml:"retry"`
	History  History  `yaml:"history"`
	Validate Validate `yaml:"validate"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Retry: Retry{
			MaxRetries:   retry.DefaultMaxRetries,
			DelaySeconds: retry.DefaultDelay.Seconds(),
		},
		Validate: Validate{Undeclared: validate.Reject.String()},
	}
}

// Load reads YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile is Load on the contents of path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Load(bytes.NewReader(data))
}

// Check reports the first setting no decorator would accept.
func (c Config) Check() error {
	switch {
	case c.Retry.MaxRetries < 0:
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalid, KeyRetryMaxRetries, c.Retry.MaxRetries)
	case c.Retry.DelaySeconds < 0:
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalid, KeyRetryDelaySeconds, c.Retry.DelaySeconds)
	case c.History.MaxLength < 0:
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalid, KeyHistoryMaxLength, c.History.MaxLength)
	}
	if _, err := validate.ParseUndeclared(c.Validate.Undeclared); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, KeyValidateUndeclared, err)
	}
	return nil
}

// Delay converts the configured seconds to a duration.
func (r Retry) Delay() time.Duration {
	return time.Duration(r.DelaySeconds * float64(time.Second))
}

// DisableOptions converts the disable settings.
func (c Config) DisableOptions(logger *zap.Logger) []disable.Option {
	return []disable.Option{
		disable.WithReport(c.Disable.Report),
		disable.WithReturn(c.Disable.Return),
		disable.WithLogger(logger),
	}
}

// RetryOptions converts the retry settings.
func (c Config) RetryOptions(logger *zap.Logger) []retry.Option {
	return []retry.Option{
		retry.WithMaxRetries(c.Retry.MaxRetries),
		retry.WithDelay(c.Retry.Delay()),
		retry.WithReport(c.Retry.Report),
		retry.WithLogger(logger),
	}
}

// HistoryOptions converts the history settings.
func (c Config) HistoryOptions() []callhistory.Option {
	return []callhistory.Option{
		callhistory.WithMaxLength(c.History.MaxLength),
	}
}

// ValidateOptions converts the validate settings. Call Check first.
func (c Config) ValidateOptions() []validate.Option {
	u, _ := validate.ParseUndeclared(c.Validate.Undeclared)
	return []validate.Option{validate.WithUndeclared(u)}
}
