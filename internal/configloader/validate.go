package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/protoview/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "bench.mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err joins every error into one, or returns nil when valid.
// errors.As on the result finds the first *ValidationError.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i := range r.Errors {
		errs[i] = &r.Errors[i]
	}
	return errors.Join(errs...)
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	knownFormats = map[config.OutputFormat]bool{
		config.FormatText:     true,
		config.FormatJSON:     true,
		config.FormatYAML:     true,
		config.FormatMarkdown: true,
		config.FormatHTML:     true,
	}

	knownColorModes = map[config.ColorMode]bool{
		config.ColorAuto:   true,
		config.ColorAlways: true,
		config.ColorNever:  true,
	}

	knownLogLevels = map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
)

// Validate checks a configuration for errors and warnings.
// Empty values are accepted; they mean "inherit".
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, yaml, markdown, html", cfg.Format),
		})
	}

	if cfg.Color != "" && !knownColorModes[cfg.Color] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Depth < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "depth",
			Value:   cfg.Depth,
			Message: "depth must be >= 0 (0 means unlimited)",
		})
	}

	if cfg.LogLevel != "" && !knownLogLevels[cfg.LogLevel] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.Bench.Iterations < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "bench.iterations",
			Value:   cfg.Bench.Iterations,
			Message: "iterations must be >= 0",
		})
	}

	if cfg.Bench.Mode != "" && !cfg.Bench.Mode.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "bench.mode",
			Value:   cfg.Bench.Mode,
			Message: fmt.Sprintf("invalid bench mode %q; must be one of: parse, read-all", cfg.Bench.Mode),
		})
	}

	if cfg.Compact && cfg.Format != "" && cfg.Format != config.FormatJSON {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "compact",
			Value:   cfg.Compact,
			Message: fmt.Sprintf("compact only affects json output; format is %q", cfg.Format),
		})
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}

// IsValidColorMode returns true if the color mode is valid.
func IsValidColorMode(m config.ColorMode) bool {
	return knownColorModes[m]
}
