// Package config defines core configuration types for protoview.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

// OutputFormat specifies the output format of the tree command.
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatYAML     OutputFormat = "yaml"
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
)

// ColorMode controls colorized terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// BenchMode selects what the bench command measures.
type BenchMode string

const (
	// BenchModeParse times indexing only.
	BenchModeParse BenchMode = "parse"
	// BenchModeReadAll times indexing followed by reading every key.
	BenchModeReadAll BenchMode = "read-all"
)

// IsValid returns true if the bench mode is known.
func (m BenchMode) IsValid() bool {
	switch m {
	case BenchModeParse, BenchModeReadAll:
		return true
	default:
		return false
	}
}

// Default values.
const (
	DefaultBenchIterations = 10000
	DefaultLogLevel        = "info"
)

// BenchConfig controls the bench command.
type BenchConfig struct {
	// Iterations is the number of parses per run.
	Iterations int `json:"iterations" yaml:"iterations"`

	// Mode is "parse" or "read-all".
	Mode BenchMode `json:"mode" yaml:"mode"`
}

// Config is the root configuration structure for protoview.
type Config struct {
	// Format is the default output format of the tree command.
	Format OutputFormat `json:"format" yaml:"format"`

	// Color is "auto", "always" or "never".
	Color ColorMode `json:"color" yaml:"color"`

	// Depth limits how many levels the tree command renders (0 = unlimited).
	Depth int `json:"depth" yaml:"depth"`

	// Compact minifies json output.
	Compact bool `json:"compact" yaml:"compact"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// Bench configures the bench command.
	Bench BenchConfig `json:"bench" yaml:"bench"`

	// CLI-level options (not persisted to config files).

	// Debug enables debug logging.
	Debug bool `json:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format:   FormatText,
		Color:    ColorAuto,
		Depth:    0,
		LogLevel: DefaultLogLevel,
		Bench: BenchConfig{
			Iterations: DefaultBenchIterations,
			Mode:       BenchModeParse,
		},
	}
}

// EffectiveLogLevel returns the log level after applying Debug.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}
