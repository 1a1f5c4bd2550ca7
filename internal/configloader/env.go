package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/protoview/pkg/config"
)

// envVarPrefix is the prefix for all protoview environment variables.
const envVarPrefix = "PROTOVIEW_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping maps one environment variable (without prefix) to a config field.
type envMapping struct {
	suffix      string
	field       string
	typ         envFieldType
	description string
}

// envMappings lists the supported variables in a stable order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = []envMapping{
	{suffix: "FORMAT", field: "format", typ: envTypeString, description: "Tree output format: text, json, yaml, markdown, or html"},
	{suffix: "COLOR", field: "color", typ: envTypeString, description: "Colorized output: auto, always, or never"},
	{suffix: "DEPTH", field: "depth", typ: envTypeInt, description: "Tree depth limit (0 = unlimited)"},
	{suffix: "COMPACT", field: "compact", typ: envTypeBool, description: "Minified json output: true or false"},
	{suffix: "LOG_LEVEL", field: "log_level", typ: envTypeString, description: "Log level: debug, info, warn, or error"},
	{suffix: "BENCH_ITERATIONS", field: "bench.iterations", typ: envTypeInt, description: "Parses per bench run"},
	{suffix: "BENCH_MODE", field: "bench.mode", typ: envTypeString, description: "Bench mode: parse or read-all"},
	{suffix: "DEBUG", field: "debug", typ: envTypeBool, description: "Enable debug logging: true or false"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with PROTOVIEW_ (e.g., PROTOVIEW_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	return LoadFromEnvFunc(cfg, os.Getenv)
}

// LoadFromEnvFunc is LoadFromEnv with a custom variable lookup.
func LoadFromEnvFunc(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for _, mapping := range envMappings {
		envVar := envVarPrefix + mapping.suffix
		value := getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "log_level":
		cfg.LogLevel = value
	case "bench.mode":
		cfg.Bench.Mode = config.BenchMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "compact":
		cfg.Compact = value
	case "debug":
		cfg.Debug = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "depth":
		cfg.Depth = value
	case "bench.iterations":
		cfg.Bench.Iterations = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for _, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + mapping.suffix
		}
	}
	return ""
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for _, mapping := range envMappings {
		vars[envVarPrefix+mapping.suffix] = mapping.description
	}
	return vars
}
