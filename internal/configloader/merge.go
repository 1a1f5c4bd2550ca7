package configloader

import "github.com/yaklabco/protoview/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// Scalar values in override replace base only when non-zero, so a file cannot
// reset a value to its zero (depth: 0, compact: false) once a lower layer set it.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Depth != 0 {
		result.Depth = override.Depth
	}
	if override.Compact {
		result.Compact = true
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Debug {
		result.Debug = true
	}

	if override.Bench.Iterations != 0 {
		result.Bench.Iterations = override.Bench.Iterations
	}
	if override.Bench.Mode != "" {
		result.Bench.Mode = override.Bench.Mode
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
