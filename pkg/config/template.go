package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultFileName is the project configuration file written by init.
const DefaultFileName = ".protoview.yml"

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting with its default value.
	// If false, settings are written commented out.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// templateEntry is one documented setting.
type templateEntry struct {
	comment string
	lines   []string
}

func templateEntries(cfg *Config) []templateEntry {
	return []templateEntry{
		{
			comment: "Output format of the tree command: text, json, yaml, markdown, or html",
			lines:   []string{fmt.Sprintf("format: %s", cfg.Format)},
		},
		{
			comment: "Colorized output: auto, always, or never",
			lines:   []string{fmt.Sprintf("color: %s", cfg.Color)},
		},
		{
			comment: "Levels of nested blocks rendered by tree (0 = unlimited)",
			lines:   []string{fmt.Sprintf("depth: %d", cfg.Depth)},
		},
		{
			comment: "Minified json output",
			lines:   []string{fmt.Sprintf("compact: %t", cfg.Compact)},
		},
		{
			comment: "Log level: debug, info, warn, or error",
			lines:   []string{fmt.Sprintf("log_level: %s", cfg.LogLevel)},
		},
		{
			comment: "Benchmark settings; mode is parse or read-all",
			lines: []string{
				"bench:",
				fmt.Sprintf("  iterations: %d", cfg.Bench.Iterations),
				fmt.Sprintf("  mode: %s", cfg.Bench.Mode),
			},
		},
	}
}

// GenerateTemplate creates a configuration file template populated with
// the default configuration.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	cfg := NewConfig()

	if opts.Format == "json" {
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal JSON: %w", err)
		}
		return append(out, '\n'), nil
	}

	var buf strings.Builder
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n")

	for _, entry := range templateEntries(cfg) {
		buf.WriteString("\n# " + entry.comment + "\n")
		for _, line := range entry.lines {
			if !opts.Full {
				buf.WriteString("# ")
			}
			buf.WriteString(line + "\n")
		}
	}

	return []byte(buf.String()), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# protoview configuration
# See: https://github.com/yaklabco/protoview`
}
