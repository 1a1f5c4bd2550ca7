package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/protoview/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Zero(t, cfg.Depth)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.DefaultBenchIterations, cfg.Bench.Iterations)
	assert.Equal(t, config.BenchModeParse, cfg.Bench.Mode)
}

func TestConfig_EffectiveLogLevel(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{LogLevel: "warn"}
	assert.Equal(t, "warn", cfg.EffectiveLogLevel())

	cfg.Debug = true
	assert.Equal(t, "debug", cfg.EffectiveLogLevel())

	assert.Equal(t, "info", (&config.Config{}).EffectiveLogLevel())
}

func TestBenchMode_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.BenchModeParse.IsValid())
	assert.True(t, config.BenchModeReadAll.IsValid())
	assert.False(t, config.BenchMode("walk").IsValid())
	assert.False(t, config.BenchMode("").IsValid())
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("preserves all fields", func(t *testing.T) {
		t.Parallel()
		original := &config.Config{
			Format:   config.FormatJSON,
			Color:    config.ColorNever,
			Depth:    3,
			Compact:  true,
			LogLevel: "debug",
			Bench:    config.BenchConfig{Iterations: 5, Mode: config.BenchModeReadAll},
			Debug:    true,
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, original, clone)

		clone.Bench.Iterations = 7
		assert.Equal(t, 5, original.Bench.Iterations)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("omits CLI-only fields", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Debug = true

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "format: text")
		assert.Contains(t, string(data), "  iterations: 10000")
		assert.NotContains(t, string(data), "debug")
	})

	t.Run("with header", func(t *testing.T) {
		t.Parallel()
		data, err := config.NewConfig().ToYAMLWithHeader("# header")
		require.NoError(t, err)
		assert.Regexp(t, `^# header\n\nformat: text\n`, string(data))
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses valid YAML", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.FromYAML([]byte(`
format: markdown
depth: 2
bench:
  iterations: 50
  mode: read-all
`))
		require.NoError(t, err)
		assert.Equal(t, config.FormatMarkdown, cfg.Format)
		assert.Equal(t, 2, cfg.Depth)
		assert.Equal(t, 50, cfg.Bench.Iterations)
		assert.Equal(t, config.BenchModeReadAll, cfg.Bench.Mode)
	})

	t.Run("round trips defaults", func(t *testing.T) {
		t.Parallel()
		data, err := config.NewConfig().ToYAML()
		require.NoError(t, err)
		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.NewConfig(), cfg)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.FromYAML([]byte("# only a comment\n"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()
		_, err := config.FromYAML([]byte("flavor: gfm\n"))
		require.Error(t, err)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()
		_, err := config.FromYAML([]byte("format: [text\n"))
		require.Error(t, err)
	})
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal template is commented out", func(t *testing.T) {
		t.Parallel()
		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)
		out := string(data)
		assert.Contains(t, out, "# protoview configuration")
		assert.Contains(t, out, "\n# format: text\n")
		assert.Contains(t, out, "\n#   mode: parse\n")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("full template parses to defaults", func(t *testing.T) {
		t.Parallel()
		data, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
		require.NoError(t, err)
		assert.Contains(t, string(data), "\nformat: text\n")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.NewConfig(), cfg)
	})

	t.Run("json template", func(t *testing.T) {
		t.Parallel()
		data, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "text", decoded["format"])
		assert.NotContains(t, decoded, "Debug")
	})
}
