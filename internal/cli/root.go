// Package cli provides the Cobra command structure for protoview.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/protoview/internal/configloader"
	"github.com/yaklabco/protoview/internal/logging"
	"github.com/yaklabco/protoview/pkg/config"
	"github.com/yaklabco/protoview/pkg/pbtext"
	"github.com/yaklabco/protoview/pkg/source"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Options customizes the command environment. The zero value uses the
// process environment and working directory.
type Options struct {
	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// WorkingDir is where project config discovery starts.
	WorkingDir string
}

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// app carries what every subcommand needs to load config and input.
type app struct {
	opts  Options
	flags globalFlags
}

// session is the resolved state of one command invocation.
type session struct {
	ctx    context.Context
	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand creates the root protoview command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	return NewRootCommandWithOptions(info, Options{})
}

// NewRootCommandWithOptions is NewRootCommand with a custom environment.
func NewRootCommandWithOptions(info BuildInfo, opts Options) *cobra.Command {
	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:   "protoview",
		Short: "Query protobuf text format documents without a schema",
		Long: `protoview indexes protobuf text format documents in a single pass and
answers queries lazily: names and values are only materialized when read.

It needs no .proto schema. Blocks ("name { ... }") and attributes
("name: value") are located by position and looked up by name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&a.flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&a.flags.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newGetCommand(a))
	rootCmd.AddCommand(newKeysCommand(a))
	rootCmd.AddCommand(newTreeCommand(a))
	rootCmd.AddCommand(newBenchCommand(a))
	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(a.flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// start loads configuration for cmd, layering cliCfg over every other
// source, and attaches a logger writing to the command's stderr.
func (a *app) start(cmd *cobra.Command, cliCfg *config.Config) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cliCfg == nil {
		cliCfg = &config.Config{}
	}
	cliCfg.Debug = a.flags.debug
	if cmd.Flags().Changed("color") {
		cliCfg.Color = config.ColorMode(a.flags.color)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   a.opts.WorkingDir,
		ExplicitPath: a.flags.configPath,
		Getenv:       a.opts.Getenv,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.EffectiveLogLevel())

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfigFiles, loadResult.LoadedFrom)
	}

	return &session{
		ctx:    logging.WithLogger(ctx, logger),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// load reads and indexes the document at path, or stdin when path is empty.
func (s *session) load(cmd *cobra.Command, path string) (*pbtext.Document, *source.Input, error) {
	input, err := source.Load(s.ctx, path, cmd.InOrStdin())
	if err != nil {
		return nil, nil, fmt.Errorf("load input: %w", err)
	}
	if warning := input.Warning(); warning != "" {
		s.logger.Warn(warning, logging.FieldLanguage, input.Language)
	}

	doc := pbtext.ParseBytes(input.Content)
	s.logger.Debug("indexed document",
		logging.FieldInput, input.Name,
		logging.FieldBytes, len(input.Content),
		logging.FieldBlocks, doc.MessageCount(),
		logging.FieldAttributes, doc.AttributeCount(),
	)
	return doc, input, nil
}

// fileArg returns the optional file argument at index i.
func fileArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
