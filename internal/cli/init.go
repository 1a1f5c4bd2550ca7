package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/protoview/internal/configloader"
	"github.com/yaklabco/protoview/internal/logging"
	"github.com/yaklabco/protoview/pkg/config"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand(a *app) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a protoview configuration file",
		Long: `Create a .protoview.yml configuration file in the current directory.
By default every setting is written commented out; --full writes the
default values instead.`,
		Example: `  protoview init                     Create .protoview.yml
  protoview init --full              Write every default value
  protoview init --format json       Create .protoview.json instead
  protoview init --output custom.yml Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(logging.NewWithWriter(cmd.ErrOrStderr(), "info"), a.opts.WorkingDir, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "write default values instead of comments")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file path (default: .protoview.yml or .protoview.json)")

	return cmd
}

func runInit(logger *log.Logger, workDir string, flags *initFlags) error {
	if flags.format != "yaml" && flags.format != "json" {
		return fmt.Errorf("invalid format %q: must be yaml or json", flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = config.DefaultFileName
		if flags.format == "json" {
			outputPath = ".protoview.json"
		}
	}

	if workDir != "" && !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(workDir, outputPath)
	}
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := configloader.WriteFile(absPath, content, flags.force); err != nil {
		if errors.Is(err, configloader.ErrConfigExists) {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if flags.format == "json" {
		logger.Warn("protoview only reads YAML configuration; json output is for reference")
	}

	return nil
}
