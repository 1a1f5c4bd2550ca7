package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/protoview/internal/logging"
	"github.com/yaklabco/protoview/pkg/config"
	"github.com/yaklabco/protoview/pkg/render"
)

type treeFlags struct {
	format string
	depth  int
}

func newTreeCommand(a *app) *cobra.Command {
	flags := &treeFlags{}

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Render the document outline",
		Long: `Render the outline of a document: every block with its position and
attributes. Output formats are text (an indented tree), json, yaml,
markdown (a nested list) and html (the markdown list as a page).`,
		Example: `  protoview tree config.txtpb
  protoview tree --format json --depth 2 config.txtpb
  protoview tree --format html config.txtpb > outline.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, a, flags, fileArg(args, 0))
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, json, yaml, markdown, html")
	cmd.Flags().IntVarP(&flags.depth, "depth", "d", 0, "levels of nested blocks to render (0 = unlimited)")

	return cmd
}

func runTree(cmd *cobra.Command, a *app, flags *treeFlags, file string) error {
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		format, err := render.ParseFormat(flags.format)
		if err != nil {
			return err
		}
		cliCfg.Format = config.OutputFormat(format)
	}

	s, err := a.start(cmd, cliCfg)
	if err != nil {
		return err
	}

	depth := s.cfg.Depth
	if cmd.Flags().Changed("depth") {
		if flags.depth < 0 {
			return fmt.Errorf("--depth must be >= 0, got %d", flags.depth)
		}
		depth = flags.depth
	}

	doc, input, err := s.load(cmd, file)
	if err != nil {
		return err
	}

	renderer, err := render.New(render.Options{
		Writer:  cmd.OutOrStdout(),
		Format:  render.Format(s.cfg.Format),
		Color:   string(colorOrDefault(s.cfg.Color)),
		Compact: s.cfg.Compact,
		Title:   input.Name,
	})
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	s.logger.Debug("rendering outline", logging.FieldFormat, s.cfg.Format, logging.FieldDepth, depth)
	if err := renderer.Render(s.ctx, render.Build(doc.Root(), depth)); err != nil {
		return fmt.Errorf("render outline: %w", err)
	}
	return nil
}
