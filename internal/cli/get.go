package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/protoview/internal/logging"
	"github.com/yaklabco/protoview/pkg/config"
	"github.com/yaklabco/protoview/pkg/query"
	"github.com/yaklabco/protoview/pkg/render"
)

type getFlags struct {
	all bool
}

func newGetCommand(a *app) *cobra.Command {
	flags := &getFlags{}

	cmd := &cobra.Command{
		Use:   "get <path> [file]",
		Short: "Print the values or blocks selected by a query path",
		Long: `Print the values or blocks selected by a query path.

A path is a list of block names separated by "/", optionally ending in
"@attribute". "name[n]" picks the n-th (0-based) match, "name" or "name[*]"
every match. Without --all only the first selection is printed. The command
exits with status 1 when nothing matches.`,
		Example: `  protoview get service/endpoint@path config.txtpb
  protoview get --all 'service/endpoint[*]@path' config.txtpb
  protoview get service/endpoint[1] < config.txtpb
  protoview get '@version' config.txtpb`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, a, flags, args[0], fileArg(args, 1))
		},
	}

	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "print every match instead of the first")

	return cmd
}

func runGet(cmd *cobra.Command, a *app, flags *getFlags, expr, file string) error {
	path, err := query.Compile(expr)
	if err != nil {
		return err
	}

	s, err := a.start(cmd, nil)
	if err != nil {
		return err
	}

	doc, _, err := s.load(cmd, file)
	if err != nil {
		return err
	}
	root := doc.Root()

	if path.Attr != "" {
		values, err := path.Values(root)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", path, err)
		}
		s.logger.Debug("query evaluated", logging.FieldQuery, path.String(), logging.FieldMatches, len(values))
		if len(values) == 0 {
			return ErrNoMatch
		}
		if !flags.all {
			values = values[:1]
		}
		for _, value := range values {
			fmt.Fprintln(cmd.OutOrStdout(), value)
		}
		return nil
	}

	views := path.Elements(root)
	s.logger.Debug("query evaluated", logging.FieldQuery, path.String(), logging.FieldMatches, len(views))
	if len(views) == 0 {
		return ErrNoMatch
	}
	if !flags.all {
		views = views[:1]
	}

	renderer := render.NewTextRenderer(render.Options{
		Writer: cmd.OutOrStdout(),
		Color:  string(colorOrDefault(s.cfg.Color)),
	})
	for _, view := range views {
		if err := renderer.Render(s.ctx, render.Build(view, s.cfg.Depth)); err != nil {
			return fmt.Errorf("render %s: %w", view.Name(), err)
		}
	}
	return nil
}

func colorOrDefault(mode config.ColorMode) config.ColorMode {
	if mode == "" {
		return config.ColorAuto
	}
	return mode
}
