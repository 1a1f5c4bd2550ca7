package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/protoview/internal/ui/pretty"
	"github.com/yaklabco/protoview/pkg/pbtext"
	"github.com/yaklabco/protoview/pkg/query"
)

type keysFlags struct {
	path      string
	recursive bool
	count     bool
}

func newKeysCommand(a *app) *cobra.Command {
	flags := &keysFlags{}

	cmd := &cobra.Command{
		Use:   "keys [file]",
		Short: "List block names",
		Long: `List the names of the blocks directly inside the document root, or inside
the first block selected by --path. Repeated names are listed once per
occurrence, in document order. Attributes are not keys.`,
		Example: `  protoview keys config.txtpb
  protoview keys --path service --recursive config.txtpb
  protoview keys --count < config.txtpb`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(cmd, a, flags, fileArg(args, 0))
		},
	}

	cmd.Flags().StringVarP(&flags.path, "path", "p", "", "query path of the block to list (default: document root)")
	cmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "include nested blocks")
	cmd.Flags().BoolVarP(&flags.count, "count", "c", false, "print a table of distinct names and their counts")

	return cmd
}

func runKeys(cmd *cobra.Command, a *app, flags *keysFlags, file string) error {
	var path *query.Path
	if flags.path != "" {
		var err error
		if path, err = query.Compile(flags.path); err != nil {
			return err
		}
		if path.Attr != "" {
			return fmt.Errorf("--path %s: %w", path, query.ErrAttributeSelector)
		}
	}

	s, err := a.start(cmd, nil)
	if err != nil {
		return err
	}

	doc, _, err := s.load(cmd, file)
	if err != nil {
		return err
	}

	view := doc.Root()
	if path != nil {
		views := path.Elements(view)
		if len(views) == 0 {
			return ErrNoMatch
		}
		view = views[0]
	}

	var keys []string
	if flags.recursive {
		keys = pbtext.AllKeys(view)
	} else {
		keys = view.Keys()
	}

	out := cmd.OutOrStdout()
	if !flags.count {
		for _, key := range keys {
			fmt.Fprintln(out, key)
		}
		return nil
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(string(colorOrDefault(s.cfg.Color)), out))
	fmt.Fprint(out, pretty.NewTableFormatter(styles, terminalWidth(out)).Format(keyCountTable(keys)))
	return nil
}

// keyCountTable tallies keys in order of first appearance.
func keyCountTable(keys []string) pretty.Table {
	counts := make(map[string]int, len(keys))
	var order []string
	for _, key := range keys {
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	table := pretty.Table{
		Headers:   []string{"NAME", "COUNT"},
		Highlight: map[int]bool{},
		Legend:    fmt.Sprintf("%d keys, %d distinct", len(keys), len(order)),
	}
	for i, key := range order {
		table.Rows = append(table.Rows, []string{key, strconv.Itoa(counts[key])})
		if counts[key] > 1 {
			table.Highlight[i] = true
		}
	}
	return table
}

// terminalWidth returns the width of w if it is a terminal, or 0.
func terminalWidth(w any) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
