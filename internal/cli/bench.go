package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/protoview/internal/logging"
	"github.com/yaklabco/protoview/internal/ui/pretty"
	"github.com/yaklabco/protoview/pkg/config"
	"github.com/yaklabco/protoview/pkg/pbtext"
)

// benchCheckEvery is how often a read-all run re-checks the key count and
// the context.
const benchCheckEvery = 1000

type benchFlags struct {
	iterations int
	mode       string
}

// benchResult is the timing of one bench run.
type benchResult struct {
	mode       config.BenchMode
	iterations int
	elapsed    time.Duration
}

func (r benchResult) perOp() time.Duration {
	if r.iterations == 0 {
		return 0
	}
	return r.elapsed / time.Duration(r.iterations)
}

func (r benchResult) opsPerSecond() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.iterations) / r.elapsed.Seconds()
}

func newBenchCommand(a *app) *cobra.Command {
	flags := &benchFlags{}

	cmd := &cobra.Command{
		Use:   "bench [file]",
		Short: "Time repeated indexing of a document",
		Long: `Time repeated indexing of a document.

In parse mode every iteration indexes the input. In read-all mode every
iteration also reads the names of all blocks below the root, which
materializes them.`,
		Example: `  protoview bench config.txtpb
  protoview bench --iterations 100000 --mode read-all config.txtpb`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, a, flags, fileArg(args, 0))
		},
	}

	cmd.Flags().IntVarP(&flags.iterations, "iterations", "n", config.DefaultBenchIterations, "number of iterations")
	cmd.Flags().StringVarP(&flags.mode, "mode", "m", string(config.BenchModeParse), "what to time: parse, read-all")

	return cmd
}

func runBench(cmd *cobra.Command, a *app, flags *benchFlags, file string) error {
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("mode") {
		cliCfg.Bench.Mode = config.BenchMode(flags.mode)
	}

	s, err := a.start(cmd, cliCfg)
	if err != nil {
		return err
	}

	iterations := s.cfg.Bench.Iterations
	if cmd.Flags().Changed("iterations") {
		iterations = flags.iterations
	}
	if iterations <= 0 {
		return fmt.Errorf("iterations must be > 0, got %d", iterations)
	}

	_, input, err := s.load(cmd, file)
	if err != nil {
		return err
	}
	text := string(input.Content)

	s.logger.Debug("starting bench",
		logging.FieldInput, input.Name,
		logging.FieldIterations, iterations,
		logging.FieldMode, s.cfg.Bench.Mode,
	)

	result, err := bench(s.ctx, text, s.cfg.Bench.Mode, iterations)
	if err != nil {
		return err
	}

	s.logger.Debug("bench finished", logging.FieldElapsed, result.elapsed)

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(colorOrDefault(s.cfg.Color)), out))
	table := pretty.Table{
		Headers: []string{"MODE", "ITERATIONS", "TOTAL", "PER OP", "OPS/SEC"},
		Rows: [][]string{{
			string(result.mode),
			strconv.Itoa(result.iterations),
			result.elapsed.Round(time.Microsecond).String(),
			result.perOp().String(),
			strconv.FormatFloat(result.opsPerSecond(), 'f', 0, 64),
		}},
		Legend: fmt.Sprintf("%s: %d bytes", input.Name, len(input.Content)),
	}
	fmt.Fprint(out, pretty.NewTableFormatter(styles, terminalWidth(out)).Format(table))
	return nil
}

// bench indexes text iterations times. In read-all mode each document's
// keys are read as well and their count is checked against the first run.
func bench(ctx context.Context, text string, mode config.BenchMode, iterations int) (benchResult, error) {
	if mode == "" {
		mode = config.BenchModeParse
	}
	result := benchResult{mode: mode, iterations: iterations}

	wantKeys := -1
	start := time.Now()
	for i := range iterations {
		doc := pbtext.Parse(text)
		if mode == config.BenchModeParse {
			if i%benchCheckEvery == 0 && ctx.Err() != nil {
				return result, ctx.Err()
			}
			continue
		}

		keys := pbtext.AllKeys(doc.Root())
		if i%benchCheckEvery != 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if wantKeys < 0 {
			wantKeys = len(keys)
		} else if len(keys) != wantKeys {
			return result, fmt.Errorf("iteration %d read %d keys, want %d", i, len(keys), wantKeys)
		}
	}
	result.elapsed = time.Since(start)

	return result, nil
}
