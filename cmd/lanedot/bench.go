package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/example/lanedot/internal/bench"
	"github.com/example/lanedot/kernel"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark every registered kernel across the configured input sizes",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := activeCfg.Bench

			opts := bench.Options{
				Runs:   cfg.Runs,
				Warmup: cfg.Warmup,
				Iters:  cfg.Iters,
			}

			var results []bench.Result
			var gateFailures []string

			for _, size := range cfg.Sizes {
				a, b := bench.RandomPair(size, cfg.Seed)

				reference, err := kernel.Scalar(a, b)
				if err != nil {
					return fmt.Errorf("scalar reference at n=%d: %w", size, err)
				}

				for _, k := range kernel.Kernels() {
					r, err := bench.Measure(k, a, b, opts)
					if err != nil {
						if errors.Is(err, kernel.ErrTooShort) {
							slog.Warn("skipping kernel: input below block width", "kernel", k.Name, "size", size)
							continue
						}
						return err
					}

					if err := bench.CheckTolerance(r.Value, reference, cfg.Tolerance); err != nil {
						gateFailures = append(gateFailures, fmt.Sprintf("%s at n=%d: %v", k.Name, size, err))
					}

					slog.Debug("measured kernel", "kernel", k.Name, "size", size, "mean", r.Stats.Mean)
					results = append(results, r)
				}
			}

			switch cfg.Format {
			case "json":
				bench.FormatJSON(results, os.Stdout)
			default:
				bench.FormatTable(results, os.Stdout)
			}

			if len(gateFailures) > 0 {
				for _, f := range gateFailures {
					fmt.Fprintf(os.Stderr, "FAIL: %s\n", f)
				}
				return errors.New("kernel results diverged from the scalar reference")
			}
			return nil
		},
	}

	return cmd
}
