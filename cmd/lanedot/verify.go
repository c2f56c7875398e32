package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/example/lanedot/internal/bench"
	"github.com/example/lanedot/internal/hwcaps"
	"github.com/example/lanedot/kernel"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every registered kernel against the scalar reference",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := activeCfg.Bench

			tolerance := cfg.Tolerance
			if tolerance <= 0 {
				// Verification without a gate is meaningless; fall back to
				// the default rather than passing everything.
				tolerance = 1e-5
				slog.Warn("tolerance disabled in config, using 1e-5 for verify")
			}

			failed := 0
			for _, size := range cfg.Sizes {
				a, b := bench.RandomPair(size, cfg.Seed)

				reference, err := kernel.Scalar(a, b)
				if err != nil {
					return fmt.Errorf("scalar reference at n=%d: %w", size, err)
				}

				for _, k := range kernel.Kernels() {
					got, err := k.Dot(a, b)
					if err != nil {
						if errors.Is(err, kernel.ErrTooShort) {
							fmt.Fprintf(os.Stdout, "%s %s n=%d: skipped (input below block width)\n", hwcaps.PassMark, k.Name, size)
							continue
						}
						return err
					}

					if err := bench.CheckTolerance(got, reference, tolerance); err != nil {
						failed++
						fmt.Fprintf(os.Stdout, "%s %s n=%d: %v\n", hwcaps.FailMark, k.Name, size, err)
						continue
					}
					fmt.Fprintf(os.Stdout, "%s %s n=%d\n", hwcaps.PassMark, k.Name, size)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d kernel checks failed", failed)
			}

			fmt.Fprintln(os.Stdout, "all kernels agree with the scalar reference")
			return nil
		},
	}

	return cmd
}
