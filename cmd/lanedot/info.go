package main

import (
	"os"

	"github.com/example/lanedot/internal/hwcaps"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print host CPU capabilities relevant to the blocked kernels",
		RunE: func(_ *cobra.Command, _ []string) error {
			hwcaps.Collect().Format(os.Stdout)
			return nil
		},
	}

	return cmd
}
