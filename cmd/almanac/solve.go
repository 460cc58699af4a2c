package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"almanac/internal/almanac"
)

func newSolveCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the lowest location number",
		Long: `Prints the lowest location number reachable from the seeds.

With --part both (the default) one "<part>: <location>" line is printed per
part; a single part prints the bare number.`,
		Args: cobra.ExactArgs(1),
		RunE: c.runSolve,
	}

	cmd.Flags().StringVarP(&c.part, "part", "p", "both", "seeds, ranges or both")
	cmd.Flags().BoolVar(&c.noValidate, "no-validate", false, "skip the overlapping rule check")
	cmd.Flags().BoolVar(&c.noMerge, "no-merge", false, "do not coalesce intervals between stages")

	return cmd
}

func (c *cli) runSolve(cmd *cobra.Command, args []string) error {
	parts, err := c.cfg.Parts()
	if err != nil {
		return err
	}

	a, err := c.load(args[0])
	if err != nil {
		return err
	}

	opts := append(c.cfg.SolveOptions(), almanac.WithLogger(c.logger))

	out := cmd.OutOrStdout()
	for _, part := range parts {
		lowest, err := a.Solve(part, opts...)
		if err != nil {
			return err
		}

		if len(parts) == 1 {
			fmt.Fprintln(out, lowest)
			continue
		}

		fmt.Fprintf(out, "%s: %d\n", part, lowest)
	}

	return nil
}

func (c *cli) load(path string) (*almanac.Almanac, error) {
	a, err := almanac.LoadFile(path)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("almanac loaded",
		zap.String("path", path),
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("stages", a.Chain.Len()))

	return a, nil
}
