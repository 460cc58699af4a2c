package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"almanac/internal/common"
	"almanac/internal/mapping"
)

func newLookupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [file] [seed]...",
		Short: "Print the value of each seed after every stage",
		Example: `  almanac lookup input.txt 79 14
  seed 79 -> soil 81 -> fertilizer 81 -> ... -> location 82`,
		Args: cobra.MinimumNArgs(2),
		RunE: c.runLookup,
	}
}

func (c *cli) runLookup(cmd *cobra.Command, args []string) error {
	seeds := make([]uint64, 0, len(args)-1)
	for _, arg := range args[1:] {
		seed, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", arg, err)
		}

		seeds = append(seeds, seed)
	}

	a, err := c.load(args[0])
	if err != nil {
		return err
	}

	labels := stageLabels(a.Chain)
	for _, seed := range seeds {
		trace := a.Chain.Trace(seed)

		steps := make([]string, len(trace))
		for i, v := range trace {
			steps[i] = fmt.Sprintf("%s %d", labels[i], v)
		}

		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(steps, " -> "))
	}

	return nil
}

// stageLabels names the input value and the output of every stage, using
// the categories of "<from>-to-<to>" stage names where possible.
func stageLabels(chain mapping.Chain) []string {
	labels := make([]string, 0, chain.Len()+1)
	labels = append(labels, "seed")

	if first, ok := common.First(chain.Stages); ok {
		if from, _, ok := mapping.Categories(first.Name); ok {
			labels[0] = from
		}
	}

	for i, t := range chain.Stages {
		label := fmt.Sprintf("stage%d", i+1)
		if _, to, ok := mapping.Categories(t.Name); ok {
			label = to
		}

		labels = append(labels, label)
	}

	return labels
}
