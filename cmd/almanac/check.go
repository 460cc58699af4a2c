package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Report overlapping rules and stage continuity problems",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runCheck,
	}
}

func (c *cli) runCheck(cmd *cobra.Command, args []string) error {
	a, err := c.load(args[0])
	if err != nil {
		return err
	}

	diags, err := a.Chain.Check()

	out := cmd.OutOrStdout()
	for _, d := range diags.All() {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	if err != nil {
		return err
	}

	rules := 0
	for _, t := range a.Chain.Stages {
		rules += len(t.Rules)
	}

	fmt.Fprintf(out, "ok: %d seeds, %d stages, %d rules\n", len(a.Seeds), a.Chain.Len(), rules)

	return nil
}
