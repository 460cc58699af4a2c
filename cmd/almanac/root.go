package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"almanac/internal/config"
)

// cli holds flag values and the state shared by all commands.
type cli struct {
	configPath string
	verbose    bool

	part       string
	noValidate bool
	noMerge    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "almanac",
		Short: "Find the lowest location number of a seed almanac",
		Long: `almanac reads a seed almanac: a "seeds:" line followed by
"<from>-to-<to> map:" blocks of "destination source length" rules.

The seeds line is read either as a list of seeds or as (start, length)
seed ranges. Seed ranges are carried through the maps as intervals, so
ranges of billions of seeds are solved instantly.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd(c), newLookupCmd(c), newCheckCmd(c))

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.LoadFile(c.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("part") {
		cfg.Part = c.part
	}

	if flags.Changed("no-validate") {
		cfg.Validate = boolPtr(!c.noValidate)
	}

	if flags.Changed("no-merge") {
		cfg.Merge = boolPtr(!c.noMerge)
	}

	c.cfg = cfg

	if c.logger == nil {
		logger, err := cfg.Log.NewLogger(c.verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		c.logger = logger
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	c.logger.Debug("config loaded", zap.String("path", c.configPath), zap.ByteString("config", data))

	return nil
}

func boolPtr(b bool) *bool {
	return &b
}
