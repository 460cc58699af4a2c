// Package main provides the CLI entrypoint for almanac.
//
// almanac reads a seed almanac and reports the lowest location number:
//   - solve: lowest location for the seed list, the seed ranges, or both
//   - lookup: per-stage trace of individual seeds
//   - check: overlapping rule and stage continuity diagnostics
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(&cli{}).Execute(); err != nil {
		os.Exit(1)
	}
}
