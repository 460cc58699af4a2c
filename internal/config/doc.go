// Package config loads the optional YAML settings file of the almanac CLI.
//
// The file has the following structure:
//
//	part: both        # seeds | ranges | both
//	validate: true    # reject tables with overlapping rules
//	merge: true       # coalesce adjacent intervals after every stage
//	log:
//	  level: info     # debug | info | warn | error
//	  encoding: console  # console | json
//
// Missing keys take the defaults shown above.
package config
