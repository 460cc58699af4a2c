package almanac

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Part -linecomment -output=part_string.go

// Part selects how the seeds line is read.
type Part int

const (
	_ Part = iota // skip zero value, use it as an invalid Part

	PartSeeds  // seeds
	PartRanges // ranges
)

// AllParts lists every part in puzzle order.
var AllParts = []Part{PartSeeds, PartRanges}

// IsValid reports whether p is a known part.
func (p Part) IsValid() bool {
	return p == PartSeeds || p == PartRanges
}

// ParsePart accepts a part name or its puzzle number.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "seeds", "1":
		return PartSeeds, nil
	case "ranges", "2":
		return PartRanges, nil
	default:
		return 0, fmt.Errorf("unknown part %q (want seeds or ranges)", s)
	}
}
