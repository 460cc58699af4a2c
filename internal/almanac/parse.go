package almanac

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"almanac/internal/mapping"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = "map:"
)

// LoadFile reads and parses an almanac file.
func LoadFile(path string) (*Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac file %s: %w", path, err)
	}

	a, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse almanac file %s: %w", path, err)
	}

	return a, nil
}

// Parse parses almanac text. Stages keep the order of their blocks.
func Parse(text string) (*Almanac, error) {
	a := &Almanac{}
	seenSeeds := false

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			continue

		case !seenSeeds:
			rest, ok := strings.CutPrefix(line, seedsPrefix)
			if !ok {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingSeeds)
			}

			seeds, err := ExtractNumbers(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

			a.Seeds = seeds
			seenSeeds = true

		case strings.HasSuffix(line, mapSuffix):
			name := strings.TrimSpace(strings.TrimSuffix(line, mapSuffix))
			a.Chain.Stages = append(a.Chain.Stages, mapping.NewTable(name))

		default:
			if len(a.Chain.Stages) == 0 {
				return nil, fmt.Errorf("line %d: %w: rule outside a map block", lineNo, ErrMalformedRule)
			}

			rule, err := parseRule(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

			stage := &a.Chain.Stages[len(a.Chain.Stages)-1]
			stage.Rules = append(stage.Rules, rule)
		}
	}

	if !seenSeeds {
		return nil, ErrMissingSeeds
	}

	return a, nil
}

func parseRule(line string) (mapping.Rule, error) {
	numbers, err := ExtractNumbers(line)
	if err != nil {
		return mapping.Rule{}, err
	}

	if len(numbers) != 3 {
		return mapping.Rule{}, fmt.Errorf("%w: want 3 numbers, got %d in %q", ErrMalformedRule, len(numbers), line)
	}

	r := mapping.Rule{Destination: numbers[0], Source: numbers[1], Length: numbers[2]}
	if r.Source+r.Length < r.Source || r.Destination+r.Length < r.Destination {
		return mapping.Rule{}, fmt.Errorf("%w: %q overflows", ErrMalformedRule, line)
	}

	return r, nil
}

// ExtractNumbers returns every maximal run of decimal digits in s.
// Any other character, including '-', separates numbers.
func ExtractNumbers(s string) ([]uint64, error) {
	var numbers []uint64

	fields := strings.FieldsFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse number %q: %w", f, err)
		}

		numbers = append(numbers, n)
	}

	return numbers, nil
}
