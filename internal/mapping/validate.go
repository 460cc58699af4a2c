package mapping

import (
	"errors"
	"fmt"
	"strings"

	"almanac/internal/diagnostic"
)

var (
	// ErrInvalidChain reports a chain with at least one error diagnostic.
	ErrInvalidChain = errors.New("invalid chain")
	// ErrOverlappingRules reports a table whose rules claim the same source value.
	ErrOverlappingRules = fmt.Errorf("%w: overlapping rules", ErrInvalidChain)
)

const (
	CodeOverlappingRules        = "overlapping_rules"
	CodeOverlappingDestinations = "overlapping_destinations"
	CodeZeroLengthRule          = "zero_length_rule"
	CodeIdentityStage           = "identity_stage"
	CodeCategoryGap             = "category_gap"
)

const categorySeparator = "-to-"

// Categories splits a stage name of the form "<from>-to-<to>".
func Categories(name string) (from, to string, ok bool) {
	from, to, ok = strings.Cut(name, categorySeparator)
	if !ok || from == "" || to == "" {
		return "", "", false
	}

	return from, to, true
}

// Validate checks the table for overlapping and no-op rules.
// Overlapping sources are errors since the first matching rule would win
// arbitrarily. Overlapping destinations only merge values and are warnings.
func (t Table) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if len(t.Rules) == 0 {
		res.AddInfo(CodeIdentityStage, "stage has no rules and maps every value to itself", t.Name, 0)
	}

	for i, r := range t.Rules {
		if r.Length == 0 {
			res.AddWarning(CodeZeroLengthRule,
				fmt.Sprintf("rule %q maps no values", r.String()), t.Name, i+1)
		}
	}

	for i := range t.Rules {
		for j := i + 1; j < len(t.Rules); j++ {
			a, b := t.Rules[i], t.Rules[j]

			if src, other := a.SourceRange(), b.SourceRange(); src.Overlaps(other) {
				res.AddError(CodeOverlappingRules,
					fmt.Sprintf("source range %s overlaps %s of %s", src, other, diagnostic.RuleRef(j+1)),
					t.Name, i+1)
			}

			if dst, other := a.DestinationRange(), b.DestinationRange(); dst.Overlaps(other) {
				res.AddWarning(CodeOverlappingDestinations,
					fmt.Sprintf("destination range %s overlaps %s of %s", dst, other, diagnostic.RuleRef(j+1)),
					t.Name, i+1)
			}
		}
	}

	return res
}

// Validate checks every stage and that consecutive stage names chain
// category to category ("a-to-b" followed by "b-to-c").
func (c Chain) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for i, t := range c.Stages {
		res.Merge(*t.Validate())

		if i == 0 {
			continue
		}

		_, prevTo, okPrev := Categories(c.Stages[i-1].Name)
		from, _, ok := Categories(t.Name)
		if okPrev && ok && prevTo != from {
			res.AddWarning(CodeCategoryGap,
				fmt.Sprintf("stage starts at %q but the previous stage ends at %q", from, prevTo),
				t.Name, 0)
		}
	}

	return res
}

// Check validates the chain and converts error diagnostics into an error
// wrapping ErrInvalidChain, or ErrOverlappingRules when rules overlap.
// The diagnostics are returned either way.
func (c Chain) Check() (*diagnostic.Diagnostics, error) {
	diags := c.Validate()
	if !diags.HasErrors() {
		return diags, nil
	}

	sentinel := ErrInvalidChain
	if diags.HasCode(CodeOverlappingRules) {
		sentinel = ErrOverlappingRules
	}

	return diags, fmt.Errorf("%w: %w", sentinel, diags.Error())
}
