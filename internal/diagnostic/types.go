package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"almanac/internal/common"
)

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Stage identifies which mapping stage this relates to (if any).
	Stage string
	// Rule is the 1-based index of the rule inside the stage, 0 when the
	// diagnostic is about the stage as a whole.
	Rule int
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, stage string, rule int) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Stage:    stage,
		Rule:     rule,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, stage string, rule int) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Stage:    stage,
		Rule:     rule,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, stage string, rule int) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Stage:    stage,
		Rule:     rule,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// HasCode returns true if any diagnostic of any severity carries code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, diag := range d.All() {
		if diag.Code == code {
			return true
		}
	}

	return false
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Stage != "" {
		prefix = append(prefix, "["+d.Stage+"]")
	}

	if d.Rule > 0 {
		prefix = append(prefix, RuleRef(d.Rule))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// RuleRef formats a 1-based rule index the way diagnostics print it.
func RuleRef(rule int) string {
	return fmt.Sprintf("rule %d", rule)
}
