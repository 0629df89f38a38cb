package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"fieldline/internal/common"
)

// Severity ranks a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Location points at a mapping and a field path inside it. Both are optional.
type Location struct {
	Mapping string
	Path    string
}

// At returns a location.
func At(mapping, path string) Location { return Location{Mapping: mapping, Path: path} }

func (l Location) String() string {
	switch {
	case l.Mapping == "":
		return l.Path
	case l.Path == "":
		return "[" + l.Mapping + "]"
	default:
		return "[" + l.Mapping + "] " + l.Path
	}
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Location

	Severity    Severity
	Code        string // stable snake_case identifier, e.g. unknown_transform
	Message     string
	Suggestions []string
}

func (d Diagnostic) String() string {
	var sb strings.Builder

	if loc := d.Location.String(); loc != "" {
		sb.WriteString(loc)
		sb.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&sb, "[%s] ", d.Code)
	}

	sb.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&sb, " (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	return sb.String()
}

// Diagnostics collects findings by severity, in report order.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Errorf records an error.
func (d *Diagnostics) Errorf(at Location, code, format string, args ...any) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, at, code, format, args))
}

// Warnf records a warning.
func (d *Diagnostics) Warnf(at Location, code, format string, args ...any) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, at, code, format, args))
}

// Infof records a note.
func (d *Diagnostics) Infof(at Location, code, format string, args ...any) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, at, code, format, args))
}

func newDiagnostic(sev Severity, at Location, code, format string, args []any) Diagnostic {
	return Diagnostic{Location: at, Severity: sev, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Suggest attaches suggestions to the last recorded error.
func (d *Diagnostics) Suggest(suggestions ...string) {
	if len(d.Errors) == 0 || len(suggestions) == 0 {
		return
	}

	last := &d.Errors[len(d.Errors)-1]
	last.Suggestions = append(last.Suggestions, suggestions...)
}

// Merge appends the findings of other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool { return len(d.Errors) > 0 }

// Err returns the errors joined into one error, or nil.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	msgs := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		msgs[i] = e.String()
	}

	return errors.New(strings.Join(msgs, "; "))
}
