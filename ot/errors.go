package ot

import (
	"errors"
	"fmt"
	"sync"
)

// ErrFontFormat is the error all font structure errors of this package wrap.
var ErrFontFormat = errors.New("OpenType font format")

// errFontFormat produces user level errors for font parsing.
func errFontFormat(message string) error {
	return fmt.Errorf("%w: %s", ErrFontFormat, message)
}

// ErrorSeverity represents the severity level of a font parsing error.
type ErrorSeverity int

const (
	// SeverityCritical indicates a severe error that makes the font unusable or unreliable.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor indicates a significant error that may affect functionality but doesn't prevent usage.
	SeverityMajor
	// SeverityMinor indicates a minor issue that can be safely ignored in most cases.
	SeverityMinor
)

// String returns a human-readable representation of the error severity.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// FontError represents a structural problem found in a font's table directory.
type FontError struct {
	Table    Tag           // The table concerned, or 0 for the font header
	Section  string        // Part of the structure (e.g., "TableRecords", "Bounds")
	Issue    string        // Human-readable description of the issue
	Severity ErrorSeverity // Severity level of the error
	Offset   uint32        // Byte offset in the font file where the error occurred (0 if unknown)
}

// Error implements the error interface.
func (e FontError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("[%s] %s/%s at offset %d: %s", e.Severity, e.Table, e.Section, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] %s/%s: %s", e.Severity, e.Table, e.Section, e.Issue)
}

// Unwrap lets errors.Is match FontErrors against ErrFontFormat.
func (e FontError) Unwrap() error {
	return ErrFontFormat
}

// FontWarning represents a non-critical issue encountered during font parsing.
// Warnings indicate potential problems but do not prevent font usage.
type FontWarning struct {
	Table  Tag    // The table concerned
	Issue  string // Human-readable description of the warning
	Offset uint32 // Byte offset in the font file where the warning occurred (0 if unknown)
}

// String returns a human-readable representation of the warning.
func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Table, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Table, w.Issue)
}

// errorCollector accumulates errors and warnings of a face. Directory
// problems are recorded while the face is created; tables rejected by a
// sanitizer are recorded later, possibly from several goroutines.
type errorCollector struct {
	mu       sync.Mutex
	errors   []FontError
	warnings []FontWarning
}

// addError records an error and returns it.
func (ec *errorCollector) addError(table Tag, section string, issue string, severity ErrorSeverity, offset uint32) FontError {
	e := FontError{
		Table:    table,
		Section:  section,
		Issue:    issue,
		Severity: severity,
		Offset:   offset,
	}
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.errors = append(ec.errors, e)
	return e
}

// addErrorOnce records an error unless an error for the same table and
// section is already present. It reports whether the error was added.
func (ec *errorCollector) addErrorOnce(table Tag, section string, issue string, severity ErrorSeverity, offset uint32) bool {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	for _, e := range ec.errors {
		if e.Table == table && e.Section == section {
			return false
		}
	}
	ec.errors = append(ec.errors, FontError{
		Table:    table,
		Section:  section,
		Issue:    issue,
		Severity: severity,
		Offset:   offset,
	})
	return true
}

// addWarning records a warning.
func (ec *errorCollector) addWarning(table Tag, issue string, offset uint32) {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	ec.warnings = append(ec.warnings, FontWarning{
		Table:  table,
		Issue:  issue,
		Offset: offset,
	})
}

func (ec *errorCollector) hasWarnings() bool {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return len(ec.warnings) > 0
}

// allErrors returns a copy of the recorded errors, never nil.
func (ec *errorCollector) allErrors() []FontError {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return append(make([]FontError, 0, len(ec.errors)), ec.errors...)
}

// allWarnings returns a copy of the recorded warnings, never nil.
func (ec *errorCollector) allWarnings() []FontWarning {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return append(make([]FontWarning, 0, len(ec.warnings)), ec.warnings...)
}

// criticalErrors returns all errors with critical severity.
func (ec *errorCollector) criticalErrors() []FontError {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	critical := make([]FontError, 0)
	for _, err := range ec.errors {
		if err.Severity == SeverityCritical {
			critical = append(critical, err)
		}
	}
	return critical
}
