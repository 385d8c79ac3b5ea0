package sexp

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind enumerates the error taxonomy of spec.md §7. It is not itself an
// error type; it labels a Diagnostic.
type Kind uint8

const (
	// KindUnexpectedEOF: end of input during any scanner, or an octal or
	// hex escape in a quoted string with too few digits. Fatal.
	KindUnexpectedEOF Kind = iota
	// KindIllegalChar: a byte that cannot start any simple string, a
	// missing delimiter after a decimal length, an octal escape above 255,
	// or nesting deeper than ParserConfig.MaxDepth. Fatal.
	KindIllegalChar
	// KindMisdeclaredLength: declared length != actual bytes. Fatal for
	// quoted strings, warning for hex/base64. A verbatim string always
	// takes exactly its declared number of bytes, so it never raises this
	// kind: input that ends first fails with KindUnexpectedEOF, and bytes
	// beyond the declared length are scanned as whatever follows.
	KindMisdeclaredLength
	// KindFramingError: invalid digit inside a 4- or 6-bit region. Fatal.
	KindFramingError
	// KindResidualBits: a framed region ended with unused shift-register
	// bits. Warning.
	KindResidualBits
	// KindUnknownEscape: unrecognized "\x" inside a quoted string. Warning.
	KindUnknownEscape
	// KindOverlongDecimal: length prefix exceeds 9 digits. Fatal.
	KindOverlongDecimal
	// KindZeroLengthString: a simple string scanned to zero bytes. Warning.
	KindZeroLengthString
	// KindExpectedChar: a specific character was required but not found
	// (skipChar mismatch). Fatal.
	KindExpectedChar
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "unexpected end of stream"
	case KindIllegalChar:
		return "illegal character"
	case KindMisdeclaredLength:
		return "mis-declared length"
	case KindFramingError:
		return "framing error"
	case KindResidualBits:
		return "residual bits"
	case KindUnknownEscape:
		return "unknown escape"
	case KindOverlongDecimal:
		return "overlong decimal"
	case KindZeroLengthString:
		return "zero-length simple string"
	case KindExpectedChar:
		return "expected character"
	default:
		return "unknown diagnostic"
	}
}

// Severity distinguishes a diagnostic that aborts parsing from one that
// is merely collected.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is the typed value carried by both warnings and fatal parse
// errors (spec.md §7/§8). Position is the InputStream's count at the time
// the diagnostic was raised.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Message  string
	Position int64
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at byte %d: %s (%s)", d.Severity, d.Position, d.Message, d.Kind)
}

func newDiagnostic(sev Severity, kind Kind, pos int64, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Severity: sev,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
	}
}

// ParseError wraps a fatal Diagnostic as the error returned by a failed
// parse. It implements Unwrap so callers may errors.As into *Diagnostic,
// and errors.Cause (pkg/errors) recovers it through any later wrapping.
type ParseError struct {
	*Diagnostic
}

func (e *ParseError) Error() string { return e.Diagnostic.Error() }
func (e *ParseError) Unwrap() error { return e.Diagnostic }
func (e *ParseError) Cause() error  { return e.Diagnostic }

func fatalf(pos int64, kind Kind, format string, args ...interface{}) error {
	return &ParseError{Diagnostic: newDiagnostic(SeverityError, kind, pos, format, args...)}
}

// Warnings collects non-fatal diagnostics raised during a single parse.
// Warnings are data, not log lines (spec.md §9 "Warnings as data"):
// nothing in this package writes to stderr or any global stream.
type Warnings struct {
	items []*Diagnostic
}

func (w *Warnings) add(kind Kind, pos int64, format string, args ...interface{}) {
	w.items = append(w.items, newDiagnostic(SeverityWarning, kind, pos, format, args...))
}

// List returns the collected warnings in the order they were raised.
func (w *Warnings) List() []*Diagnostic {
	return w.items
}

// Len reports how many warnings were collected.
func (w *Warnings) Len() int { return len(w.items) }

// WrapParse attaches call-site context to a parse error while preserving
// the underlying *Diagnostic for errors.As/errors.Cause. The CLI uses
// this at its single top-level boundary (DESIGN.md, errors.go ledger).
func WrapParse(err error, context string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, context)
}
