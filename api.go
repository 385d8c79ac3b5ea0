package sexp

import (
	"bytes"
	"io"
)

// Parse reads one top-level S-expression object from r. The object may
// be in canonical, advanced, or transport form — the grammar dispatches
// on the leading byte, so no mode needs to be selected up front. The
// returned Warnings holds every non-fatal diagnostic collected along the
// way (spec.md §9 "warnings as data").
func Parse(r io.Reader, cfg ParserConfig) (*Node, *Warnings, error) {
	p := NewParser(r, cfg)
	n, err := p.Parse()
	if err != nil {
		return nil, p.Warnings(), err
	}
	return n, p.Warnings(), nil
}

// ParseBytes is Parse over an in-memory buffer.
func ParseBytes(data []byte, cfg ParserConfig) (*Node, *Warnings, error) {
	return Parse(bytes.NewReader(data), cfg)
}

// MustParse parses data with the default configuration and panics on any
// error, mirroring the Must-prefixed convenience constructors of
// alttpo-sexp's producer API. Intended for tests and trusted literals,
// not untrusted input.
func MustParse(data []byte) *Node {
	n, _, err := ParseBytes(data, ParserConfig{})
	if err != nil {
		panic(err)
	}
	return n
}

// Valid reports whether data parses as a well-formed S-expression object
// in any of the three forms, discarding the resulting tree.
func Valid(data []byte) bool {
	_, _, err := ParseBytes(data, ParserConfig{})
	return err == nil
}

// ParseRemainder treats the entirety of r (after leading whitespace) as
// one verbatim string payload, the same "test utility path" the original
// sexp_input_stream::scan_to_eof exposes (spec.md §4.3,
// SPEC_FULL.md "SUPPLEMENTED FEATURES" item 2).
func ParseRemainder(r io.Reader) (*Node, *Warnings, error) {
	in := NewInputStream(r)
	if err := in.GetChar(); err != nil {
		return nil, in.Warnings(), err
	}
	payload, err := in.scanToEOF()
	if err != nil {
		return nil, in.Warnings(), err
	}
	return NewString(payload), in.Warnings(), nil
}
