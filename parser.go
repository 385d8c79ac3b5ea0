package sexp

import "io"

// defaultMaxDepth bounds recursion so a hostile, deeply-nested input
// cannot exhaust the goroutine stack (spec.md §9 "Recursion depth").
const defaultMaxDepth = 1000

// ParserConfig configures a Parser. The zero value is the default
// configuration (spec.md's ambient-config convention, SPEC_FULL.md).
type ParserConfig struct {
	// MaxDepth bounds list/transport nesting. 0 selects defaultMaxDepth.
	MaxDepth int
}

// Parser implements the recursive-descent object grammar of spec.md §4.4:
//
//	object    := ws ( "{" transport "}" | list | string )
//	transport := object               -- "{" already switched to 6-bit mode
//	list      := "(" ws ( object ws )* ")"
//	string    := "[" simple "]" simple | simple
type Parser struct {
	in       *InputStream
	maxDepth int
}

// NewParser wraps r for a single top-level parse.
func NewParser(r io.Reader, cfg ParserConfig) *Parser {
	depth := cfg.MaxDepth
	if depth <= 0 {
		depth = defaultMaxDepth
	}
	return &Parser{in: NewInputStream(r), maxDepth: depth}
}

// Warnings returns the diagnostics collected so far on this parser's
// stream.
func (p *Parser) Warnings() *Warnings { return p.in.Warnings() }

// Parse reads and returns one S-expression object from the stream. Per
// spec.md's non-goals, only one top-level object is read; trailing bytes
// are left unconsumed.
//
// Bootstrapping requires an explicit GetChar to prime NextChar, because
// the InputStream constructor seeds it with a virtual space so that
// SkipWhitespace may safely be called first (spec.md §4.4).
func (p *Parser) Parse() (*Node, error) {
	if err := p.in.GetChar(); err != nil {
		return nil, err
	}
	return p.scanObject(0)
}

func (p *Parser) scanObject(depth int) (*Node, error) {
	if depth > p.maxDepth {
		return nil, fatalf(p.in.Count(), KindIllegalChar,
			"maximum nesting depth %d exceeded", p.maxDepth)
	}
	if err := p.in.SkipWhitespace(); err != nil {
		return nil, err
	}
	switch p.in.NextChar() {
	case '{':
		return p.scanTransport(depth)
	case '(':
		return p.scanList(depth)
	default:
		return p.scanString()
	}
}

// scanTransport handles the "{" <canonical-base64> "}" envelope: switch
// to 6-bit mode, skip '{', recurse (the parser now sees a decoded 8-bit
// view), require '}'. GetChar itself reverts to 8-bit mode the moment it
// surfaces the terminating '}', so by the time skipChar('}') runs the
// stream is already back in 8-bit mode (spec.md §9 "shift-register
// state").
func (p *Parser) scanTransport(depth int) (*Node, error) {
	p.in.SetByteSize(6)
	if err := p.in.skipChar('{'); err != nil {
		return nil, err
	}
	obj, err := p.scanObject(depth + 1)
	if err != nil {
		return nil, err
	}
	if err := p.in.skipChar('}'); err != nil {
		return nil, err
	}
	return obj, nil
}

// scanList requires '(', collects children until a matching ')',
// tolerating arbitrary whitespace between children; an empty list is
// allowed.
func (p *Parser) scanList(depth int) (*Node, error) {
	if err := p.in.skipChar('('); err != nil {
		return nil, err
	}
	list := NewList()
	for {
		if err := p.in.SkipWhitespace(); err != nil {
			return nil, err
		}
		if p.in.NextChar() == ')' {
			if err := p.in.skipChar(')'); err != nil {
				return nil, err
			}
			return list, nil
		}
		if p.in.NextChar() == eofChar {
			return nil, fatalf(p.in.Count(), KindUnexpectedEOF, "unexpected end of stream in list")
		}
		child, err := p.scanObject(depth + 1)
		if err != nil {
			return nil, err
		}
		list.Append(child)
	}
}

// scanString reads an optional "[" hint "]" followed by the payload
// simple string, or just the payload simple string. Either may be
// empty-with-warning (spec.md §4.5).
func (p *Parser) scanString() (*Node, error) {
	if p.in.NextChar() == '[' {
		if err := p.in.skipChar('['); err != nil {
			return nil, err
		}
		hint, err := p.in.ScanSimpleString()
		if err != nil {
			return nil, err
		}
		if err := p.in.SkipWhitespace(); err != nil {
			return nil, err
		}
		if err := p.in.skipChar(']'); err != nil {
			return nil, err
		}
		if err := p.in.SkipWhitespace(); err != nil {
			return nil, err
		}
		payload, err := p.in.ScanSimpleString()
		if err != nil {
			return nil, err
		}
		return NewHintedString(hint, payload), nil
	}

	payload, err := p.in.ScanSimpleString()
	if err != nil {
		return nil, err
	}
	return NewString(payload), nil
}
