package sexp

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"io"
	"strconv"
)

// PrintConfig configures advanced-mode rendering (spec.md §4.7) and the
// optional line-wrapping of a transport envelope's base64 body.
type PrintConfig struct {
	// MaxColumn bounds line length for advanced-mode lists and
	// transport-mode base64 wrapping. <= 0 disables wrapping.
	MaxColumn int
	// IndentStep is the number of spaces per nesting level when a list
	// is wrapped. 0 selects a default of 2.
	IndentStep int
}

// Serializer writes a Node tree to an underlying io.Writer in one of the
// three forms of spec.md §4.7: canonical, advanced, transport.
type Serializer struct {
	out *OutputStream
}

// NewSerializer wraps w.
func NewSerializer(w io.Writer) *Serializer {
	return &Serializer{out: NewOutputStream(w)}
}

// PrintCanonical writes the unique whitespace-free canonical form: no
// whitespace anywhere, lengths exactly equal to their payloads.
func (s *Serializer) PrintCanonical(n *Node) error {
	if err := s.out.writeBytes(appendCanonical(nil, n)); err != nil {
		return err
	}
	return s.out.Flush()
}

// PrintAdvanced writes the human-readable advanced form, wrapping lists
// whose one-line rendering would exceed cfg.MaxColumn.
func (s *Serializer) PrintAdvanced(n *Node, cfg PrintConfig) error {
	s.out.SetMaxColumn(cfg.MaxColumn)
	if cfg.IndentStep > 0 {
		s.out.SetIndentStep(cfg.IndentStep)
	}
	if err := writeAdvanced(s.out, n, 0); err != nil {
		return err
	}
	return s.out.Flush()
}

// PrintTransport writes "{" base64(canonical) "}", optionally wrapping
// the base64 body at cfg.MaxColumn.
func (s *Serializer) PrintTransport(n *Node, cfg PrintConfig) error {
	canon := appendCanonical(nil, n)
	if err := s.out.writeByte('{'); err != nil {
		return err
	}
	wrap := cfg.MaxColumn > 0
	lineStart := s.out.Column()
	for _, b := range canon {
		if err := s.out.WriteBase64Byte(b); err != nil {
			return err
		}
		if wrap && s.out.Column()-lineStart >= cfg.MaxColumn {
			if err := s.out.NewLine(); err != nil {
				return err
			}
			lineStart = s.out.Column()
		}
	}
	if err := s.out.FlushBase64(); err != nil {
		return err
	}
	if err := s.out.writeByte('}'); err != nil {
		return err
	}
	return s.out.Flush()
}

// --- canonical form ---------------------------------------------------

func appendCanonical(buf []byte, n *Node) []byte {
	switch n.Kind {
	case KindString:
		if n.HasHint {
			buf = append(buf, '[')
			buf = appendCanonicalSimple(buf, n.Hint)
			buf = append(buf, ']')
		}
		return appendCanonicalSimple(buf, n.Payload)
	case KindList:
		buf = append(buf, '(')
		for _, c := range n.Children {
			buf = appendCanonical(buf, c)
		}
		return append(buf, ')')
	default:
		return buf
	}
}

func appendCanonicalSimple(buf []byte, payload []byte) []byte {
	buf = strconv.AppendInt(buf, int64(len(payload)), 10)
	buf = append(buf, ':')
	return append(buf, payload...)
}

// --- advanced form ------------------------------------------------------

// renderAdvancedFlat renders n on a single line with no indentation; used
// both to measure whether a list fits within MaxColumn and by Node.String
// for debug output.
func renderAdvancedFlat(n *Node) []byte {
	return appendAdvancedFlat(nil, n)
}

func appendAdvancedFlat(buf []byte, n *Node) []byte {
	switch n.Kind {
	case KindString:
		if n.HasHint {
			buf = append(buf, '[')
			buf = appendAdvancedLiteral(buf, n.Hint)
			buf = append(buf, ']')
		}
		return appendAdvancedLiteral(buf, n.Payload)
	case KindList:
		buf = append(buf, '(')
		for i, c := range n.Children {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = appendAdvancedFlat(buf, c)
		}
		return append(buf, ')')
	default:
		return buf
	}
}

// writeAdvanced writes n at the given indent depth, wrapping a list onto
// multiple lines only when its flat rendering would not fit in the
// remaining columns (spec.md §4.7).
func writeAdvanced(o *OutputStream, n *Node, depth int) error {
	if n.Kind == KindString {
		if n.HasHint {
			if err := o.writeByte('['); err != nil {
				return err
			}
			if err := o.writeBytes(appendAdvancedLiteral(nil, n.Hint)); err != nil {
				return err
			}
			if err := o.writeByte(']'); err != nil {
				return err
			}
		}
		return o.writeBytes(appendAdvancedLiteral(nil, n.Payload))
	}

	flat := renderAdvancedFlat(n)
	if o.MaxColumn() <= 0 || o.Column()+len(flat) <= o.MaxColumn() {
		return o.writeBytes(flat)
	}

	if err := o.writeByte('('); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := o.NewLine(); err != nil {
			return err
		}
		if err := o.WriteIndent(depth + 1); err != nil {
			return err
		}
		if err := writeAdvanced(o, c, depth+1); err != nil {
			return err
		}
	}
	if err := o.NewLine(); err != nil {
		return err
	}
	if err := o.WriteIndent(depth); err != nil {
		return err
	}
	return o.writeByte(')')
}

// appendAdvancedLiteral chooses a human-readable rendering for payload
// (spec.md §4.7): a bare token when eligible; otherwise whichever of
// quoted/hex/base64 is shortest, ties broken in that order.
func appendAdvancedLiteral(buf []byte, payload []byte) []byte {
	if isBareTokenEligible(payload) {
		return append(buf, payload...)
	}

	quoted := appendQuotedLiteral(nil, payload)
	best := quoted
	if hexLit := appendHexLiteral(nil, payload); len(hexLit) < len(best) {
		best = hexLit
	}
	if b64Lit := appendBase64Literal(nil, payload); len(b64Lit) < len(best) {
		best = b64Lit
	}
	return append(buf, best...)
}

func isBareTokenEligible(payload []byte) bool {
	if len(payload) == 0 {
		return false
	}
	if isDecDigit(payload[0]) {
		return false
	}
	for _, b := range payload {
		if !isTokenChar(b) {
			return false
		}
	}
	return true
}

const hexLowerDigits = "0123456789abcdef"

func appendQuotedLiteral(buf []byte, payload []byte) []byte {
	buf = append(buf, '"')
	for _, b := range payload {
		switch b {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\v':
			buf = append(buf, '\\', 'v')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\b':
			buf = append(buf, '\\', 'b')
		default:
			if isPrintable(b) {
				buf = append(buf, b)
			} else {
				buf = append(buf, '\\', 'x', hexLowerDigits[b>>4], hexLowerDigits[b&0xF])
			}
		}
	}
	return append(buf, '"')
}

func appendHexLiteral(buf []byte, payload []byte) []byte {
	buf = append(buf, '#')
	dst := make([]byte, hex.EncodedLen(len(payload)))
	hex.Encode(dst, payload)
	buf = append(buf, dst...)
	return append(buf, '#')
}

func appendBase64Literal(buf []byte, payload []byte) []byte {
	buf = append(buf, '|')
	buf = append(buf, []byte(base64.StdEncoding.EncodeToString(payload))...)
	return append(buf, '|')
}

// --- top-level, non-streaming helpers (api.go builds on these) --------

// EmitCanonical renders n in canonical form.
func EmitCanonical(n *Node) []byte { return appendCanonical(nil, n) }

// EmitAdvanced renders n in advanced form, honoring cfg.MaxColumn.
func EmitAdvanced(n *Node, cfg PrintConfig) []byte {
	var buf bytes.Buffer
	s := NewSerializer(&buf)
	_ = s.PrintAdvanced(n, cfg)
	return buf.Bytes()
}

// EmitTransport renders n as a transport envelope.
func EmitTransport(n *Node, cfg PrintConfig) []byte {
	var buf bytes.Buffer
	s := NewSerializer(&buf)
	_ = s.PrintTransport(n, cfg)
	return buf.Bytes()
}
