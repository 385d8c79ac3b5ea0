package sexp

import (
	"bufio"
	"io"
)

// OutputStream is a byte-sink adapter with column tracking and a
// cooperative line-break facility the Serializer calls at syntactically
// safe points (spec.md §4.6). Holds a base64 shift register, the output
// mirror of InputStream's decode register, for transport mode.
type OutputStream struct {
	w *bufio.Writer

	column     int
	maxColumn  int // <= 0 disables wrapping
	indentStep int

	b64bits  uint32
	b64nbits uint
}

// NewOutputStream wraps w with the default (unlimited) column width and
// a two-space indent step, matching canonical/transport mode's "no
// wrapping" requirement; advanced-mode callers set MaxColumn explicitly.
func NewOutputStream(w io.Writer) *OutputStream {
	return &OutputStream{w: bufio.NewWriter(w), indentStep: 2}
}

// SetMaxColumn sets the wrap width; n <= 0 disables wrapping. Returns o
// for chaining.
func (o *OutputStream) SetMaxColumn(n int) *OutputStream {
	o.maxColumn = n
	return o
}

// SetIndentStep sets the number of spaces per nesting level used by
// WriteIndent. Returns o for chaining.
func (o *OutputStream) SetIndentStep(n int) *OutputStream {
	o.indentStep = n
	return o
}

// MaxColumn reports the configured wrap width.
func (o *OutputStream) MaxColumn() int { return o.maxColumn }

// Column reports the current output column (0-based, reset on LF).
func (o *OutputStream) Column() int { return o.column }

func (o *OutputStream) writeByte(b byte) error {
	if err := o.w.WriteByte(b); err != nil {
		return err
	}
	if b == '\n' {
		o.column = 0
	} else {
		o.column++
	}
	return nil
}

func (o *OutputStream) writeBytes(bs []byte) error {
	for _, b := range bs {
		if err := o.writeByte(b); err != nil {
			return err
		}
	}
	return nil
}

func (o *OutputStream) writeString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := o.writeByte(s[i]); err != nil {
			return err
		}
	}
	return nil
}

// NewLine writes a bare LF.
func (o *OutputStream) NewLine() error { return o.writeByte('\n') }

// WriteIndent writes depth*indentStep spaces.
func (o *OutputStream) WriteIndent(depth int) error {
	n := depth * o.indentStep
	for i := 0; i < n; i++ {
		if err := o.writeByte(' '); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying writer.
func (o *OutputStream) Flush() error { return o.w.Flush() }

// WriteBase64Byte feeds one logical 8-bit byte into the transport
// base64 encoder, emitting 6-bit groups as they fill — the output-side
// mirror of InputStream.GetChar's 6-bit decode register.
func (o *OutputStream) WriteBase64Byte(b byte) error {
	o.b64bits = (o.b64bits << 8) | uint32(b)
	o.b64nbits += 8
	for o.b64nbits >= 6 {
		idx := (o.b64bits >> (o.b64nbits - 6)) & 0x3F
		if err := o.writeByte(base64Alphabet[idx]); err != nil {
			return err
		}
		o.b64nbits -= 6
	}
	return nil
}

// FlushBase64 emits any final partial 6-bit group (zero-padded on the
// right) and the standard '=' padding out to a 4-character boundary,
// matching encoding/base64.StdEncoding — the transport envelope's
// decoder tolerates both padded and unpadded input since it ignores
// '=' entirely (spec.md §4.2), but the encoder emits the padded form.
func (o *OutputStream) FlushBase64() error {
	if o.b64nbits == 0 {
		return nil
	}
	idx := (o.b64bits << (6 - o.b64nbits)) & 0x3F
	padding := 2
	if o.b64nbits == 4 {
		padding = 1
	}
	o.b64nbits = 0
	o.b64bits = 0
	if err := o.writeByte(base64Alphabet[idx]); err != nil {
		return err
	}
	for i := 0; i < padding; i++ {
		if err := o.writeByte('='); err != nil {
			return err
		}
	}
	return nil
}
