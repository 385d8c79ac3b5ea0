// Ron Rivest's canonical S-expression format, 2024-03-02
//
// Package sexp reads and writes Rivest's canonical S-expression (CSEXP)
// format and its two human-friendly siblings: the advanced textual form
// (tokens, quoted/hex/base64 string literals, optional presentation
// hints) and the transport form (canonical form wrapped in a base64
// envelope).
//
// The parser operates over an InputStream that can switch on the fly
// between 8-bit, 6-bit (base64) and 4-bit (hex) logical byte widths,
// re-assembling whole bytes out of sub-byte digits as it goes. The
// matching Serializer writes any of the three forms back out; canonical
// output is the unique byte-exact normal form required by signed key
// material and similar security-sensitive blobs.
package sexp // import "github.com/ribose-labs/go-sexp"
