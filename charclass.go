package sexp

// base64Alphabet is the RFC 4648 standard alphabet; used both to build
// the digit-value table below and, in outputstream.go, to encode.
const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Character classification tables, precomputed once at init time, the
// same shape as the decvalue/hexvalue/base64value tables in the original
// sexp-input.c: indexed by raw byte, not scanned character-by-character
// with conditionals.

var (
	whitespaceTable [256]bool
	decDigitTable   [256]bool
	decValueTable   [256]int
	hexDigitTable   [256]bool
	hexValueTable   [256]int
	b64DigitTable   [256]bool
	b64ValueTable   [256]int
	tokenStartTable [256]bool
	tokenContTable  [256]bool
	printableTable  [256]bool
)

func init() {
	for _, b := range []byte{' ', '\t', '\v', '\f', '\n', '\r'} {
		whitespaceTable[b] = true
	}

	for b := byte('0'); b <= '9'; b++ {
		decDigitTable[b] = true
		decValueTable[b] = int(b - '0')
	}

	for b := byte('0'); b <= '9'; b++ {
		hexDigitTable[b] = true
		hexValueTable[b] = int(b - '0')
	}
	for b := byte('a'); b <= 'f'; b++ {
		hexDigitTable[b] = true
		hexValueTable[b] = int(b-'a') + 10
	}
	for b := byte('A'); b <= 'F'; b++ {
		hexDigitTable[b] = true
		hexValueTable[b] = int(b-'A') + 10
	}

	for i := 0; i < len(base64Alphabet); i++ {
		b := base64Alphabet[i]
		b64DigitTable[b] = true
		b64ValueTable[b] = i
	}

	for b := byte('A'); b <= 'Z'; b++ {
		tokenStartTable[b] = true
		tokenContTable[b] = true
	}
	for b := byte('a'); b <= 'z'; b++ {
		tokenStartTable[b] = true
		tokenContTable[b] = true
	}
	for _, b := range []byte("-./_:*+=") {
		tokenStartTable[b] = true
		tokenContTable[b] = true
	}
	// tokens may not start with a decimal digit; the scanner enforces this
	// at dispatch time (spec §9), but a digit is still a valid *interior*
	// token character.
	for b := byte('0'); b <= '9'; b++ {
		tokenContTable[b] = true
	}

	for b := 0x20; b < 0x7f; b++ {
		printableTable[b] = true
	}
}

func isWhitespace(b byte) bool { return whitespaceTable[b] }
func isDecDigit(b byte) bool   { return decDigitTable[b] }
func decValue(b byte) int      { return decValueTable[b] }
func isHexDigit(b byte) bool   { return hexDigitTable[b] }
func hexValue(b byte) int      { return hexValueTable[b] }
func isBase64Digit(b byte) bool { return b64DigitTable[b] }
func base64Value(b byte) int    { return b64ValueTable[b] }
func isTokenStart(b byte) bool  { return tokenStartTable[b] }
func isTokenChar(b byte) bool   { return tokenContTable[b] }
func isPrintable(b byte) bool   { return printableTable[b] }
