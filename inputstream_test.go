package sexp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func primed(t *testing.T, s string) *InputStream {
	t.Helper()
	in := NewInputStream(strings.NewReader(s))
	require.NoError(t, in.GetChar())
	return in
}

func TestInputStreamPlain8Bit(t *testing.T) {
	in := primed(t, "abc")
	var got []byte
	for in.NextChar() != eofChar {
		got = append(got, byte(in.NextChar()))
		require.NoError(t, in.GetChar())
	}
	require.Equal(t, []byte("abc"), got)
}

func TestInputStreamHexDecoding(t *testing.T) {
	in := primed(t, "#616263#")
	got, err := in.scanHexadecimal(-1)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)
	require.Equal(t, 8, in.ByteSize())
}

func TestInputStreamBase64Decoding(t *testing.T) {
	in := primed(t, "|YWJj|")
	got, err := in.scanBase64(-1)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)
	require.Equal(t, 8, in.ByteSize())
}

func TestInputStreamBase64IgnoresWhitespaceAndPadding(t *testing.T) {
	in := primed(t, "|YW Jj=|")
	got, err := in.scanBase64(-1)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)
}

func TestInputStreamFramingErrorOnBadDigit(t *testing.T) {
	in := primed(t, "#!!!#")
	_, err := in.scanHexadecimal(-1)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, KindFramingError, pe.Kind)
}

func TestInputStreamSkipWhitespace(t *testing.T) {
	in := primed(t, "   x")
	require.NoError(t, in.SkipWhitespace())
	require.Equal(t, int('x'), in.NextChar())
}

func TestInputStreamResidualBitsWarning(t *testing.T) {
	// A lone base64 digit contributes 6 bits; closing the region right
	// after leaves residual bits since 6 does not divide evenly into 8.
	in := primed(t, "|Y|")
	_, err := in.scanBase64(-1)
	require.NoError(t, err)
	require.Equal(t, 1, in.Warnings().Len())
	require.Equal(t, KindResidualBits, in.Warnings().List()[0].Kind)
}
