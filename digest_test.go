package sexp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigestIsStableAndContentAddressed(t *testing.T) {
	a := mustParseString(t, "(3:foo3:bar)")
	b := mustParseString(t, "(foo bar)") // same tree, different source form
	c := mustParseString(t, "(3:foo3:baz)")

	require.Equal(t, Digest(a), Digest(b))
	require.NotEqual(t, Digest(a), Digest(c))
}

func TestDigestIsThirtyTwoBytes(t *testing.T) {
	n := NewString([]byte("x"))
	d := Digest(n)
	require.Len(t, d, 32)
}
