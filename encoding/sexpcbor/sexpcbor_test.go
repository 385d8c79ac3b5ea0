package sexpcbor

import (
	"testing"

	"github.com/stretchr/testify/require"

	sexp "github.com/ribose-labs/go-sexp"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	tests := []*sexp.Node{
		sexp.NewString([]byte("abc")),
		sexp.NewHintedString([]byte("rsa"), []byte("abcd")),
		sexp.NewList(),
		sexp.NewList(sexp.NewString([]byte("foo")), sexp.NewList(sexp.NewString([]byte("bar")))),
	}
	for _, n := range tests {
		data, err := Marshal(n)
		require.NoError(t, err)

		got, err := Unmarshal(data)
		require.NoError(t, err)
		require.True(t, n.Equal(got), "round trip mismatch: want %s, got %s", n, got)
	}
}
