package sexp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"equal strings", NewString([]byte("abc")), NewString([]byte("abc")), true},
		{"different payload", NewString([]byte("abc")), NewString([]byte("abd")), false},
		{"hint vs no hint", NewHintedString([]byte("rsa"), []byte("k")), NewString([]byte("k")), false},
		{"equal hinted", NewHintedString([]byte("rsa"), []byte("k")), NewHintedString([]byte("rsa"), []byte("k")), true},
		{"different hint", NewHintedString([]byte("rsa"), []byte("k")), NewHintedString([]byte("dsa"), []byte("k")), false},
		{"equal lists", NewList(NewString([]byte("a")), NewString([]byte("b"))), NewList(NewString([]byte("a")), NewString([]byte("b"))), true},
		{"different list length", NewList(NewString([]byte("a"))), NewList(NewString([]byte("a")), NewString([]byte("b"))), false},
		{"list vs string", NewList(), NewString(nil), false},
		{"empty lists", NewList(), NewList(), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Equal(tc.b))
		})
	}
}

func TestNodeAppendPanicsOnString(t *testing.T) {
	n := NewString([]byte("x"))
	require.Panics(t, func() { n.Append(NewString([]byte("y"))) })
}

func TestNodeListAppend(t *testing.T) {
	l := NewList()
	l.Append(NewString([]byte("a")))
	l.Append(NewString([]byte("b")))
	require.Len(t, l.Children, 2)
	require.True(t, l.Children[0].Equal(NewString([]byte("a"))))
}

func TestNodeStringDebugRendering(t *testing.T) {
	n := NewList(NewString([]byte("abc")), NewHintedString([]byte("h"), []byte("x")))
	require.Equal(t, `(abc [h]x)`, n.String())
}
