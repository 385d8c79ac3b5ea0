package sexp

import "bytes"

// ValueKind distinguishes the two variants of the object model (spec.md §3):
// a list of children, or a string value with an opaque payload and
// optional presentation hint.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindList
)

// Node is an S-expression value: either a string (Payload, with an
// optional Hint) or a list (Children). Exactly one of the two roles
// applies at a time, selected by Kind — mirroring alttpo-sexp's
// Kind-tagged Node, generalized with the hint field the original
// sexp_string/sexp_simple_string split requires.
type Node struct {
	Kind ValueKind

	// Hint is the optional presentation hint simple string; whether a
	// hint was given is recorded by HasHint, not by Hint being nil. Only
	// meaningful when Kind == KindString.
	Hint []byte
	// HasHint distinguishes an absent hint from a present-but-empty one.
	HasHint bool
	// Payload is the string's opaque byte payload. Only meaningful when
	// Kind == KindString.
	Payload []byte

	// Children holds the ordered list elements. Only meaningful when
	// Kind == KindList.
	Children []*Node
}

// NewString builds a string Node with no presentation hint.
func NewString(payload []byte) *Node {
	return &Node{Kind: KindString, Payload: payload}
}

// NewHintedString builds a string Node with a presentation hint.
func NewHintedString(hint, payload []byte) *Node {
	return &Node{Kind: KindString, Hint: hint, HasHint: true, Payload: payload}
}

// NewList builds a list Node from the given children; with no children,
// Children is an empty, non-nil slice.
func NewList(children ...*Node) *Node {
	if children == nil {
		children = make([]*Node, 0)
	}
	return &Node{Kind: KindList, Children: children}
}

// IsString reports whether n is a string value.
func (n *Node) IsString() bool { return n != nil && n.Kind == KindString }

// IsList reports whether n is a list value.
func (n *Node) IsList() bool { return n != nil && n.Kind == KindList }

// Append adds a child to a list node. Panics if n is not a list, the same
// contract violation class the original's push_back would hit on a
// mistyped sexp_object.
func (n *Node) Append(child *Node) {
	if n.Kind != KindList {
		panic("sexp: Append called on a non-list Node")
	}
	n.Children = append(n.Children, child)
}

// Equal reports deep, order-sensitive, byte-exact equality (spec.md
// §4.5): lists compare element-wise, strings compare hint-then-payload;
// a missing hint equals only another missing hint.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case KindString:
		if n.HasHint != other.HasHint {
			return false
		}
		if n.HasHint && !bytes.Equal(n.Hint, other.Hint) {
			return false
		}
		return bytes.Equal(n.Payload, other.Payload)
	case KindList:
		if len(n.Children) != len(other.Children) {
			return false
		}
		for i, c := range n.Children {
			if !c.Equal(other.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders n in advanced form with no column wrapping, useful for
// debugging and test failure messages (not a substitute for Serializer,
// which supports all three forms and wrapping).
func (n *Node) String() string {
	return string(renderAdvancedFlat(n))
}
