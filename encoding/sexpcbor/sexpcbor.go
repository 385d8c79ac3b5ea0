// Package sexpcbor is a companion binary codec for *sexp.Node trees,
// letting tooling that already speaks CBOR (as onflow-atree's storage
// layer does for its slabs) interchange parsed S-expressions without
// round-tripping through any of the three CSEXP text forms. It has no
// bearing on spec.md's canonical/advanced/transport forms; it is a
// supplementary interop path (SPEC_FULL.md "DOMAIN STACK").
package sexpcbor

import (
	"github.com/fxamacker/cbor/v2"

	sexp "github.com/ribose-labs/go-sexp"
)

// wireNode mirrors sexp.Node's tagged-union shape as a positional CBOR
// array, matching the ",toarray" compact-encoding idiom onflow-atree uses
// for its extra-data structs.
type wireNode struct {
	_        struct{} `cbor:",toarray"`
	Kind     uint8
	HasHint  bool
	Hint     []byte
	Payload  []byte
	Children []wireNode
}

func toWire(n *sexp.Node) wireNode {
	w := wireNode{Kind: uint8(n.Kind)}
	if n.IsList() {
		w.Children = make([]wireNode, len(n.Children))
		for i, c := range n.Children {
			w.Children[i] = toWire(c)
		}
		return w
	}
	w.HasHint = n.HasHint
	w.Hint = n.Hint
	w.Payload = n.Payload
	return w
}

func fromWire(w wireNode) *sexp.Node {
	if sexp.ValueKind(w.Kind) == sexp.KindList {
		children := make([]*sexp.Node, len(w.Children))
		for i, c := range w.Children {
			children[i] = fromWire(c)
		}
		return sexp.NewList(children...)
	}
	if w.HasHint {
		return sexp.NewHintedString(w.Hint, w.Payload)
	}
	return sexp.NewString(w.Payload)
}

// Marshal encodes n as CBOR.
func Marshal(n *sexp.Node) ([]byte, error) {
	return cbor.Marshal(toWire(n))
}

// Unmarshal decodes CBOR data produced by Marshal back into a Node tree.
func Unmarshal(data []byte) (*sexp.Node, error) {
	var w wireNode
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return fromWire(w), nil
}
