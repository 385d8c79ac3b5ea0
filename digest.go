package sexp

import "lukechampine.com/blake3"

// Digest returns the BLAKE3-256 hash of n's canonical form — a
// content-addressing helper for tooling that already keys storage by a
// hash of exact bytes (grounded on onflow-atree's blake3 regression
// tests over serialized slab bytes, DESIGN.md). Canonical form is the
// unique byte-exact encoding (spec.md §4.7), so this is well-defined
// independent of how the tree was originally expressed.
func Digest(n *Node) [32]byte {
	return blake3.Sum256(appendCanonical(nil, n))
}
