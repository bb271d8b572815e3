// Package dsu defines the shared union-find state and sentinel errors for
// both disjoint-set variants.
package dsu

import (
	"errors"
)

// ErrUnknownElement indicates that a static disjoint set was asked about an
// element that was never registered at construction. The dynamic variant
// never returns it.
var ErrUnknownElement = errors.New("dsu: unknown element")

// resolvePolicy selects how the shared core treats an element it has not
// seen before: reject it (static) or register it as a fresh singleton
// (dynamic).
type resolvePolicy int

const (
	// policyStrict rejects unregistered elements with ErrUnknownElement.
	policyStrict resolvePolicy = iota
	// policyRegister silently registers unregistered elements as singletons.
	policyRegister
)

// forest is the union-find core shared by StaticDisjointSet and
// DynamicDisjointSet. The two variants differ only in the policy applied
// when an operation references an unseen element.
//
// Invariants:
//   - parent[x] == x iff x is a root.
//   - every key of parent is a key of rank (rank 0 at registration).
//   - following parent links from any key terminates at a root.
//
// rank[r] is an upper bound on the height of the tree rooted at r, used only
// as a merge heuristic; path compression flattens trees without touching it.
//
// Not safe for concurrent use: find's path compression and union's root
// attachment both mutate the maps. Callers must serialize access externally.
type forest[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	policy resolvePolicy
}

// newForest returns an empty forest with the given resolution policy.
func newForest[T comparable](policy resolvePolicy) forest[T] {
	return forest[T]{
		parent: make(map[T]T),
		rank:   make(map[T]int),
		policy: policy,
	}
}
