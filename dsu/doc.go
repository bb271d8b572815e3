// Package dsu provides two battle-tested disjoint-set (union-find) structures
// over an arbitrary comparable element type: StaticDisjointSet, which operates
// on a fixed universe declared at construction, and DynamicDisjointSet, which
// admits new elements lazily on first reference.
//
// What & Why
//
//   - What is a disjoint set?
//     A structure maintaining a partition of a universe into non-overlapping
//     sets, supporting two operations: merge the sets containing two elements
//     (union) and ask whether two elements share a set (find / connected).
//
//   - Why disjoint sets matter:
//
//   - Connectivity: incremental "are these connected yet?" queries while edges
//     stream in (Kruskal's MST, network reachability, percolation).
//
//   - Clustering: group grid cells, accounts, or records by pairwise relations
//     without ever materializing the full relation graph.
//
//   - Equivalence closure: union is exactly "declare these equivalent"; the
//     structure maintains the transitive closure for free.
//
// Structures Provided
//
//   - StaticDisjointSet[T] — NewStatic(elements)
//
//   - Universe fixed at construction; every element starts as its own
//     singleton. Referencing an element outside the universe fails with
//     ErrUnknownElement. Use when the element set is known up front and a
//     typo'd key should be an error, not a fresh set.
//
//   - DynamicDisjointSet[T] — NewDynamic() / NewDynamicFromRelations(pairs)
//
//   - Starts empty (or seeded by unioning relation pairs); any Find, Union or
//     Connected call transparently registers unseen elements as singletons.
//     Never fails. Use when elements are discovered while processing input.
//
// Both variants share one core: iterative find with full path compression
// (every node on the walked path is repointed directly to the root) and union
// by rank (the shallower tree is attached under the deeper root). Together the
// two heuristics give amortized near-O(1) — inverse-Ackermann — cost per
// operation.
//
// Note on mutation: Find is semantically a read-only query, but path
// compression rewrites parent pointers as a side effect. The logical partition
// never changes; only the tree's internal shape does. Callers sharing a set
// across goroutines must serialize all calls themselves — no locking is
// provided (see the concurrency note on the forest type).
//
// Error Conditions
//
//	Only the static variant can fail:
//
//	- ErrUnknownElement
//	    - Find/Union/Connected referenced an element absent from the universe
//	      declared at construction (or the set was cleared, which forgets the
//	      universe entirely).
package dsu
