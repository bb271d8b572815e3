package dsu

// StaticDisjointSet is a union-find structure over a fixed universe of
// elements declared at construction. Referencing any element outside that
// universe fails with ErrUnknownElement — the static variant never
// auto-registers.
//
// The shared queries (Components, ComponentSizes, Clear, Len, ParentOf,
// RankOf and their aliases) are promoted from the embedded core.
type StaticDisjointSet[T comparable] struct {
	forest[T]
}

// NewStatic constructs a StaticDisjointSet whose universe is exactly the
// given elements, each registered as its own singleton set. Duplicate
// elements are registered once. Complexity: O(len(elements)).
func NewStatic[T comparable](elements []T) *StaticDisjointSet[T] {
	s := &StaticDisjointSet[T]{forest: newForest[T](policyStrict)}
	for _, x := range elements {
		if _, ok := s.parent[x]; !ok {
			s.add(x)
		}
	}

	return s
}

// Find returns the representative (root) of the set containing x.
// Idempotent: repeated calls with no intervening unions return the same
// root. Mutates internal parent pointers via path compression, but never
// the logical partition. Returns ErrUnknownElement if x is outside the
// universe. Amortized near O(1).
func (s *StaticDisjointSet[T]) Find(x T) (T, error) {
	return s.find(x)
}

// Union merges the sets containing x and y. Reports whether a merge
// happened: false means the two were already in the same set (including
// x == y). Returns ErrUnknownElement, with no state mutated, if either
// element is outside the universe. Amortized near O(1).
func (s *StaticDisjointSet[T]) Union(x, y T) (bool, error) {
	return s.union(x, y)
}

// Connected reports whether x and y are currently in the same set.
// Returns ErrUnknownElement if either element is outside the universe.
// Amortized near O(1).
func (s *StaticDisjointSet[T]) Connected(x, y T) (bool, error) {
	return s.connected(x, y)
}
