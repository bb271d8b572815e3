// Package dsu implements the union-find algorithm shared by both variants:
// iterative find with full path compression, and union by rank.
package dsu

// add registers x as a fresh singleton: its own parent, rank 0.
// Callers must ensure x is not already registered.
func (f *forest[T]) add(x T) {
	f.parent[x] = x
	f.rank[x] = 0
}

// resolve applies the forest's registration policy to x.
// Under policyRegister an unseen x becomes a new singleton; under
// policyStrict it is an ErrUnknownElement. Registered elements always pass.
func (f *forest[T]) resolve(x T) error {
	if _, ok := f.parent[x]; ok {
		return nil
	}
	if f.policy == policyRegister {
		f.add(x)
		return nil
	}

	return ErrUnknownElement
}

// findRoot returns the root of the tree containing x, compressing the path:
// every node visited on the way up is repointed directly to the root.
// Precondition: x is registered.
//
// Compression is a pure optimization — it rewrites parent pointers but never
// changes which root represents the set, and never touches rank.
// Amortized near O(1) per call (inverse Ackermann) given union by rank.
func (f *forest[T]) findRoot(x T) T {
	// Walk up to the root without modifying anything.
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// Second pass: repoint every node on the path straight at the root.
	for f.parent[x] != root {
		x, f.parent[x] = f.parent[x], root
	}

	return root
}

// find resolves x per the registration policy, then returns its root.
func (f *forest[T]) find(x T) (T, error) {
	if err := f.resolve(x); err != nil {
		var zero T
		return zero, err
	}

	return f.findRoot(x), nil
}

// union merges the sets containing x and y, attaching the lower-rank root
// under the higher-rank one. On a rank tie the root of x survives and its
// rank grows by one. Reports whether a merge happened: false means x and y
// were already in the same set (including x == y).
func (f *forest[T]) union(x, y T) (bool, error) {
	if err := f.resolve(x); err != nil {
		return false, err
	}
	if err := f.resolve(y); err != nil {
		return false, err
	}

	rx, ry := f.findRoot(x), f.findRoot(y)
	if rx == ry {
		// Already in the same set; no action needed.
		return false, nil
	}

	// Attach smaller-rank tree under larger-rank root.
	if f.rank[rx] < f.rank[ry] {
		f.parent[rx] = ry
	} else {
		f.parent[ry] = rx
		// If ranks are equal, increment the resulting root's rank by 1.
		if f.rank[rx] == f.rank[ry] {
			f.rank[rx]++
		}
	}

	return true, nil
}

// connected reports whether x and y currently share a root.
func (f *forest[T]) connected(x, y T) (bool, error) {
	rx, err := f.find(x)
	if err != nil {
		return false, err
	}
	ry, err := f.find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Components returns the current partition as a mapping from each root to
// the set of all elements it represents. Never-unioned elements each form a
// one-element component.
//
// Every element is re-resolved through find, so the result reflects the true
// partition even when parent chains have not been compressed yet.
// Complexity: O(n·α(n)) time, O(n) memory.
func (f *forest[T]) Components() map[T]map[T]struct{} {
	comps := make(map[T]map[T]struct{})
	for x := range f.parent {
		root := f.findRoot(x)
		set, ok := comps[root]
		if !ok {
			set = make(map[T]struct{})
			comps[root] = set
		}
		set[x] = struct{}{}
	}

	return comps
}

// Sets is an alias for Components.
func (f *forest[T]) Sets() map[T]map[T]struct{} {
	return f.Components()
}

// ComponentSizes returns a mapping from each root to the number of elements
// in its component. Complexity: O(n·α(n)).
func (f *forest[T]) ComponentSizes() map[T]int {
	sizes := make(map[T]int)
	for x := range f.parent {
		sizes[f.findRoot(x)]++
	}

	return sizes
}

// SetSizes is an alias for ComponentSizes.
func (f *forest[T]) SetSizes() map[T]int {
	return f.ComponentSizes()
}

// Clear empties the structure entirely. Afterward it behaves as freshly
// constructed: a dynamic set is empty, and a static set has forgotten its
// universe — previously valid elements fail with ErrUnknownElement until a
// new set is built. This is a full reset, not a re-seed.
func (f *forest[T]) Clear() {
	f.parent = make(map[T]T)
	f.rank = make(map[T]int)
}

// Len returns the number of currently registered elements.
func (f *forest[T]) Len() int {
	return len(f.parent)
}

// ParentOf exposes the raw parent pointer of x for introspection and
// testing, and reports whether x is registered. Note that the pointer may be
// stale (not the root) until a find compresses the path through x.
func (f *forest[T]) ParentOf(x T) (T, bool) {
	p, ok := f.parent[x]
	return p, ok
}

// RankOf exposes the rank of x for introspection and testing, and reports
// whether x is registered.
func (f *forest[T]) RankOf(x T) (int, bool) {
	r, ok := f.rank[x]
	return r, ok
}
