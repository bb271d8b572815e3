package dsu

// DynamicDisjointSet is a union-find structure that starts empty and
// registers elements lazily: any Find, Union or Connected call referencing
// an unseen element first adds it as a new singleton set. No operation on
// the dynamic variant can fail.
//
// The shared queries (Components, ComponentSizes, Clear, Len, ParentOf,
// RankOf and their aliases) are promoted from the embedded core.
type DynamicDisjointSet[T comparable] struct {
	forest[T]
}

// NewDynamic constructs an empty DynamicDisjointSet.
func NewDynamic[T comparable]() *DynamicDisjointSet[T] {
	return &DynamicDisjointSet[T]{forest: newForest[T](policyRegister)}
}

// NewDynamicFromRelations constructs a DynamicDisjointSet seeded by unioning
// each relation pair in order, auto-registering both sides.
// Complexity: O(len(relations)·α(n)).
func NewDynamicFromRelations[T comparable](relations [][2]T) *DynamicDisjointSet[T] {
	d := NewDynamic[T]()
	for _, rel := range relations {
		d.Union(rel[0], rel[1])
	}

	return d
}

// Find returns the representative (root) of the set containing x,
// registering x as a singleton first if it was never seen. Idempotent on
// the logical partition; mutates internal parent pointers via path
// compression. Amortized near O(1).
func (d *DynamicDisjointSet[T]) Find(x T) T {
	root, _ := d.find(x) // cannot fail under policyRegister
	return root
}

// Union merges the sets containing x and y, registering either side first
// if unseen. Reports whether a merge happened: false means the two were
// already in the same set (including x == y). Amortized near O(1).
func (d *DynamicDisjointSet[T]) Union(x, y T) bool {
	merged, _ := d.union(x, y) // cannot fail under policyRegister
	return merged
}

// Connected reports whether x and y are in the same set, registering either
// side first if unseen — two fresh elements are therefore never connected.
// Amortized near O(1).
func (d *DynamicDisjointSet[T]) Connected(x, y T) bool {
	same, _ := d.connected(x, y) // cannot fail under policyRegister
	return same
}
