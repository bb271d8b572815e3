package dsu_test

import (
	"testing"

	"github.com/solvekit/solvekit/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLetters builds a static set over the universe {a..g}, every element a
// singleton.
func newLetters() *dsu.StaticDisjointSet[string] {
	return dsu.NewStatic([]string{"a", "b", "c", "d", "e", "f", "g"})
}

// TestStatic_Len verifies the element count after construction.
func TestStatic_Len(t *testing.T) {
	s := newLetters()
	assert.Equal(t, 7, s.Len(), "seven elements registered at construction")
}

// TestStatic_Clear verifies that Clear empties the structure and forgets the
// universe: previously valid elements must now fail.
func TestStatic_Clear(t *testing.T) {
	s := newLetters()
	require.Equal(t, 7, s.Len())

	s.Clear()

	assert.Equal(t, 0, s.Len(), "clear must drop every element")
	assert.Empty(t, s.Components(), "no components after clear")

	_, err := s.Find("a")
	assert.ErrorIs(t, err, dsu.ErrUnknownElement, "cleared static set forgets its universe")
}

// TestStatic_FindIdempotent verifies that repeated finds return the same root.
func TestStatic_FindIdempotent(t *testing.T) {
	s := newLetters()

	root1, err := s.Find("a")
	require.NoError(t, err)
	root2, err := s.Find("a")
	require.NoError(t, err)

	assert.Equal(t, root1, root2, "find must be idempotent")
}

// TestStatic_UnknownElements verifies that every operation rejects elements
// outside the construction universe, mutating nothing.
func TestStatic_UnknownElements(t *testing.T) {
	s := newLetters()

	_, err := s.Find("x")
	assert.ErrorIs(t, err, dsu.ErrUnknownElement, "find of unregistered element")

	merged, err := s.Union("a", "x")
	assert.ErrorIs(t, err, dsu.ErrUnknownElement, "union with unregistered element")
	assert.False(t, merged)

	_, err = s.Connected("x", "a")
	assert.ErrorIs(t, err, dsu.ErrUnknownElement, "connected with unregistered element")

	// No state was mutated: "x" is still unknown, the universe still 7 singletons.
	assert.Equal(t, 7, s.Len())
	_, known := s.ParentOf("x")
	assert.False(t, known, "failed operations must not register the element")
	assert.Len(t, s.Components(), 7)
}

// TestStatic_UnionIdempotent verifies that re-unioning connected elements
// reports false.
func TestStatic_UnionIdempotent(t *testing.T) {
	s := newLetters()

	merged, err := s.Union("a", "b")
	require.NoError(t, err)
	assert.True(t, merged, "first union must merge")

	merged, err = s.Union("a", "b")
	require.NoError(t, err)
	assert.False(t, merged, "repeated union must be a no-op")
}

// TestStatic_UnionSelf verifies that union of an element with itself is a
// no-op.
func TestStatic_UnionSelf(t *testing.T) {
	s := newLetters()

	merged, err := s.Union("a", "a")
	require.NoError(t, err)
	assert.False(t, merged, "self-union must never merge")

	rank, ok := s.RankOf("a")
	require.True(t, ok)
	assert.Zero(t, rank, "self-union must not touch rank")
}

// TestStatic_UnionSymmetric verifies that argument order does not change the
// resulting partition.
func TestStatic_UnionSymmetric(t *testing.T) {
	left := newLetters()
	right := newLetters()

	_, err := left.Union("a", "b")
	require.NoError(t, err)
	_, err = right.Union("b", "a")
	require.NoError(t, err)

	for _, x := range []string{"a", "b"} {
		for _, y := range []string{"a", "b"} {
			wantL, errL := left.Connected(x, y)
			wantR, errR := right.Connected(x, y)
			require.NoError(t, errL)
			require.NoError(t, errR)
			assert.Equal(t, wantL, wantR, "connectivity of (%s,%s) must not depend on union order", x, y)
		}
	}
	var sizesL, sizesR []int
	for _, n := range left.SetSizes() {
		sizesL = append(sizesL, n)
	}
	for _, n := range right.SetSizes() {
		sizesR = append(sizesR, n)
	}
	assert.ElementsMatch(t, sizesL, sizesR, "partition sizes must match under swapped arguments")
}

// TestStatic_UnionChain verifies transitivity across chained unions.
func TestStatic_UnionChain(t *testing.T) {
	s := newLetters()

	for _, pair := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		_, err := s.Union(pair[0], pair[1])
		require.NoError(t, err)
	}

	root, err := s.Find("a")
	require.NoError(t, err)
	for _, x := range []string{"b", "c", "d"} {
		got, err := s.Find(x)
		require.NoError(t, err)
		assert.Equal(t, root, got, "chained unions must share one root")
	}

	same, err := s.Connected("a", "d")
	require.NoError(t, err)
	assert.True(t, same, "transitivity: a~b, b~c, c~d implies a~d")
}

// TestStatic_Connected verifies positive and negative connectivity queries.
func TestStatic_Connected(t *testing.T) {
	s := newLetters()

	_, err := s.Union("a", "b")
	require.NoError(t, err)
	_, err = s.Union("c", "d")
	require.NoError(t, err)

	same, err := s.Connected("a", "b")
	require.NoError(t, err)
	assert.True(t, same)

	same, err = s.Connected("a", "c")
	require.NoError(t, err)
	assert.False(t, same, "distinct components must not be connected")
}

// TestStatic_Components verifies the fresh partition: seven singletons.
func TestStatic_Components(t *testing.T) {
	s := newLetters()

	comps := s.Components()
	assert.Len(t, comps, 7)
	for root, set := range comps {
		assert.Len(t, set, 1, "fresh elements are singletons")
		assert.Contains(t, set, root, "a singleton's root is the element itself")
	}
}

// TestStatic_MultipleSets verifies the partition after two disjoint unions.
func TestStatic_MultipleSets(t *testing.T) {
	s := newLetters()

	_, err := s.Union("a", "b")
	require.NoError(t, err)
	_, err = s.Union("c", "d")
	require.NoError(t, err)

	comps := s.Components()
	assert.Len(t, comps, 5, "7 elements, two pairs merged -> 5 components")

	var sizes []int
	total := 0
	for _, set := range comps {
		sizes = append(sizes, len(set))
		total += len(set)
	}
	assert.ElementsMatch(t, []int{1, 1, 1, 2, 2}, sizes)
	assert.Equal(t, s.Len(), total, "partition must cover every registered element exactly once")
}

// TestStatic_SetsAlias verifies that Sets and Components agree.
func TestStatic_SetsAlias(t *testing.T) {
	s := newLetters()
	_, err := s.Union("a", "b")
	require.NoError(t, err)

	assert.Equal(t, s.Components(), s.Sets())
}

// TestStatic_ComponentSizes verifies per-root cardinalities.
func TestStatic_ComponentSizes(t *testing.T) {
	s := newLetters()

	sizes := s.ComponentSizes()
	assert.Len(t, sizes, 7)
	for root, n := range sizes {
		assert.Equal(t, 1, n, "singleton component for %s", root)
	}
}

// TestStatic_SetSizesAlias verifies that SetSizes and ComponentSizes agree.
func TestStatic_SetSizesAlias(t *testing.T) {
	s := newLetters()
	_, err := s.Union("a", "b")
	require.NoError(t, err)

	assert.Equal(t, s.ComponentSizes(), s.SetSizes())
}

// TestStatic_PathCompression verifies that after a find, every node on the
// walked path points directly at the root.
func TestStatic_PathCompression(t *testing.T) {
	s := newLetters()

	// Build a chain d -> c -> b -> a of parent links.
	for _, pair := range [][2]string{{"d", "c"}, {"c", "b"}, {"b", "a"}} {
		_, err := s.Union(pair[0], pair[1])
		require.NoError(t, err)
	}

	root, err := s.Find("d")
	require.NoError(t, err)

	for _, x := range []string{"a", "b", "c", "d"} {
		parent, ok := s.ParentOf(x)
		require.True(t, ok)
		assert.Equal(t, root, parent, "%s must point directly at the root after compression", x)
	}
}

// TestStatic_PathCompressionDeep builds a two-level tree and verifies that a
// single find flattens the whole walked path.
func TestStatic_PathCompressionDeep(t *testing.T) {
	s := newLetters()

	_, err := s.Union("a", "b") // b under a, rank(a)=1
	require.NoError(t, err)
	_, err = s.Union("c", "d") // d under c, rank(c)=1
	require.NoError(t, err)
	_, err = s.Union("b", "d") // equal ranks: c under a, d now two hops from a
	require.NoError(t, err)

	parent, ok := s.ParentOf("d")
	require.True(t, ok)
	require.Equal(t, "c", parent, "d should still hang off c before compression")

	root, err := s.Find("d")
	require.NoError(t, err)
	require.Equal(t, "a", root)

	parent, _ = s.ParentOf("d")
	assert.Equal(t, root, parent, "find must repoint d directly at the root")
	parent, _ = s.ParentOf("c")
	assert.Equal(t, root, parent, "every node on the walked path is compressed")

	rank, _ := s.RankOf(root)
	assert.Equal(t, 2, rank, "compression never changes rank")
}

// TestStatic_UnionByRank verifies that merging two equal-rank trees bumps the
// surviving root's rank by exactly one, and that unequal-rank merges do not.
func TestStatic_UnionByRank(t *testing.T) {
	s := newLetters()

	_, err := s.Union("a", "b") // rank(root{a,b}) = 1
	require.NoError(t, err)
	_, err = s.Union("c", "d") // rank(root{c,d}) = 1
	require.NoError(t, err)

	rootA, err := s.Find("a")
	require.NoError(t, err)
	rankA, _ := s.RankOf(rootA)
	rootC, err := s.Find("c")
	require.NoError(t, err)
	rankC, _ := s.RankOf(rootC)
	require.Equal(t, rankA, rankC, "two fresh pairs must have equal rank")

	_, err = s.Union("a", "c") // equal ranks: surviving root's rank grows by 1
	require.NoError(t, err)

	root, err := s.Find("a")
	require.NoError(t, err)
	rank, _ := s.RankOf(root)
	assert.Equal(t, rankA+1, rank, "equal-rank merge must bump the survivor by one")

	// Unequal merge: attaching a rank-0 singleton leaves the root's rank alone.
	_, err = s.Union("a", "e")
	require.NoError(t, err)
	root, err = s.Find("e")
	require.NoError(t, err)
	got, _ := s.RankOf(root)
	assert.Equal(t, rank, got, "unequal-rank merge must not change the winning rank")
}

// TestStatic_DuplicateElements verifies that duplicates in the construction
// slice register once.
func TestStatic_DuplicateElements(t *testing.T) {
	s := dsu.NewStatic([]string{"a", "a", "b"})
	assert.Equal(t, 2, s.Len())
}

// TestStatic_IntElements exercises the generic core with int elements.
func TestStatic_IntElements(t *testing.T) {
	s := dsu.NewStatic([]int{1, 2, 3})

	_, err := s.Union(1, 2)
	require.NoError(t, err)
	_, err = s.Union(2, 3)
	require.NoError(t, err)

	r1, err := s.Find(1)
	require.NoError(t, err)
	r3, err := s.Find(3)
	require.NoError(t, err)
	assert.Equal(t, r1, r3)
}

// TestStatic_PairElements exercises the generic core with coordinate-pair
// elements, the shape grid collaborators supply.
func TestStatic_PairElements(t *testing.T) {
	s := dsu.NewStatic([][2]int{{0, 0}, {0, 1}, {1, 1}})

	_, err := s.Union([2]int{0, 0}, [2]int{0, 1})
	require.NoError(t, err)
	_, err = s.Union([2]int{0, 1}, [2]int{1, 1})
	require.NoError(t, err)

	r1, err := s.Find([2]int{0, 0})
	require.NoError(t, err)
	r2, err := s.Find([2]int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

// TestStatic_LargeChain unions 1000 elements into a single chain and checks
// that everything collapses to one component.
func TestStatic_LargeChain(t *testing.T) {
	const n = 1000
	elements := make([]int, n)
	for i := range elements {
		elements[i] = i
	}
	s := dsu.NewStatic(elements)

	for i := 0; i < n-1; i++ {
		_, err := s.Union(i, i+1)
		require.NoError(t, err)
	}

	root, err := s.Find(0)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		got, err := s.Find(i)
		require.NoError(t, err)
		require.Equal(t, root, got)
	}

	comps := s.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[root], n)
}
