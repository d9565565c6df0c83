// Package pathindex builds the derived structure over a flat feature
// sequence: a path-to-position map and a parent/child adjacency based on
// longest-struct-prefix resolution. The index is built once and read-only
// afterwards, so it is safe for concurrent readers.
package pathindex

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/statview/schema"
)

// Duplicate records a path collision found during the build. The
// first-seen position keeps the mapping.
type Duplicate struct {
	Path          schema.Path
	First, Second int
}

// Index is the build-once derived structure. Positions are dense indices
// 0..Len-1 in input order; the tree is kept as a parent array plus an
// inverse adjacency, not as pointer-linked nodes.
type Index struct {
	paths     []schema.Path
	positions map[string]int
	parents   []int // -1 for roots
	children  [][]int
	roots     *roaring.Bitmap
	structs   *roaring.Bitmap

	duplicates []Duplicate
}

// Build constructs the index for the given paths. isStruct marks the
// positions whose record is STRUCT-typed; only those are parent
// candidates. Duplicate paths keep the first-seen mapping and are
// reported via Duplicates.
func Build(paths []schema.Path, isStruct []bool) *Index {
	n := len(paths)
	ix := &Index{
		paths:     paths,
		positions: make(map[string]int, n),
		parents:   make([]int, n),
		children:  make([][]int, n),
		roots:     roaring.New(),
		structs:   roaring.New(),
	}

	for i, p := range paths {
		key := p.String()
		if first, ok := ix.positions[key]; ok {
			ix.duplicates = append(ix.duplicates, Duplicate{Path: p, First: first, Second: i})
			continue
		}
		ix.positions[key] = i
	}
	for i := range paths {
		if isStruct[i] {
			ix.structs.Add(uint32(i))
		}
	}

	// Resolve each position's parent: the STRUCT-typed position whose
	// path is the longest strict prefix. Walking prefixes longest-first
	// makes the first hit the answer; ties are impossible since equal
	// prefixes of equal length are the same path.
	for i, p := range paths {
		ix.parents[i] = -1
		for k := p.Len() - 1; k >= 1; k-- {
			j, ok := ix.positions[p.Prefix(k).String()]
			if !ok || j == i || !ix.structs.Contains(uint32(j)) {
				continue
			}
			ix.parents[i] = j
			break
		}
		if ix.parents[i] < 0 {
			ix.roots.Add(uint32(i))
		}
	}

	// Children in position order, the inverse of the parent array.
	for i, parent := range ix.parents {
		if parent >= 0 {
			ix.children[parent] = append(ix.children[parent], i)
		}
	}

	return ix
}

// Len returns the number of indexed positions.
func (ix *Index) Len() int { return len(ix.paths) }

// Path returns the path at position i. Panics if i is out of range.
func (ix *Index) Path(i int) schema.Path { return ix.paths[i] }

// Position returns the position mapped to the given path.
func (ix *Index) Position(p schema.Path) (int, bool) {
	i, ok := ix.positions[p.String()]
	return i, ok
}

// Parent returns the resolved parent of position i, or false for roots.
func (ix *Index) Parent(i int) (int, bool) {
	p := ix.parents[i]
	if p < 0 {
		return 0, false
	}
	return p, true
}

// Children returns the positions whose resolved parent is i, in position
// order. The returned slice is shared and must not be mutated.
func (ix *Index) Children(i int) []int { return ix.children[i] }

// IsRoot reports whether position i has no resolved parent.
func (ix *Index) IsRoot(i int) bool { return ix.parents[i] < 0 }

// Roots returns all root positions in ascending position order.
func (ix *Index) Roots() []int {
	out := make([]int, 0, ix.roots.GetCardinality())
	it := ix.roots.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// IsStruct reports whether position i was marked STRUCT-typed.
func (ix *Index) IsStruct(i int) bool { return ix.structs.Contains(uint32(i)) }

// Duplicates returns the path collisions found during the build.
func (ix *Index) Duplicates() []Duplicate { return ix.duplicates }
