// Package grid provides two generic 2-D grid abstractions for puzzle input:
//
//   - Grid — a dense, rectangular, row/column-indexed grid
//   - SparseGrid — a point-keyed grid holding only the cells that exist
//
// Both support:
//
//   - Parsing from strings and files, with optional per-cell conversion
//   - Four- or eight-connectivity neighbor lookups (Conn4 or Conn8)
//   - Value search (Find / FindAll / Count) and whole-grid transforms (Map)
//   - Region detection: contiguous groups of cells satisfying a predicate,
//     computed with a dsu.DynamicDisjointSet over cell Points
//
// Cells are addressed by Point{Row, Col}. Points are comparable values, so a
// grid's coordinates drop straight into the dsu package as disjoint-set
// elements — that pairing is exactly what Regions does internally.
//
// A Grid is rectangular by construction (New rejects empty or ragged
// input) and owns its cells: construction deep-copies, and mutation happens
// only through Set. A SparseGrid's cell set is fixed at construction; Set
// rewrites existing cells but refuses to invent new positions.
package grid
