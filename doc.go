// Package solvekit is a grab-bag of small generic helpers for solving
// self-contained computational puzzles: disjoint sets, 2-D grids, and
// number extraction from raw text.
//
// 🚀 What is solvekit?
//
//	A small, pure-Go toolkit that brings together:
//		• Disjoint sets: union-find with path compression & union by rank,
//		  in a static (fixed universe) and a dynamic (auto-registering) flavor
//		• Grids: dense row/column grids and sparse point-keyed grids, with
//		  parsing, transformation, search and region detection
//		• Scanning: pull every integer or float out of a string or file
//
// ✨ Why choose solvekit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Generic – element types are yours; the kit only compares and hashes them
//   - Pure Go – no cgo, no hidden deps
//   - Composable – grid coordinates drop straight into a disjoint set
//
// Everything is organized under three subpackages:
//
//	dsu/  — StaticDisjointSet & DynamicDisjointSet (union-find)
//	grid/ — Grid & SparseGrid with Regions powered by dsu
//	scan/ — integer / float extraction helpers
//
// Quick ASCII example:
//
//	    1 1 0
//	    0 1 0      two “land” regions: the L-shaped 1s and the lone 1
//	    0 0 1
//
// Dive into the per-package docs for full examples and complexity notes.
//
//	go get github.com/solvekit/solvekit
package solvekit
