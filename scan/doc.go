// Package scan extracts numbers from raw puzzle input.
//
// Two families of helpers:
//
//   - Ints / Floats — pull every unsigned integer or decimal out of a string
//   - IntsFromFile / FloatsFromFile — the same over a file's contents
//
// Matching is deliberately simple: Ints collects maximal digit runs (\d+),
// Floats collects digit runs joined by a dot (\d+\.\d+). Signs are not part
// of a match — "-7" yields 7 — which is the convention puzzle inputs almost
// always want. Callers needing signed parsing can split the input themselves.
package scan
