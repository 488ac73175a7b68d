// Package necklace is a small, dependency-light toolkit for necklace-family
// combinatorics: Lyndon words and de Bruijn sequences.
//
// 🚀 What is in here?
//
//	lyndon/       : Duval's enumeration of k-ary Lyndon words (iterator,
//	                 state machine, materialized list) + IsLyndon predicate
//	debruijn/     : B(k, n) via Lyndon words or an Eulerian circuit,
//	                 cyclic coverage verification, parallel batch builds
//	cmd/debruijn/ : command-line driver (generate / verify / lyndon / random)
//	examples/     : runnable scenarios
//
// ✨ Why?
//
//   - Exact: lengths are checked against k^n, overflow is an error, not a wrap.
//   - Pure: no global state, no hidden aliasing; every call owns its buffers.
//   - Verifiable: every construction can be checked by an independent verifier.
//
// Quick example:
//
//	seq, _ := debruijn.Build(2, 3) // 0 0 0 1 0 1 1 1
//
//	read cyclically, its eight windows are 000 001 010 101 011 111 110 100.
//
//	go get github.com/katalvlaran/necklace
package necklace
