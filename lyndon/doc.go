// Package lyndon enumerates k-ary Lyndon words in lexicographic order.
//
// What:
//
//   - A Lyndon word is a non-empty word over the alphabet {0..k-1} that is
//     strictly smaller, lexicographically, than every one of its non-trivial
//     rotations: 0, 01, 001, 011, 0011 … are Lyndon words; 00, 10, 0101 are not.
//   - Words(k, n) yields every Lyndon word of length 1..n in strictly
//     increasing lexicographic order, using Duval's successor algorithm.
//   - Generator is the explicit state machine behind Words, for callers that
//     prefer a Next() loop over range-over-func.
//   - Generate(k, n) materializes the full list.
//   - IsLyndon / Compare are small predicates used to check the output.
//
// Why:
//
//	Concatenating, in the order produced here, all Lyndon words whose length
//	divides n yields the lexicographically smallest de Bruijn sequence B(k, n)
//	(see package debruijn).
//
// Algorithm (Duval, 1988):
//
//  1. Start from the single-symbol buffer [-1] (one step "before" symbol 0).
//  2. Increment the last symbol of the buffer; the buffer is now the next word.
//  3. Emit a copy of the buffer.
//  4. Extend the buffer to length n by buf[i] = buf[i-m], where m is the
//     length before extension.
//  5. Drop trailing k-1 symbols; they cannot be incremented.
//  6. Stop when the buffer is empty.
//
// Determinism & ownership:
//
//	Each call to Words or NewGenerator owns a private buffer; every yielded
//	Word is a fresh copy, so callers may keep or mutate it freely.
//	A single sequence is not restartable: ranging over it twice yields the
//	remaining words (none, once exhausted). Call Words again for a new run.
//
// Complexity:
//
//   - Time:   O(n) amortized per word (buffer extension dominates).
//   - Memory: O(n) for the buffer, plus the caller's copies.
//
// Errors:
//
//   - ErrInvalidArgument: k < 1 or n < 1.
package lyndon
