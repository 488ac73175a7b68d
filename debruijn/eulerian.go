// SPDX-License-Identifier: MIT
// Package: debruijn
//
// eulerian.go: B(k, n) as an Eulerian circuit of the de Bruijn graph.

package debruijn

// BuildEulerian returns a de Bruijn sequence B(k, n) built independently of
// the Lyndon construction, by walking an Eulerian circuit of the directed
// de Bruijn graph G(k, n-1):
//
//   - vertices: the k^(n-1) words of length n-1, as integers v ∈ [0, k^(n-1));
//   - edges:    v --s--> (v·k + s) mod k^(n-1), one per symbol s, i.e. one
//     per length-n word. Every vertex has in-degree = out-degree = k, so the
//     graph is Eulerian.
//
// The circuit (Hierholzer's algorithm) starts at the all-zero vertex and
// traverses every edge once; its k^n edge labels, read cyclically, form a
// de Bruijn sequence. The result usually differs from Build's.
//
// Errors:
//   - ErrInvalidArgument if k < 1 or n < 1.
//   - ErrOverflow if k^n exceeds MaxSequenceLen.
//
// Complexity: O(k^n) time, O(k^(n-1)) memory besides the result.
func BuildEulerian(k, n int) ([]int, error) {
	if err := validateKN(MethodBuildEulerian, k, n); err != nil {
		return nil, err
	}
	total, err := sequenceLen(MethodBuildEulerian, k, n)
	if err != nil {
		return nil, err
	}
	vertices := total / k // k^(n-1)

	// next[v] is the smallest symbol whose out-edge from v is still unused;
	// edges are consumed in increasing label order, which replaces explicit
	// edge removal from adjacency lists.
	next := make([]int, vertices)

	// step is a stack frame: the vertex reached and the label used to get there.
	type step struct {
		v, s int
	}

	labels := make([]int, 0, total) // edge labels in reverse circuit order
	stack := []step{{v: 0, s: -1}}  // DFS stack, initialized with the start vertex
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		u := top.v
		if next[u] < k {
			// traverse one unused edge u→v labeled s
			s := next[u]
			next[u]++
			stack = append(stack, step{v: (u*k + s) % vertices, s: s})

			continue
		}
		// no more edges: backtrack, emitting the label that led here
		if top.s >= 0 {
			labels = append(labels, top.s)
		}
		stack = stack[:len(stack)-1]
	}

	// reverse in-place to obtain the forward circuit
	for l, r := 0, len(labels)-1; l < r; l, r = l+1, r-1 {
		labels[l], labels[r] = labels[r], labels[l]
	}

	return labels, nil
}
