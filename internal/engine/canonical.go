package engine

import "strconv"

// canonicalSignature computes the rotation- and reflection-invariant
// signature of a cycle's edge-id sequence (spec §4.6). Because edge
// identifiers are unique, the signature is a faithful identity for cycles
// under rotation (different start offsets collapse) and reflection (the
// same undirected edge-set traversed in either direction collapses).
func canonicalSignature(eids []int64) []int64 {
	k := minIndex(eids)
	forward := rotate(eids, k)

	reversed := reverseInts(eids)
	kRev := minIndex(reversed)
	backward := rotate(reversed, kRev)

	if lessLex(backward, forward) {
		return backward
	}

	return forward
}

// minIndex returns the index of the first occurrence of the minimum value.
func minIndex(e []int64) int {
	best := 0

	for i := 1; i < len(e); i++ {
		if e[i] < e[best] {
			best = i
		}
	}

	return best
}

// rotate returns e[k:] ++ e[:k].
func rotate(e []int64, k int) []int64 {
	out := make([]int64, 0, len(e))
	out = append(out, e[k:]...)
	out = append(out, e[:k]...)

	return out
}

// reverseInts returns a new slice with e's elements in reverse order.
func reverseInts(e []int64) []int64 {
	out := make([]int64, len(e))
	for i, v := range e {
		out[len(e)-1-i] = v
	}

	return out
}

// lessLex reports whether a is lexicographically smaller than b. Both
// slices are always the same length here (same cycle, same edge count).
func lessLex(a, b []int64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// signatureKey renders a signature as a map key for the seen-signatures set.
func signatureKey(sig []int64) string {
	buf := make([]byte, 0, len(sig)*8)

	for i, v := range sig {
		if i > 0 {
			buf = append(buf, ',')
		}

		buf = strconv.AppendInt(buf, v, 10)
	}

	return string(buf)
}
