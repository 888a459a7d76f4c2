package fillorder

import "github.com/ashford-lakes/hyperwidth/hypergraph"

type vid = hypergraph.VertexID

// sortedContains reports whether x is present in the ascending slice s.
func sortedContains(s []vid, x vid) bool {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case s[mid] == x:
			return true
		case s[mid] < x:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

// sortedDiffSize counts elements of a absent from b. Both must be ascending.
func sortedDiffSize(a, b []vid) int {
	i, j, n := 0, 0, 0
	for i < len(a) {
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j >= len(b) || b[j] != a[i] {
			n++
		}
		i++
	}
	return n
}

// decomposeThree splits have (ascending) against want (ascending, the
// selected vertex's open neighborhood S = N(s)) into:
//
//	additional: elements of want absent from have (will become new edges)
//	unaffected: elements of have absent from want (untouched by this step)
//	existing:   elements of have present in want (already-existing edges)
func decomposeThree(have, want []vid) (additional, unaffected, existing []vid) {
	i, j := 0, 0
	for i < len(have) && j < len(want) {
		switch {
		case have[i] < want[j]:
			unaffected = append(unaffected, have[i])
			i++
		case have[i] > want[j]:
			additional = append(additional, want[j])
			j++
		default:
			existing = append(existing, have[i])
			i++
			j++
		}
	}
	unaffected = append(unaffected, have[i:]...)
	additional = append(additional, want[j:]...)
	return additional, unaffected, existing
}

// mergeExcluding merges the ascending slices base and extra into one
// ascending, duplicate-free slice with excl removed, without mutating base.
// extra is assumed disjoint from base except possibly for excl.
func mergeExcluding(base, extra []vid, excl vid) []vid {
	out := make([]vid, 0, len(base)+len(extra))
	i, j := 0, 0
	for i < len(base) || j < len(extra) {
		var next vid
		switch {
		case i >= len(base):
			next = extra[j]
			j++
		case j >= len(extra):
			next = base[i]
			i++
		case base[i] <= extra[j]:
			next = base[i]
			i++
			if base[i-1] == extra[j] {
				j++
			}
		default:
			next = extra[j]
			j++
		}
		if next == excl {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == next {
			continue
		}
		out = append(out, next)
	}
	return out
}

// removeOne returns a copy of s with the single occurrence of x removed.
func removeOne(s []vid, x vid) []vid {
	out := make([]vid, 0, len(s))
	for _, v := range s {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}

// pairCorrection counts, over the ascending list existing, how many ordered
// pairs (a, b) with a before b in the list satisfy b present in
// additionalOf(a) (the additional-set computed earlier for vertex a). This
// is the "double counted future edges" correction used when recomputing
// fill counts for an existing-dominated neighborhood.
func pairCorrection(existing []vid, additionalOf map[vid][]vid) int {
	n := 0
	for i, a := range existing {
		adds := additionalOf[a]
		if len(adds) == 0 {
			continue
		}
		for _, b := range existing[i+1:] {
			if sortedContains(adds, b) {
				n++
			}
		}
	}
	return n
}

// computeEdgeCount counts edges among the vertices in closed (each vertex's
// neighborhood lookup is neighOf), i.e. the number of unordered pairs
// {x, y} subset of closed with y present in neighOf(x). Used by the
// initialization pass, the one full O(sum d^2) pass, and by the debug-only
// from-scratch fill recomputation.
func computeEdgeCount(closed []vid, neighOf func(vid) []vid) int {
	edges := 0
	for i, x := range closed {
		nx := neighOf(x)
		for _, y := range closed[i+1:] {
			if sortedContains(nx, y) {
				edges++
			}
		}
	}
	return edges
}
