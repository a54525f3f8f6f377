package pairing

import "sort"

// Pair is an unordered, name-resolved result of the pair resolver
// (spec.md §4.7). Lhs is lexicographically <= Rhs.
type Pair struct {
	Lhs string
	Rhs string
}

// ResolvePairs implements the pair resolver: best is the BestOverlap
// table (index = read id, nil = no overlap recorded), names maps a read
// id to its externally-supplied name.
func ResolvePairs(best []*Overlap, names []string) []Pair {
	n := len(best)
	partner := make([]int32, n)
	for i := range partner {
		partner[i] = -1
	}

	for r, ov := range best {
		if ov == nil {
			continue
		}
		if ov.QueryID == uint32(r) {
			partner[r] = int32(ov.TargetID)
		} else {
			partner[r] = int32(ov.QueryID)
		}
	}

	var pairs []Pair
	for r := 0; r < n; r++ {
		p := partner[r]
		if p < 0 {
			continue
		}
		if int(p) >= n || partner[p] != int32(r) {
			continue // not mutual-best
		}
		if r >= int(p) {
			continue // prevents double emission; only the smaller id emits
		}

		a, b := names[r], names[p]
		if a > b {
			a, b = b, a
		}
		pairs = append(pairs, Pair{Lhs: a, Rhs: b})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Lhs != pairs[j].Lhs {
			return pairs[i].Lhs < pairs[j].Lhs
		}
		return pairs[i].Rhs < pairs[j].Rhs
	})

	return uniquePairs(pairs)
}

func uniquePairs(pairs []Pair) []Pair {
	if len(pairs) == 0 {
		return pairs
	}
	out := pairs[:1]
	for _, p := range pairs[1:] {
		last := out[len(out)-1]
		if p == last {
			continue
		}
		out = append(out, p)
	}
	return out
}
