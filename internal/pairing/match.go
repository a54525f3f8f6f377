package pairing

import "sort"

// MakeMatches implements spec.md §4.2: sort both sketches by (value,
// position), then two-pointer walk emitting the cross product of query
// positions x target positions at each equal-value run. queryID and
// targetID are stamped onto every emitted Match (the generic sketch-level
// contract in spec.md carries no ids; callers that need them, like the
// query mapper, supply the pair's ids).
func MakeMatches(querySketch, targetSketch []KMer, queryID, targetID uint32) []Match {
	q := append([]KMer(nil), querySketch...)
	t := append([]KMer(nil), targetSketch...)

	sort.Slice(q, func(i, j int) bool { return kmerLess(q[i], q[j]) })
	sort.Slice(t, func(i, j int) bool { return kmerLess(t[i], t[j]) })

	var out []Match
	i, j := 0, 0
	for i < len(q) && j < len(t) {
		switch {
		case q[i].Value < t[j].Value:
			i++
		case q[i].Value > t[j].Value:
			j++
		default:
			vi := i
			for vi < len(q) && q[vi].Value == q[i].Value {
				vi++
			}
			vj := j
			for vj < len(t) && t[vj].Value == t[j].Value {
				vj++
			}
			for a := i; a < vi; a++ {
				for b := j; b < vj; b++ {
					out = append(out, Match{
						QueryID:   queryID,
						QueryPos:  q[a].Position,
						TargetID:  targetID,
						TargetPos: t[b].Position,
					})
				}
			}
			i, j = vi, vj
		}
	}
	return out
}
