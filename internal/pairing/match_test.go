package pairing

import "testing"

func TestMakeMatchesCrossProduct(t *testing.T) {
	query := []KMer{{Position: 0, Value: 10}, {Position: 5, Value: 20}}
	target := []KMer{{Position: 1, Value: 10}, {Position: 2, Value: 10}, {Position: 9, Value: 99}}

	matches := MakeMatches(query, target, 1, 2)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches (1 query pos x 2 target pos at value 10), got %d: %v", len(matches), matches)
	}
	for _, m := range matches {
		if m.QueryID != 1 || m.TargetID != 2 {
			t.Fatalf("ids not stamped correctly: %+v", m)
		}
		if m.QueryPos != 0 {
			t.Fatalf("expected query pos 0, got %+v", m)
		}
	}
}

func TestMakeMatchesSymmetry(t *testing.T) {
	a := []KMer{{Position: 0, Value: 10}, {Position: 3, Value: 30}, {Position: 5, Value: 20}}
	b := []KMer{{Position: 1, Value: 10}, {Position: 2, Value: 20}, {Position: 9, Value: 99}}

	ab := MakeMatches(a, b, 0, 0)
	ba := MakeMatches(b, a, 0, 0)

	if len(ab) != len(ba) {
		t.Fatalf("symmetry broken: len(ab)=%d len(ba)=%d", len(ab), len(ba))
	}

	swap := func(ms []Match) map[[2]uint32]int {
		out := make(map[[2]uint32]int)
		for _, m := range ms {
			out[[2]uint32{m.QueryPos, m.TargetPos}]++
		}
		return out
	}

	abSet := swap(ab)
	baSwapped := make(map[[2]uint32]int)
	for _, m := range ba {
		baSwapped[[2]uint32{m.TargetPos, m.QueryPos}]++
	}

	if len(abSet) != len(baSwapped) {
		t.Fatalf("position sets differ in size")
	}
	for k, v := range abSet {
		if baSwapped[k] != v {
			t.Fatalf("position pair %v count mismatch: ab=%d ba=%d", k, v, baSwapped[k])
		}
	}
}

func TestMakeMatchesNoOverlap(t *testing.T) {
	a := []KMer{{Position: 0, Value: 1}}
	b := []KMer{{Position: 0, Value: 2}}
	if matches := MakeMatches(a, b, 0, 0); len(matches) != 0 {
		t.Fatalf("expected no matches, got %v", matches)
	}
}
