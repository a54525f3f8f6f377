package pairing

import (
	"math/rand"
	"testing"
)

func randomSeq(rng *rand.Rand, n int) []byte {
	bases := []byte{'A', 'C', 'G', 'T'}
	out := make([]byte, n)
	for i := range out {
		out[i] = bases[rng.Intn(4)]
	}
	return out
}

func TestOrchestrateS6EndToEndRCPair(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	a := randomSeq(rng, 10000)
	b := reverseComplementBytes(a)
	c := randomSeq(rng, 10000)

	reads := []*Read{
		NewRead("A", a),
		NewRead("B", b),
		NewRead("C", c),
	}

	cfg := DefaultConfig()
	cfg.Threads = 2

	best := Orchestrate(cfg, reads, nil)

	names := make([]string, len(reads))
	for _, r := range reads {
		names[r.ID] = r.Name
	}

	pairs := ResolvePairs(best, names)
	if len(pairs) != 1 {
		t.Fatalf("expected exactly one pair, got %v", pairs)
	}
	if pairs[0].Lhs != "A" || pairs[0].Rhs != "B" {
		t.Fatalf("expected pair (A,B), got %+v", pairs[0])
	}
}

func reverseComplementBytes(s []byte) []byte {
	comp := map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = comp[s[n-1-i]]
	}
	return out
}
