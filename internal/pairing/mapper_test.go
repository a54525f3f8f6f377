package pairing

import "testing"

func TestMapReadsIdentityGuardSkipsLowerOrEqualTarget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KmerLen = 9
	cfg.WindowLen = 3
	cfg.MinChainLength = 2
	cfg.MaxChainGapLength = 50
	// minimizer chains on this 28-base read span at most 25 bases, below
	// the default beta of 0.9; lower it so only the identity guard decides.
	cfg.BetaP = 0.5

	seq := []byte("ACGTACGTACGTACGTACGTACGTACGT")
	rc := make([]byte, len(seq))
	comp := map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}
	for i := range seq {
		rc[i] = comp[seq[len(seq)-1-i]]
	}

	low := NewRead("low", rc)
	low.ID = 0
	high := NewRead("high", seq)
	high.ID = 1

	idx := BuildIndex(cfg, []*Read{low, high})
	threshold := FrequencyThreshold(idx, cfg.FilterFreq)
	allReads := []*Read{low, high}

	// querying the lower-id read should succeed: its candidate target
	// high has id 1 > 0, which passes the identity guard.
	overlapsFromLow := MapReads(cfg, []*Read{low}, idx, threshold, allReads)
	if len(overlapsFromLow) == 0 {
		t.Fatalf("expected low (id 0) querying against high (id 1) to find an overlap")
	}

	// querying the higher-id read should find nothing: its only
	// candidate target (low, id 0) fails the identity guard.
	overlapsFromHigh := MapReads(cfg, []*Read{high}, idx, threshold, allReads)
	if len(overlapsFromHigh) != 0 {
		t.Fatalf("expected high (id 1) to find no overlap, identity guard should block id 0; got %v", overlapsFromHigh)
	}
}

func TestMapReadsLengthRatioGuard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AlphaP = 0.10

	if lengthRatioOK(cfg.AlphaP, 100, 95) != true {
		t.Fatalf("95/100 = 0.95 >= 0.90 should pass")
	}
	if lengthRatioOK(cfg.AlphaP, 100, 80) != false {
		t.Fatalf("80/100 = 0.80 < 0.90 should fail")
	}
}
