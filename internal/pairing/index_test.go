package pairing

import "testing"

func TestBuildIndexSingleAndManyLocators(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KmerLen = 7
	cfg.WindowLen = 3

	r1 := NewRead("r1", []byte(seedSeq))
	r2 := NewRead("r2", []byte("TTTTTTTTTTTTTTTTTTTT"))
	r1.ID, r2.ID = 0, 1

	idx := BuildIndex(cfg, []*Read{r1, r2})

	if idx.Size() == 0 {
		t.Fatalf("expected a non-empty index")
	}

	seenSingle, seenMany := false, false
	for _, loc := range idx.locations {
		switch loc.Kind {
		case LocatorSingle:
			if loc.Count != 1 {
				t.Fatalf("single locator must have count 1, got %+v", loc)
			}
			seenSingle = true
		case LocatorMany:
			if loc.Count < 2 {
				t.Fatalf("many locator must have count >= 2, got %+v", loc)
			}
			seenMany = true
		}
	}
	if !seenSingle {
		t.Fatalf("expected at least one Single locator in this fixture")
	}
	if !seenMany {
		t.Fatalf("expected at least one Many locator in this fixture")
	}
}

func TestBuildIndexLocatorsReferenceSortedTargets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KmerLen = 5
	cfg.WindowLen = 2

	r1 := NewRead("r1", []byte("ACGTACGTACGTACGT"))
	r1.ID = 0
	idx := BuildIndex(cfg, []*Read{r1})

	for v, loc := range idx.locations {
		if loc.Kind == LocatorSingle {
			if loc.Single.KMer.Value != v {
				t.Fatalf("single locator value mismatch: key=%d entry=%+v", v, loc.Single)
			}
			continue
		}
		for i := loc.Offset; i < loc.Offset+loc.Count; i++ {
			if idx.kmers[i].KMer.Value != v {
				t.Fatalf("many-locator run at offset %d has wrong value: got %d want %d", i, idx.kmers[i].KMer.Value, v)
			}
		}
	}
}
