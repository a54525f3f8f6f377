package pairing

import (
	"math"
	"testing"
)

func TestFrequencyThresholdTinyIndexNeverFilters(t *testing.T) {
	idx := &Index{counts: []uint32{5}}
	if got := FrequencyThreshold(idx, 0.1); got != math.MaxUint32 {
		t.Fatalf("expected MaxUint32 for index with <=2 distinct values, got %d", got)
	}

	idx = &Index{counts: []uint32{5, 9}}
	if got := FrequencyThreshold(idx, 0.1); got != math.MaxUint32 {
		t.Fatalf("expected MaxUint32 for index with <=2 distinct values, got %d", got)
	}
}

func TestFrequencyThresholdSelectsExpectedOrderStatistic(t *testing.T) {
	counts := []uint32{1, 1, 1, 1, 2, 2, 3, 10, 50, 100}
	idx := &Index{counts: counts}

	f := 0.1 // exclude top 10% of distinct values by count
	got := FrequencyThreshold(idx, f)

	sorted := append([]uint32(nil), counts...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	want := sorted[int(float64(len(sorted))*(1-f))]

	if got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestQuickselectMatchesSortedOrder(t *testing.T) {
	counts := []uint32{9, 3, 7, 1, 8, 2, 6, 4, 5}
	sorted := append([]uint32(nil), counts...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	for k := 0; k < len(counts); k++ {
		cp := append([]uint32(nil), counts...)
		if got := quickselect(cp, k); got != sorted[k] {
			t.Fatalf("quickselect(%d): got %d, want %d", k, got, sorted[k])
		}
	}
}
