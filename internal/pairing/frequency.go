package pairing

import "math"

// FrequencyThreshold implements spec.md §4.4's frequency_threshold:
// collect per-distinct-value counts, quick-select the element at index
// floor(n*(1-f)), and return it as the cutoff. Probes against values
// whose count is above the cutoff are skipped by the query mapper. If there
// are 2 or fewer distinct values, returns math.MaxUint32 (never filter).
func FrequencyThreshold(idx *Index, f float64) uint32 {
	n := len(idx.counts)
	if n <= 2 {
		return math.MaxUint32
	}

	counts := make([]uint32, n)
	copy(counts, idx.counts)

	target := int(float64(n) * (1 - f))
	if target >= n {
		target = n - 1
	}
	if target < 0 {
		target = 0
	}

	return quickselect(counts, target)
}

// quickselect returns the element that would occupy position k in the
// sorted order of s, in expected O(n) time (Lomuto partition scheme),
// without fully sorting s.
func quickselect(s []uint32, k int) uint32 {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := hoarePartition(s, lo, hi)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return s[p]
		}
	}
	return s[lo]
}

func hoarePartition(s []uint32, lo, hi int) int {
	pivot := s[(lo+hi)/2]
	s[(lo+hi)/2], s[hi] = s[hi], s[(lo+hi)/2]

	store := lo
	for i := lo; i < hi; i++ {
		if s[i] < pivot {
			s[i], s[store] = s[store], s[i]
			store++
		}
	}
	s[store], s[hi] = s[hi], s[store]
	return store
}
