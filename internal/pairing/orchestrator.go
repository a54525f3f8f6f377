package pairing

import "sort"

// Progress is the orchestrator's collaborator contract for batch
// progress reporting (spec.md §6 draws a line between collaborators and
// the core; the core stays agnostic of how progress is rendered). A nil
// Progress is always valid.
type Progress interface {
	BatchDone(batchBases uint64, batchReads int)
}

// SortReadsByLength sorts reads ascending by length and assigns
// id = position in the sorted order (spec.md §4.6 "Preparation").
func SortReadsByLength(reads []*Read) {
	sort.SliceStable(reads, func(i, j int) bool { return reads[i].Length < reads[j].Length })
	for i, r := range reads {
		r.ID = uint32(i)
	}
}

// Orchestrate implements the batch orchestrator (spec.md §4.6): it
// length-sorts reads, then drives length-homogeneous batches through the
// RC-index builder and query mapper, reducing their overlaps into a
// BestOverlap table indexed by read id.
func Orchestrate(cfg Config, reads []*Read, progress Progress) []*Overlap {
	SortReadsByLength(reads)

	n := len(reads)
	best := make([]*Overlap, n)
	if n == 0 {
		return best
	}

	i, prevI := 0, 0
	for i < n {
		j := i
		var batchSize uint64
		for {
			batchSize += uint64(reads[j].Length)

			closeBatch := batchSize >= cfg.IndexSizeCap ||
				j+1 == n ||
				uint64((1-cfg.AlphaP)*float64(reads[j].Length)) >= uint64(reads[i].Length)

			if closeBatch {
				break
			}
			j++
		}

		batch := reads[i : j+1]
		idx := BuildIndex(cfg, batch)
		threshold := FrequencyThreshold(idx, cfg.FilterFreq)

		queries := reads[prevI : j+1]
		overlaps := MapReads(cfg, queries, idx, threshold, reads)

		updateBestOverlaps(best, overlaps)

		if progress != nil {
			progress.BatchDone(batchSize, len(batch))
		}

		prevI = i
		i = j + 1
	}

	return best
}

func updateBestOverlaps(best []*Overlap, overlaps []Overlap) {
	for _, ov := range overlaps {
		errVal := OverlapError(ov)
		updateBestSlot(best, ov.QueryID, ov, errVal)
		updateBestSlot(best, ov.TargetID, ov, errVal)
	}
}

func updateBestSlot(best []*Overlap, id uint32, ov Overlap, errVal float64) {
	cur := best[id]
	if cur != nil && OverlapError(*cur) <= errVal {
		return
	}
	stored := ov
	best[id] = &stored
}
