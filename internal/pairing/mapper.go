package pairing

import (
	"sort"
	"sync"
)

// MapReads implements the query mapper (spec.md §4.5): for every query
// read, sketch its forward strand, look up each k-mer in idx, apply the
// identity and length-ratio guards, chain the surviving matches per
// target, and keep the single best (longest, strong) overlap. allReads
// is the orchestrator's full length-sorted read array, indexed by read
// id, used to resolve a target's length.
func MapReads(cfg Config, queryReads []*Read, idx *Index, threshold uint32, allReads []*Read) []Overlap {
	results := make([]*Overlap, len(queryReads))

	var wg sync.WaitGroup
	tokens := make(chan struct{}, threadCount(cfg.Threads))
	for qi, q := range queryReads {
		wg.Add(1)
		tokens <- struct{}{}
		go func(qi int, q *Read) {
			defer func() {
				<-tokens
				wg.Done()
			}()
			results[qi] = mapOneRead(cfg, q, idx, threshold, allReads)
		}(qi, q)
	}
	wg.Wait()

	out := make([]Overlap, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

func mapOneRead(cfg Config, q *Read, idx *Index, threshold uint32, allReads []*Read) *Overlap {
	sketch := Minimize(q.Decode(), cfg.KmerLen, cfg.WindowLen)

	var matches []Match
	for _, km := range sketch {
		loc, ok := idx.Lookup(km.Value)
		if !ok || loc.Count > threshold {
			continue
		}

		addMatch := func(tgt Target) {
			if q.ID >= tgt.ReadID { // identity guard
				return
			}
			if !lengthRatioOK(cfg.AlphaP, q.Length, allReads[tgt.ReadID].Length) {
				return
			}
			matches = append(matches, Match{
				QueryID:   q.ID,
				QueryPos:  km.Position,
				TargetID:  tgt.ReadID,
				TargetPos: tgt.KMer.Position,
			})
		}

		if loc.Kind == LocatorSingle {
			addMatch(loc.Single)
		} else {
			for i := loc.Offset; i < loc.Offset+loc.Count; i++ {
				addMatch(idx.kmers[i])
			}
		}
	}

	if len(matches) == 0 {
		return nil
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].TargetID < matches[j].TargetID })

	type run struct {
		targetID uint32
		lo, hi   int
	}
	var runs []run
	i := 0
	for i < len(matches) {
		j := i + 1
		for j < len(matches) && matches[j].TargetID == matches[i].TargetID {
			j++
		}
		runs = append(runs, run{targetID: matches[i].TargetID, lo: i, hi: j})
		i = j
	}

	survivors := make([]*Overlap, len(runs))
	var rwg sync.WaitGroup
	for ri, rn := range runs {
		rwg.Add(1)
		go func(ri int, rn run) {
			defer rwg.Done()
			overlaps := Chain(cfg.chainConfig(), matches[rn.lo:rn.hi])
			if len(overlaps) == 0 {
				return
			}
			ov := overlaps[0] // keep the first if the chainer returns more than one
			targetLen := allReads[rn.targetID].Length
			if IsStrong(ov, cfg.BetaP, q.Length, targetLen) {
				survivors[ri] = &ov
			}
		}(ri, rn)
	}
	rwg.Wait()

	var best *Overlap
	var bestLen uint32
	for _, s := range survivors {
		if s == nil {
			continue
		}
		l := OverlapLength(*s)
		if best == nil || l > bestLen {
			best = s
			bestLen = l
		}
	}
	return best
}

func lengthRatioOK(alpha float64, lq, lt uint32) bool {
	a, b := float64(lq), float64(lt)
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return false
	}
	return lo/hi >= 1-alpha
}
