package pairing

import (
	"math"
	"sort"
	"sync"
)

// Chain implements the chainer (spec.md §4.3): matches sharing one
// (query_id, target_id) are clustered by a target-position gap bound,
// then each sufficiently large cluster contributes the longest
// strictly-increasing-by-query_pos subsequence as a single overlap.
func Chain(cfg ChainConfig, matches []Match) []Overlap {
	if len(matches) == 0 {
		return nil
	}

	ms := poolMatches.Get().([]Match)
	ms = append(ms[:0], matches...)
	defer func() {
		ms = ms[:0]
		poolMatches.Put(ms)
	}()

	sort.Slice(ms, func(a, b int) bool { return ms[a].TargetPos < ms[b].TargetPos })

	sentinel := Match{
		QueryID:   ms[0].QueryID,
		TargetID:  ms[0].TargetID,
		QueryPos:  math.MaxUint32,
		TargetPos: math.MaxUint32,
	}
	ms = append(ms, sentinel)

	var out []Overlap
	j := 0
	for i := 1; i < len(ms); i++ {
		if ms[i].TargetPos-ms[i-1].TargetPos > cfg.MaxChainGapLength {
			if uint32(i-j) >= cfg.MinChainLength {
				if ov, ok := chainCluster(ms[j:i], cfg.KmerLen); ok {
					out = append(out, ov)
				}
			}
			j = i
		}
	}
	return out
}

var poolMatches = &sync.Pool{New: func() interface{} {
	return make([]Match, 0, 1024)
}}

var poolLISState = &sync.Pool{New: func() interface{} {
	return &lisState{
		tails: make([]int, 0, 1024),
		prev:  make([]int, 0, 1024),
	}
}}

type lisState struct {
	tails []int
	prev  []int
}

// chainCluster extracts the longest strictly-increasing-by-query_pos
// subsequence of a target-position-sorted cluster via patience sort with
// predecessor backtracking (O(n log n)), matching the map.cc reference
// chainer's lower_bound tie-break: the leftmost patience stack whose top
// is >= the incoming query_pos.
func chainCluster(cluster []Match, kmerLen uint32) (Overlap, bool) {
	st := poolLISState.Get().(*lisState)
	defer func() {
		st.tails = st.tails[:0]
		st.prev = st.prev[:0]
		poolLISState.Put(st)
	}()

	tails := st.tails
	if cap(st.prev) < len(cluster) {
		st.prev = make([]int, len(cluster))
	} else {
		st.prev = st.prev[:len(cluster)]
	}
	prev := st.prev

	for i, m := range cluster {
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if cluster[tails[mid]].QueryPos < m.QueryPos {
				lo = mid + 1
			} else {
				hi = mid
			}
		}

		if lo > 0 {
			prev[i] = tails[lo-1]
		} else {
			prev[i] = -1
		}

		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}
	st.tails = tails

	if len(tails) == 0 {
		return Overlap{}, false
	}

	length := len(tails)
	chain := make([]Match, length)
	k := tails[length-1]
	for idx := length - 1; idx >= 0; idx-- {
		chain[idx] = cluster[k]
		k = prev[k]
	}

	first, last := chain[0], chain[length-1]
	return Overlap{
		QueryID:     first.QueryID,
		QueryStart:  first.QueryPos,
		QueryEnd:    last.QueryPos + kmerLen,
		TargetID:    first.TargetID,
		TargetStart: first.TargetPos,
		TargetEnd:   last.TargetPos + kmerLen,
	}, true
}
