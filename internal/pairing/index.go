package pairing

import (
	"sync"

	"github.com/twotwotwo/sorts"
)

// Target is an index entry: which read a k-mer came from, and the k-mer
// itself (spec.md §3).
type Target struct {
	ReadID uint32
	KMer   KMer
}

// LocatorKind discriminates the two KMerLocator arms.
type LocatorKind uint8

const (
	// LocatorSingle holds the locator's Target directly, inlining the
	// common low-frequency case (spec.md §9, "tagged union for
	// locators").
	LocatorSingle LocatorKind = iota
	// LocatorMany refers to a contiguous [Offset, Offset+Count) run in
	// Index.kmers.
	LocatorMany
)

// KMerLocator is the sum type `Single(Target) | Many(offset, count)` of
// spec.md §3. Count >= 1 always; Count == 1 implies Kind == LocatorSingle.
type KMerLocator struct {
	Kind   LocatorKind
	Single Target
	Offset uint32
	Count  uint32
}

// Index is the reverse-complement minimizer index built per batch
// (spec.md §3, §4.4). locations and kmers are created together and
// released together: there is no partial lifetime.
type Index struct {
	locations map[uint64]KMerLocator
	kmers     []Target
	counts    []uint32 // per-distinct-value occurrence counts, for FrequencyThreshold
}

// Lookup returns the locator for a k-mer value, if present.
func (idx *Index) Lookup(value uint64) (KMerLocator, bool) {
	loc, ok := idx.locations[value]
	return loc, ok
}

// TargetAt returns the i-th entry of the backing target array; callers
// use it together with a LocatorMany's Offset/Count.
func (idx *Index) TargetAt(i uint32) Target { return idx.kmers[i] }

// Size is the number of target entries held by the index.
func (idx *Index) Size() int { return len(idx.kmers) }

// BuildIndex implements the RC-index builder (spec.md §4.4): for each
// read in the batch, sketch its reverse complement, then merge, sort,
// and group the resulting k-mers into a hash index.
func BuildIndex(cfg Config, batchReads []*Read) *Index {
	scratches := make([][]Target, len(batchReads))

	var wg sync.WaitGroup
	tokens := make(chan struct{}, threadCount(cfg.Threads))
	for i, r := range batchReads {
		wg.Add(1)
		tokens <- struct{}{}
		go func(i int, r *Read) {
			defer func() {
				<-tokens
				wg.Done()
			}()
			rc := r.ReverseComplementString()
			sketch := Minimize(rc, cfg.KmerLen, cfg.WindowLen)
			scratch := make([]Target, len(sketch))
			for j, km := range sketch {
				scratch[j] = Target{ReadID: r.ID, KMer: km}
			}
			scratches[i] = scratch
		}(i, r)
	}
	wg.Wait()

	total := 0
	for _, s := range scratches {
		total += len(s)
	}
	kmers := make([]Target, 0, total)
	for i := range scratches {
		kmers = append(kmers, scratches[i]...)
		scratches[i] = nil // release as consumed, capping peak memory
	}

	sorts.Quicksort(targetsByValue(kmers))

	locations := make(map[uint64]KMerLocator, total)
	counts := make([]uint32, 0, total)

	i := 0
	for i < len(kmers) {
		j := i + 1
		for j < len(kmers) && kmers[j].KMer.Value == kmers[i].KMer.Value {
			j++
		}
		count := uint32(j - i)
		value := kmers[i].KMer.Value
		if count == 1 {
			locations[value] = KMerLocator{Kind: LocatorSingle, Single: kmers[i], Count: 1}
		} else {
			locations[value] = KMerLocator{Kind: LocatorMany, Offset: uint32(i), Count: count}
		}
		counts = append(counts, count)
		i = j
	}

	return &Index{locations: locations, kmers: kmers, counts: counts}
}

func threadCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

type targetsByValue []Target

func (s targetsByValue) Len() int      { return len(s) }
func (s targetsByValue) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s targetsByValue) Less(i, j int) bool {
	return kmerLess(s[i].KMer, s[j].KMer)
}
