package pairing

// Match is a shared-minimizer observation between a query and a target
// position (spec.md §3).
type Match struct {
	QueryID   uint32
	QueryPos  uint32
	TargetID  uint32
	TargetPos uint32
}

// Overlap is the bounding rectangle of a chain, extended by k on the right
// (spec.md §3, GLOSSARY).
type Overlap struct {
	QueryID     uint32
	QueryStart  uint32
	QueryEnd    uint32
	TargetID    uint32
	TargetStart uint32
	TargetEnd   uint32
}

// QuerySpan returns query_end - query_start.
func (o Overlap) QuerySpan() uint32 { return o.QueryEnd - o.QueryStart }

// TargetSpan returns target_end - target_start.
func (o Overlap) TargetSpan() uint32 { return o.TargetEnd - o.TargetStart }

// OverlapLength is the greater of the query span and the target span
// (spec.md invariant 5).
func OverlapLength(o Overlap) uint32 {
	qs, ts := o.QuerySpan(), o.TargetSpan()
	if qs > ts {
		return qs
	}
	return ts
}

// OverlapError is 1 - min(qspan,tspan)/max(qspan,tspan), used by the batch
// orchestrator to pick the least-erroneous overlap per read (spec.md
// §4.6 step 4).
func OverlapError(o Overlap) float64 {
	qs, ts := float64(o.QuerySpan()), float64(o.TargetSpan())
	lo, hi := qs, ts
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return 1
	}
	return 1 - lo/hi
}

// IsStrong reports whether an overlap's span coverage meets the beta
// threshold on both reads (spec.md §4.5 step 6).
func IsStrong(o Overlap, beta float64, queryLen, targetLen uint32) bool {
	return float64(o.QuerySpan()) > beta*float64(queryLen) &&
		float64(o.TargetSpan()) > beta*float64(targetLen)
}

// ReverseOverlap swaps the query and target roles of an overlap, used
// when a caller needs the same chain expressed from the other read's
// point of view.
func ReverseOverlap(o Overlap) Overlap {
	return Overlap{
		QueryID:     o.TargetID,
		QueryStart:  o.TargetStart,
		QueryEnd:    o.TargetEnd,
		TargetID:    o.QueryID,
		TargetStart: o.QueryStart,
		TargetEnd:   o.QueryEnd,
	}
}
