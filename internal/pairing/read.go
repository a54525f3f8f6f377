package pairing

import "github.com/bio-rcmatch/rcmatch/internal/twobit"

// Read is an immutable nucleotide record (spec.md §3). Id is assigned by
// the orchestrator after length-sorting; Bases is 2-bit packed.
type Read struct {
	ID     uint32
	Name   string
	Length uint32
	Bases  []byte
}

// NewRead packs an ASCII ACGT sequence into a Read. The id is left zero;
// the orchestrator assigns it during length-sorting.
func NewRead(name string, seq []byte) *Read {
	return &Read{
		Name:   name,
		Length: uint32(len(seq)),
		Bases:  twobit.Encode(seq),
	}
}

// Decode returns the forward-strand ASCII sequence.
func (r *Read) Decode() []byte {
	return twobit.Decode(r.Bases, int(r.Length))
}

// ReverseComplementString returns the reverse complement of the forward
// strand, computed via the 2-bit decoder (spec.md §4.4 step 1).
func (r *Read) ReverseComplementString() []byte {
	return twobit.ReverseComplement(r.Decode())
}
