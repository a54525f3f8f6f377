// Package twobit packs nucleotide sequences into 2 bits per base, matching
// the coding A=0, C=1, G=2, T=3 used throughout the pairing pipeline.
package twobit

// base2bit maps an ASCII base to its 2-bit code, in either case. A few
// ambiguity letters also get a non-zero code (B, S, Y -> 1; K -> 2;
// U -> 3); every other byte maps to 0. Callers that must reject ambiguity
// bytes check before encoding.
var base2bit = [256]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 1, 1, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 0,
	0, 0, 0, 1, 3, 3, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0,
	0, 0, 1, 1, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 0,
	0, 0, 0, 1, 3, 3, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var bit2base = [4]byte{'A', 'C', 'G', 'T'}

// Code returns the 2-bit code of an ASCII base.
func Code(b byte) uint8 { return base2bit[b] }

// Base returns the ASCII base for a 2-bit code.
func Base(code uint8) byte { return bit2base[code&3] }

// ComplementCode returns the Watson-Crick complement of a 2-bit code.
func ComplementCode(code uint8) uint8 { return code ^ 3 }

// ComplementBase returns the complement of an ASCII base.
func ComplementBase(b byte) byte { return bit2base[(base2bit[b]^3)&3] }

// Encode packs an ASCII ACGT sequence 4 bases per byte, most-significant
// pair first.
func Encode(s []byte) []byte {
	if len(s) == 0 {
		return []byte{}
	}

	n := len(s) >> 2
	m := len(s) & 3

	packed := make([]byte, 0, n+1)

	var j int
	for i := 0; i < n; i++ {
		j = i << 2
		packed = append(packed, base2bit[s[j]]<<6+base2bit[s[j+1]]<<4+base2bit[s[j+2]]<<2+base2bit[s[j+3]])
	}

	if m == 0 {
		return packed
	}

	j = n << 2
	switch m {
	case 3:
		packed = append(packed, base2bit[s[j]]<<6+base2bit[s[j+1]]<<4+base2bit[s[j+2]]<<2)
	case 2:
		packed = append(packed, base2bit[s[j]]<<6+base2bit[s[j+1]]<<4)
	case 1:
		packed = append(packed, base2bit[s[j]]<<6)
	}

	return packed
}

// Decode unpacks a 2-bit packed sequence of the given base count back to
// ASCII.
func Decode(packed []byte, nBases int) []byte {
	if nBases == 0 {
		return []byte{}
	}

	s := make([]byte, nBases)
	n := nBases >> 2
	m := nBases & 3

	var b byte
	var j int
	for i := 0; i < n; i++ {
		j = i << 2
		b = packed[i]
		s[j] = bit2base[b>>6&3]
		s[j+1] = bit2base[b>>4&3]
		s[j+2] = bit2base[b>>2&3]
		s[j+3] = bit2base[b&3]
	}

	if m > 0 {
		b = packed[n]
		j = n << 2
		switch m {
		case 3:
			s[j] = bit2base[b>>6&3]
			s[j+1] = bit2base[b>>4&3]
			s[j+2] = bit2base[b>>2&3]
		case 2:
			s[j] = bit2base[b>>6&3]
			s[j+1] = bit2base[b>>4&3]
		case 1:
			s[j] = bit2base[b>>6&3]
		}
	}

	return s
}

// ReverseComplement returns the reverse complement of an ASCII sequence;
// character i of the output is the complement of input character
// len(s)-1-i.
func ReverseComplement(s []byte) []byte {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = ComplementBase(s[n-1-i])
	}
	return out
}
