package ascii

import "encoding/binary"

const (
	lsb = 0x0101010101010101
	msb = 0x8080808080808080

	caseBit = 0x20
)

// caseRange describes the letters a fold flips. ge and gt are the per-byte
// addends that carry into bit 7 when the low seven bits are >= lo and > hi.
type caseRange struct {
	lo, hi byte
	ge, gt uint64
}

var (
	upperRange = caseRange{lo: 'a', hi: 'z', ge: lsb * (0x80 - 'a'), gt: lsb * (0x80 - 'z' - 1)}
	lowerRange = caseRange{lo: 'A', hi: 'Z', ge: lsb * (0x80 - 'A'), gt: lsb * (0x80 - 'Z' - 1)}
)

// mask returns caseBit in every byte of x that lies in [lo, hi].
//
// The low seven bits of each byte are at most 0x7f and both addends are at
// most 0x3f, so no sum carries into the neighbouring byte. Bytes with bit 7
// set are never letters and are cleared by the final &^ x.
func (r *caseRange) mask(x uint64) uint64 {
	low := x &^ msb
	in := (low + r.ge) &^ (low + r.gt) &^ x & msb
	return in >> 2
}

func (r *caseRange) word(b []byte) {
	x := binary.LittleEndian.Uint64(b)
	binary.LittleEndian.PutUint64(b, x^r.mask(x))
}

// foldLanes runs the width-byte pass over the longest prefix of b that is a
// whole number of lanes and returns the number of bytes consumed.
func foldLanes(b []byte, r *caseRange, width int) int {
	switch width {
	case Width512:
		return foldLanes64(b, r)
	case Width256:
		return foldLanes32(b, r)
	case Width128:
		return foldLanes16(b, r)
	case Width64:
		return foldLanes8(b, r)
	}
	return 0
}

func foldLanes64(b []byte, r *caseRange) int {
	n := len(b) &^ (Width512 - 1)
	for i := 0; i < n; i += Width512 {
		lane := b[i : i+Width512 : i+Width512]
		for j := 0; j < Width512; j += 8 {
			r.word(lane[j:])
		}
	}
	return n
}

func foldLanes32(b []byte, r *caseRange) int {
	n := len(b) &^ (Width256 - 1)
	for i := 0; i < n; i += Width256 {
		lane := b[i : i+Width256 : i+Width256]
		r.word(lane[0:])
		r.word(lane[8:])
		r.word(lane[16:])
		r.word(lane[24:])
	}
	return n
}

func foldLanes16(b []byte, r *caseRange) int {
	n := len(b) &^ (Width128 - 1)
	for i := 0; i < n; i += Width128 {
		lane := b[i : i+Width128 : i+Width128]
		r.word(lane[0:])
		r.word(lane[8:])
	}
	return n
}

func foldLanes8(b []byte, r *caseRange) int {
	n := len(b) &^ (Width64 - 1)
	for i := 0; i < n; i += Width64 {
		r.word(b[i : i+Width64 : i+Width64])
	}
	return n
}
