package ascii

import "fmt"

// Lane widths, in bytes, of the passes a Folder can run. Each width maps to
// a register class: 64 for AVX-512, 32 for AVX2, 16 for SSE2/NEON and 8 for
// a general purpose register.
const (
	Width512 = 64
	Width256 = 32
	Width128 = 16
	Width64  = 8
	Scalar   = 0
)

// laneWidths is ordered widest first; the chain walks it in this order.
var laneWidths = [...]int{Width512, Width256, Width128, Width64}

// Folder flips the case of ASCII letters in place.
//
// A Folder with width w processes the input with the widest pass not wider
// than w, hands the remainder to the next narrower pass and finishes with a
// byte-at-a-time loop. The zero value is the scalar reference.
type Folder struct {
	width int
}

var defaultFolder = Folder{width: detectWidth()}

// NewFolder returns a Folder whose widest pass is width bytes.
// It panics if width is not one of the Width constants or Scalar.
func NewFolder(width int) Folder {
	if width != Scalar && !isLaneWidth(width) {
		panic(fmt.Sprintf("ascii: unsupported lane width %d", width))
	}
	return Folder{width: width}
}

// Width returns the widest pass of f in bytes, 0 for the scalar loop.
func (f Folder) Width() int {
	return f.width
}

// Upper converts every byte in [a-z] to upper case.
func (f Folder) Upper(b []byte) {
	f.fold(b, &upperRange)
}

// Lower converts every byte in [A-Z] to lower case.
func (f Folder) Lower(b []byte) {
	f.fold(b, &lowerRange)
}

func (f Folder) fold(b []byte, r *caseRange) {
	for _, w := range laneWidths {
		if w > f.width || len(b) < w {
			continue
		}
		n := foldLanes(b, r, w)
		b = b[n:]
	}
	foldScalar(b, r)
}

// Upper converts every byte in [a-z] to upper case, in place, using the
// widest pass available on this machine.
func Upper(b []byte) {
	defaultFolder.Upper(b)
}

// Lower converts every byte in [A-Z] to lower case, in place, using the
// widest pass available on this machine.
func Lower(b []byte) {
	defaultFolder.Lower(b)
}

// UpperScalar is the byte-at-a-time reference for Upper.
func UpperScalar(b []byte) {
	foldScalar(b, &upperRange)
}

// LowerScalar is the byte-at-a-time reference for Lower.
func LowerScalar(b []byte) {
	foldScalar(b, &lowerRange)
}

// Width reports the widest pass selected for this machine at startup.
func Width() int {
	return defaultFolder.width
}

// Widths lists the pass widths usable on this machine, widest first,
// ending with Scalar.
func Widths() []int {
	ws := make([]int, 0, len(laneWidths)+1)
	for _, w := range laneWidths {
		if w <= defaultFolder.width {
			ws = append(ws, w)
		}
	}
	return append(ws, Scalar)
}

func isLaneWidth(w int) bool {
	for _, lw := range laneWidths {
		if lw == w {
			return true
		}
	}
	return false
}

func foldScalar(b []byte, r *caseRange) {
	for i, c := range b {
		if c >= r.lo && c <= r.hi {
			b[i] = c ^ caseBit
		}
	}
}
