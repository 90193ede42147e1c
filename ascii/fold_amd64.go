//go:build !noasm && amd64

package ascii

import "golang.org/x/sys/cpu"

var (
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	hasAVX2   = cpu.X86.HasAVX2
	hasSSE2   = cpu.X86.HasSSE2
)

func detectWidth() int {
	switch {
	case hasAVX512:
		return Width512
	case hasAVX2:
		return Width256
	case hasSSE2:
		return Width128
	}
	return Width64
}
