//go:build !noasm && arm64

package ascii

import "golang.org/x/sys/cpu"

var hasASIMD = cpu.ARM64.HasASIMD

func detectWidth() int {
	if hasASIMD {
		return Width128
	}
	return Width64
}
