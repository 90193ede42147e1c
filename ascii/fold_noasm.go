//go:build noasm

package ascii

func detectWidth() int {
	return Scalar
}
