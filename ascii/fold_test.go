package ascii

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allWidths() []int {
	return []int{Width512, Width256, Width128, Width64, Scalar}
}

func makeBytes(rnd *rand.Rand, n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rnd.Uint32())
	}
	return data
}

func TestScalarFold(t *testing.T) {
	tests := []struct {
		in, upper, lower string
	}{
		{"", "", ""},
		{"Alex!", "ALEX!", "alex!"},
		{"@[`{", "@[`{", "@[`{"},
		{"azAZ", "AZAZ", "azaz"},
		{"0123456789", "0123456789", "0123456789"},
		{"\xe1\xc1\x80\xff", "\xe1\xc1\x80\xff", "\xe1\xc1\x80\xff"},
		{"Hello, World", "HELLO, WORLD", "hello, world"},
	}

	for _, tt := range tests {
		up := []byte(tt.in)
		UpperScalar(up)
		if string(up) != tt.upper {
			t.Errorf("UpperScalar(%q) = %q, want %q", tt.in, up, tt.upper)
		}

		low := []byte(tt.in)
		LowerScalar(low)
		if string(low) != tt.lower {
			t.Errorf("LowerScalar(%q) = %q, want %q", tt.in, low, tt.lower)
		}
	}
}

func TestCaseRangeMaskEveryByte(t *testing.T) {
	for _, r := range []*caseRange{&upperRange, &lowerRange} {
		for c := 0; c < 256; c++ {
			for pos := 0; pos < 8; pos++ {
				var word [8]byte
				for i := range word {
					// fill the other lanes with neighbours of the range edges
					word[i] = []byte{r.lo - 1, r.hi + 1, 0x7f, 0xff}[i%4]
				}
				word[pos] = byte(c)
				want := word
				foldScalar(want[:], r)

				got := word
				r.word(got[:])
				if got != want {
					t.Fatalf("range [%c-%c] byte %#02x at lane %d: got % x, want % x", r.lo, r.hi, c, pos, got, want)
				}
			}
		}
	}
}

func TestFolderMatchesScalar(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for n := 0; n <= 300; n++ {
		src := makeBytes(rnd, n)
		wantUp := bytes.Clone(src)
		UpperScalar(wantUp)
		wantLow := bytes.Clone(src)
		LowerScalar(wantLow)

		for _, w := range allWidths() {
			f := NewFolder(w)

			up := bytes.Clone(src)
			f.Upper(up)
			if !bytes.Equal(up, wantUp) {
				t.Fatalf("width %d Upper(len %d) = % x, want % x", w, n, up, wantUp)
			}

			low := bytes.Clone(src)
			f.Lower(low)
			if !bytes.Equal(low, wantLow) {
				t.Fatalf("width %d Lower(len %d) = % x, want % x", w, n, low, wantLow)
			}
		}
	}
}

func TestFolderUnalignedSubslices(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	base := makeBytes(rnd, 512)

	for off := 0; off < 16; off++ {
		for _, n := range []int{7, 8, 9, 15, 16, 17, 31, 33, 63, 64, 65, 127, 200} {
			want := bytes.Clone(base)
			UpperScalar(want[off : off+n])

			for _, w := range allWidths() {
				got := bytes.Clone(base)
				NewFolder(w).Upper(got[off : off+n])
				require.Equal(t, want, got, "width %d off %d len %d", w, off, n)
			}
		}
	}
}

func TestFoldInvolution(t *testing.T) {
	letters := []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	rnd := rand.New(rand.NewSource(3))

	for n := 0; n < 100; n++ {
		s := make([]byte, n)
		for i := range s {
			s[i] = letters[rnd.Intn(len(letters))]
		}

		lowered := bytes.Clone(s)
		Lower(lowered)

		upThenLow := bytes.Clone(s)
		Upper(upThenLow)
		assert.Len(t, upThenLow, n)
		Lower(upThenLow)
		assert.Equal(t, lowered, upThenLow)

		uppered := bytes.Clone(s)
		Upper(uppered)

		lowThenUp := bytes.Clone(s)
		Lower(lowThenUp)
		assert.Len(t, lowThenUp, n)
		Upper(lowThenUp)
		assert.Equal(t, uppered, lowThenUp)
	}
}

func TestNewFolderRejectsUnknownWidth(t *testing.T) {
	for _, w := range []int{-1, 1, 4, 12, 24, 128} {
		assert.Panics(t, func() { NewFolder(w) }, "width %d", w)
	}
	for _, w := range allWidths() {
		assert.Equal(t, w, NewFolder(w).Width())
	}
	assert.Equal(t, Scalar, Folder{}.Width())
}

func TestWidths(t *testing.T) {
	ws := Widths()
	require.NotEmpty(t, ws)
	assert.Equal(t, Scalar, ws[len(ws)-1])
	for i, w := range ws {
		assert.LessOrEqual(t, w, Width())
		if i > 0 {
			assert.Less(t, w, ws[i-1])
		}
	}
}

func FuzzFolderMatchesScalar(f *testing.F) {
	f.Add([]byte("Alex!"))
	f.Add([]byte("the quick brown fox jumps over the lazy dog THE QUICK BROWN FOX"))
	f.Add(bytes.Repeat([]byte{'`', 'a', 'z', '{', '@', 'A', 'Z', '['}, 20))
	f.Add([]byte("\x80\xe1\xfa\xc1\xda"))

	f.Fuzz(func(t *testing.T, in []byte) {
		wantUp := bytes.Clone(in)
		UpperScalar(wantUp)
		wantLow := bytes.Clone(in)
		LowerScalar(wantLow)

		for _, w := range allWidths() {
			up := bytes.Clone(in)
			NewFolder(w).Upper(up)
			if !bytes.Equal(up, wantUp) {
				t.Fatalf("width %d Upper(%q) = %q, want %q", w, in, up, wantUp)
			}
			low := bytes.Clone(in)
			NewFolder(w).Lower(low)
			if !bytes.Equal(low, wantLow) {
				t.Fatalf("width %d Lower(%q) = %q, want %q", w, in, low, wantLow)
			}
		}
	})
}

func BenchmarkUpper(b *testing.B) {
	rnd := rand.New(rand.NewSource(0))

	for _, n := range []int{7, 15, 44, 100, 1000, 64 << 10} {
		buf := makeBytes(rnd, n)

		for _, w := range allWidths() {
			f := NewFolder(w)
			b.Run(fmt.Sprintf("w%d-%d", w, n), func(b *testing.B) {
				b.SetBytes(int64(n))
				for i := 0; i < b.N; i++ {
					f.Upper(buf)
				}
			})
		}
	}
}
