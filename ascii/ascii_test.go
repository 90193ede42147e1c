package ascii

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unicode"

	segAscii "github.com/segmentio/asm/ascii"
	"github.com/stretchr/testify/assert"
)

func makeASCII(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rand.Uint32() & 0x7f)
	}
	return data
}

type ValidTest struct {
	in  string
	exp bool
}

var validTests = []ValidTest{
	{"", true},
	{"a", true},
	{"abc", true},
	{"Ж", false},
	{"брэд-ЛГТМ", false},
	{"☺☻☹", false},
	{"aa\xe2", false},
	{string([]byte{66, 250}), false},
	{"a�b", false},
	{"hellowo\xff", false},
	{"hellowor", true},
	{"with\x00nul", true},
}

func TestValidString(t *testing.T) {
	for _, vt := range validTests {
		for _, pad := range []string{"", "0123456789ab", strings.Repeat("x", 40)} {
			s := pad + vt.in
			if ValidString(s) != vt.exp {
				t.Errorf("ValidString(%q) = %v; want %v", s, !vt.exp, vt.exp)
			}
			if ValidString([]byte(s)) != vt.exp {
				t.Errorf("ValidString([]byte(%q)) = %v; want %v", s, !vt.exp, vt.exp)
			}
		}
	}
}

func TestIndexMask(t *testing.T) {
	for i := 4; i < 1200; i++ {
		data := makeASCII(i)
		if !ValidString(data) {
			t.Errorf("ValidString(%q) = false; want true", data)
		}
		if res := IndexMask(string(data), 0x80); res != -1 {
			t.Errorf("IndexMask([%d]) = %d; want %d", len(data), res, -1)
		}

		idx := rand.Intn(i)
		data[idx] |= 0x80
		if ValidString(data) {
			t.Errorf("ValidString(%q) = true; want false", data)
		}
		if res := IndexMask(data, 0x80); res != idx {
			t.Errorf("IndexMask([%d]) = %d; want %d", len(data), res, idx)
		}
	}
}

func TestEqualFoldMatchesSegment(t *testing.T) {
	for n := 0; n < 200; n++ {
		a := makeASCII(n)
		b := []byte(string(a))

		// try to flip at least one byte
		for k := 0; k < 3 && n > 0; k++ {
			idx := rand.Intn(n)
			if unicode.IsUpper(rune(b[idx])) {
				b[idx] = byte(unicode.ToLower(rune(b[idx])))
			} else if unicode.IsLower(rune(b[idx])) {
				b[idx] = byte(unicode.ToUpper(rune(b[idx])))
			}
		}
		if n > 0 && rand.Intn(4) == 0 {
			b[rand.Intn(n)] ^= 0x01
		}

		want := segAscii.EqualFoldString(string(a), string(b))
		assert.Equal(t, want, EqualFold(a, b), "EqualFold(%q, %q)", a, b)
		assert.Equal(t, want, EqualFold(string(a), string(b)), "EqualFold(%q, %q)", a, b)
	}
}

func TestEqualFoldNonLetters(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"@", "`", false},
		{"[", "{", false},
		{"\xc1", "\xe1", false},
		{"ABCDEFGH@", "abcdefgh`", false},
		{"ABCDEFGHIJ", "abcdefghij", true},
		{"abc", "abcd", false},
	}
	for _, tt := range tests {
		if got := EqualFold(tt.a, tt.b); got != tt.want {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIndexFold(t *testing.T) {
	tests := []struct {
		str, substr string
		want        int
	}{
		{"abc", "bc", 1},
		{"abc", "bcd", -1},
		{"abc", "", 0},
		{"", "a", -1},
		{"0123abcd", "B", 5},
		{"xx01xx", "01", 2},
		{"xxxx0123456789ABCDEF", "0123456789abcdef", 4},
		{"xx0123456789ABCDEFx", "0123456789ABCDEFG", -1},
		{"hello WORLD", "o w", 4},
		{strings.Repeat("x", 100) + "needle", "NEEDLE", 100},
		{"000", "0\x00", -1},
	}

	for _, tt := range tests {
		if got := IndexFold(tt.str, tt.substr); got != tt.want {
			t.Errorf("IndexFold(%q, %q) = %d, want %d", tt.str, tt.substr, got, tt.want)
		}
		if got := IndexFold([]byte(tt.str), []byte(tt.substr)); got != tt.want {
			t.Errorf("IndexFold([]byte(%q), %q) = %d, want %d", tt.str, tt.substr, got, tt.want)
		}
	}
}

func TestRareByte(t *testing.T) {
	tests := []struct {
		needle string
		want   int
	}{
		{"a", 0},
		{"eeeQ", 3},
		{"Zeta", 0},
		{"the {x}", 6},
	}
	for _, tt := range tests {
		got := rareByte(tt.needle)
		assert.Equal(t, tt.want, got, "rareByte(%q)", tt.needle)
		assert.LessOrEqual(t, byteRank[toLower(tt.needle[got])], byteRank[toLower(tt.needle[0])])
	}
}

func TestHasPrefixSuffixFold(t *testing.T) {
	assert.True(t, HasPrefixFold("Content-Type", "content-"))
	assert.False(t, HasPrefixFold("Con", "content-"))
	assert.True(t, HasSuffixFold("abcdefghijklmnop", "IJKLMNOP"))
	assert.False(t, HasSuffixFold("0123456789", "onal6789"))
	assert.False(t, HasSuffixFold("abc", "zabc"))
}

func equalFoldBytewise(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if toLower(a[i]) != toLower(b[i]) {
			return false
		}
	}
	return true
}

func FuzzEqualFold(f *testing.F) {
	f.Add("01234567", "01234567")
	f.Add("abcd", "ABCD")
	f.Add("EqualFold", "equalFold")

	f.Fuzz(func(t *testing.T, in1, in2 string) {
		if !ValidString(in1) || !ValidString(in2) {
			t.Skip()
		}

		res := EqualFold(in1, in2)
		stdRes := strings.EqualFold(in1, in2)
		if res != stdRes {
			t.Fatalf("EqualFold(%q, %q) = %v; want %v", in1, in2, res, stdRes)
		}
	})
}

func FuzzIndexFold(f *testing.F) {
	f.Add("abcdefghijklmnopqrstuvwxyz01234567890", "klmno")
	f.Add("abcdefghABCDEFGH01234567890", "H")
	f.Add("\x80ABC", "abc")
	f.Add("test\xfe\xffend", "\xfe\xff")

	f.Fuzz(func(t *testing.T, istr, isubstr string) {
		want := -1
		for i := 0; i+len(isubstr) <= len(istr); i++ {
			if equalFoldBytewise(istr[i:i+len(isubstr)], isubstr) {
				want = i
				break
			}
		}
		if res := IndexFold(istr, isubstr); res != want {
			t.Fatalf("IndexFold(%q, %q) = %v; want %v", istr, isubstr, res, want)
		}
	})
}

func BenchmarkAsciiEqualFold(b *testing.B) {
	for _, n := range []int{1, 7, 15, 44, 100, 1000} {
		asciiBuf := makeASCII(n)
		s1 := string(asciiBuf)
		s2 := strings.ToUpper(s1)

		b.Run(fmt.Sprintf("go-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(s1)))
			for i := 0; i < b.N; i++ {
				EqualFold(s1, s2)
			}
		})

		b.Run(fmt.Sprintf("segment-%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(s1)))
			for i := 0; i < b.N; i++ {
				segAscii.EqualFoldString(s1, s2)
			}
		})
	}
}
