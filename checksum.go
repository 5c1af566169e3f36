package stego

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// ChecksumLen is the number of hex characters in a payload checksum.
const ChecksumLen = 16

// checksumSeed holds the first eight primes.
var checksumSeed = [8]uint32{2, 3, 5, 7, 11, 13, 17, 19}

// Checksum returns the 16-character integrity checksum of text.
// The text is processed as UTF-16 code units and each accumulator is
// rendered as unsigned hex. It is not a cryptographic hash.
func Checksum(text string) string {
	return renderChecksum(checksumState(text), unsignedHex)
}

// LegacyChecksum renders the same accumulators the way the web encoder does:
// as signed 32-bit values, so an accumulator with the top bit set prints
// with a leading minus sign. It is accepted on decode only.
func LegacyChecksum(text string) string {
	return renderChecksum(checksumState(text), signedHex)
}

func checksumState(text string) [8]uint32 {
	h := checksumSeed
	units := utf16.Encode([]rune(text))

	for i, u := range units {
		c := uint32(u)
		n := uint32(i)

		h[0] = (h[0] << 5) + h[0] + c
		h[1] = (h[1] << 7) + h[1] - c
		h[2] = ((h[2] << 3) + h[2]) ^ c
		h[3] = (h[3] << 11) + h[3] + c*n
		h[4] = ((h[4] << 6) + h[4]) ^ (c << 1)
		h[5] = (h[5] << 15) + h[5] + (c >> 1)
		h[6] = ((h[6] << 4) + h[6]) ^ (c * 7)
		h[7] = (h[7] << 9) + h[7] + c*13

		if i%8 == 7 {
			for j := 0; j < 8; j++ {
				h[j] ^= h[(j+1)%8]
			}
		}
	}

	return h
}

func unsignedHex(v uint32) string {
	return strconv.FormatUint(uint64(v), 16)
}

func signedHex(v uint32) string {
	return strconv.FormatInt(int64(int32(v)), 16)
}

// renderChecksum left-pads each accumulator to 8 characters and keeps the
// first ChecksumLen characters of the concatenation.
func renderChecksum(h [8]uint32, format func(uint32) string) string {
	var b strings.Builder
	b.Grow(72)
	for _, v := range h {
		s := format(v)
		if len(s) < 8 {
			b.WriteString(strings.Repeat("0", 8-len(s)))
		}
		b.WriteString(s)
	}
	return b.String()[:ChecksumLen]
}
