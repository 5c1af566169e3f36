package stego

import (
	"strings"
	"unicode/utf16"
)

// Zero-width alphabet.
const (
	ZeroBit = '\u200B' // zero-width space
	OneBit  = '\u200C' // zero-width non-joiner
)

// unitBits is the number of bits per encoded UTF-16 code unit.
const unitBits = 16

// variantRunes are zero-width characters tolerated on extraction and read as
// ZeroBit when no regular alphabet characters are present.
var variantRunes = map[rune]bool{
	'\u200D': true,
	'\u200E': true,
	'\u200F': true,
	'\uFEFF': true,
}

// TextToBinary encodes every UTF-16 code unit of text as 16 binary digits.
func TextToBinary(text string) string {
	units := utf16.Encode([]rune(text))

	var b strings.Builder
	b.Grow(len(units) * unitBits)
	for _, u := range units {
		for bit := unitBits - 1; bit >= 0; bit-- {
			if u&(1<<bit) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// BinaryToText decodes 16-bit chunks back into text. Input whose length is
// not a multiple of 16 is right-padded with zeros, characters other than '1'
// read as zero, and chunks that decode to NUL are dropped.
func BinaryToText(binary string) string {
	binary = padBinary(binary)

	units := make([]uint16, 0, len(binary)/unitBits)
	for i := 0; i < len(binary); i += unitBits {
		var u uint16
		for _, c := range []byte(binary[i : i+unitBits]) {
			u <<= 1
			if c == '1' {
				u |= 1
			}
		}
		if u == 0 {
			continue
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}

// padBinary right-pads binary with '0' to a multiple of 16.
func padBinary(binary string) string {
	if rem := len(binary) % unitBits; rem != 0 {
		return binary + strings.Repeat("0", unitBits-rem)
	}
	return binary
}

// BinaryToZeroWidth maps '0' to ZeroBit and '1' to OneBit.
func BinaryToZeroWidth(binary string) string {
	var b strings.Builder
	b.Grow(len(binary) * 3)
	for i := 0; i < len(binary); i++ {
		switch binary[i] {
		case '0':
			b.WriteRune(ZeroBit)
		case '1':
			b.WriteRune(OneBit)
		}
	}
	return b.String()
}

// ZeroWidthToBinary maps ZeroBit to '0' and OneBit to '1', dropping anything else.
func ZeroWidthToBinary(zw string) string {
	var b strings.Builder
	for _, r := range zw {
		switch r {
		case ZeroBit:
			b.WriteByte('0')
		case OneBit:
			b.WriteByte('1')
		}
	}
	return b.String()
}

// ExtractZeroWidth collects the alphabet characters of text in order.
// If text has none, variant zero-width characters are collected instead and
// normalized to ZeroBit. The result is empty when neither is present.
func ExtractZeroWidth(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r == ZeroBit || r == OneBit {
			b.WriteRune(r)
		}
	}
	if b.Len() > 0 {
		return b.String()
	}

	for _, r := range text {
		if variantRunes[r] {
			b.WriteRune(ZeroBit)
		}
	}
	return b.String()
}

// Detect reports whether text carries any zero-width characters.
func Detect(text string) bool {
	return strings.IndexFunc(text, isZeroWidth) >= 0
}

// Strip removes every zero-width character from text, returning the visible
// cover text.
func Strip(text string) string {
	return strings.Map(func(r rune) rune {
		if isZeroWidth(r) {
			return -1
		}
		return r
	}, text)
}

func isZeroWidth(r rune) bool {
	return r == ZeroBit || r == OneBit || variantRunes[r]
}
