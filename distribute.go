package stego

import (
	"strings"
	"unicode/utf8"
)

// Distribution tuning.
const (
	// InterleaveThreshold is the cover length above which zero-width
	// characters are spread through the text instead of appended.
	InterleaveThreshold = 20

	minInsertEvery = 5
	maxRunLen      = 4
)

// Distribute embeds zw into cover. Covers longer than InterleaveThreshold
// characters get runs of at most four zero-width characters after every
// n-th character; shorter covers get zw appended. Positions are counted in
// code points so surrogate pairs are never split. The web encoder counts
// UTF-16 units instead, so placement differs from it for covers with
// characters outside the BMP; decoding is unaffected.
func Distribute(cover, zw string) string {
	if utf8.RuneCountInString(cover) <= InterleaveThreshold {
		return cover + zw
	}
	return interleave(cover, zw)
}

func interleave(cover, zw string) string {
	text := []rune(cover)
	bits := []rune(zw)

	insertEvery := max(minInsertEvery, len(text)/(len(bits)+1))

	var b strings.Builder
	b.Grow(len(cover) + len(zw))

	next := 0
	for i, r := range text {
		b.WriteRune(r)

		if i > 0 && i%insertEvery == 0 && next < len(bits) {
			n := min(maxRunLen, len(bits)-next)
			b.WriteString(string(bits[next : next+n]))
			next += n
		}
	}

	if next < len(bits) {
		b.WriteString(string(bits[next:]))
	}
	return b.String()
}
