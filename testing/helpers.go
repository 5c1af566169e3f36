// Package testing provides test utilities for stego.
package testing

import (
	"io"
	"testing"
	"time"

	"github.com/lesavot/stego"
)

// Sample cover texts. ShortCover is appended to, LongCover is interleaved.
const (
	ShortCover = "Hello there"
	LongCover  = "The quick brown fox jumps over the lazy dog while the cat watches."
)

// FixedTime is the instant returned by TestClock.
var FixedTime = time.UnixMilli(1700000000000)

// TestClock returns a clock frozen at FixedTime.
func TestClock() func() time.Time {
	return func() time.Time { return FixedTime }
}

// TestParams returns Argon2 parameters cheap enough for tests.
func TestParams() stego.VerifierParams {
	return stego.VerifierParams{Time: 1, Memory: 64, Threads: 1}
}

// TestRand returns a deterministic byte stream starting at seed.
func TestRand(seed byte) io.Reader {
	return &countingReader{next: seed}
}

type countingReader struct {
	next byte
}

func (r *countingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}

// TestStego returns a Stego using TestClock and TestParams. Extra options are
// applied after the defaults.
func TestStego(tb testing.TB, opts ...stego.Option) *stego.Stego {
	tb.Helper()
	base := []stego.Option{
		stego.WithClock(TestClock()),
		stego.WithVerifierParams(TestParams()),
	}
	s, err := stego.New(append(base, opts...)...)
	if err != nil {
		tb.Fatalf("stego.New() error: %v", err)
	}
	return s
}

// Embed hides a raw payload string in cover, bypassing payload construction.
func Embed(cover, payload string) string {
	return stego.Distribute(cover, stego.BinaryToZeroWidth(stego.TextToBinary(payload)))
}
