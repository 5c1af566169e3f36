package benchmarks

import (
	"context"
	"strings"
	"testing"

	"github.com/lesavot/stego"
	stegotest "github.com/lesavot/stego/testing"
)

func BenchmarkEncode_NoPassword(b *testing.B) {
	s := stegotest.TestStego(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Encode(context.Background(), stegotest.LongCover, "meet at dawn", "")
	}
}

func BenchmarkEncode_WithPassword(b *testing.B) {
	s := stegotest.TestStego(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Encode(context.Background(), stegotest.LongCover, "meet at dawn", "secret123")
	}
}

func BenchmarkDecode_NoPassword(b *testing.B) {
	s := stegotest.TestStego(b)
	text, _ := s.Encode(context.Background(), stegotest.LongCover, "meet at dawn", "")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Decode(context.Background(), text, "")
	}
}

func BenchmarkDecode_WithPassword(b *testing.B) {
	s := stegotest.TestStego(b)
	text, _ := s.Encode(context.Background(), stegotest.LongCover, "meet at dawn", "secret123")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Decode(context.Background(), text, "secret123")
	}
}

func BenchmarkChecksum(b *testing.B) {
	text := strings.Repeat("x", 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stego.Checksum(text)
	}
}

func BenchmarkDeriveKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = stego.DeriveKey("secret123", "0123456789abcdef")
	}
}

func BenchmarkDistribute(b *testing.B) {
	cover := strings.Repeat(stegotest.LongCover, 10)
	zw := stego.BinaryToZeroWidth(stego.TextToBinary(strings.Repeat("m", 256)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stego.Distribute(cover, zw)
	}
}
