package stego

import (
	"fmt"
	"io"
	"time"

	"github.com/lesavot/stego/history"
)

// Option configures a Stego.
type Option func(*Stego) error

// WithClock sets the time source used for payload timestamps and the
// future-timestamp check.
func WithClock(now func() time.Time) Option {
	return func(s *Stego) error {
		if now == nil {
			return fmt.Errorf("%w: nil clock", ErrInvalidOption)
		}
		s.clock = now
		return nil
	}
}

// WithRand sets the random source for salts. Defaults to crypto/rand.
// Ignored when WithObfuscator is used.
func WithRand(r io.Reader) Option {
	return func(s *Stego) error {
		if r == nil {
			return fmt.Errorf("%w: nil random source", ErrInvalidOption)
		}
		s.rand = r
		return nil
	}
}

// WithCodec replaces the metadata codec.
func WithCodec(c Codec) Option {
	return func(s *Stego) error {
		if c == nil {
			return fmt.Errorf("%w: nil codec", ErrInvalidOption)
		}
		s.codec = c
		return nil
	}
}

// WithObfuscator replaces the password obfuscator.
func WithObfuscator(o Obfuscator) Option {
	return func(s *Stego) error {
		if o == nil {
			return fmt.Errorf("%w: nil obfuscator", ErrInvalidOption)
		}
		s.obfuscator = o
		return nil
	}
}

// WithOutputMode selects the primary text returned by Hide.
func WithOutputMode(mode OutputMode) Option {
	return func(s *Stego) error {
		if !IsValidOutputMode(mode) {
			return fmt.Errorf("%w: output mode %q", ErrInvalidOption, mode)
		}
		s.mode = mode
		return nil
	}
}

// WithPasswordCheck toggles the password tag stored in salts.
//
// With the check on, a salt holds 4 random bytes and a 4-byte tag, so a
// wrong password is reported as ErrWrongPassword. The short nonce makes a
// repeated salt, and so a repeated key stream, likely after about 2^16
// encodes under one password.
//
// Disable it to write 8 random salt bytes and to decode payloads from the
// web encoder, which writes no tag. A wrong password then yields garbage,
// not an error.
func WithPasswordCheck(enabled bool) Option {
	return func(s *Stego) error {
		s.verify = enabled
		return nil
	}
}

// WithVerifierParams sets the Argon2id parameters of the password tag.
// Encoder and decoder must agree on them.
func WithVerifierParams(p VerifierParams) Option {
	return func(s *Stego) error {
		if p.Time == 0 || p.Threads == 0 {
			return fmt.Errorf("%w: verifier time and threads must be positive", ErrInvalidOption)
		}
		s.params = p
		return nil
	}
}

// WithRecorder records metadata about every successful call.
func WithRecorder(r history.Recorder) Option {
	return func(s *Stego) error {
		s.recorder = r
		return nil
	}
}
