// Package stego hides text messages inside cover text using zero-width
// Unicode characters.
//
// A message is wrapped in a signed, checksummed payload, encoded as 16 bits
// per UTF-16 code unit, mapped to two invisible characters, and spread
// through the cover text. The output renders exactly like the cover.
//
// # Payload
//
//	LESAVOT|<checksum>|{"message":"...","timestamp":"...","version":"1.1"}
//
// The checksum is a 16-hex-character rolling hash over the signature and the
// metadata JSON. It is written with unsigned accumulators; decoding also
// accepts the signed rendering produced by the web encoder (LegacyChecksum).
// Each payload character becomes 16 binary digits:
//
//	'0' -> U+200B (zero-width space)
//	'1' -> U+200C (zero-width non-joiner)
//
// # Basic Usage
//
//	s, _ := stego.New()
//
//	text, _ := s.Encode(ctx, cover, "meet at dawn", "secret123")
//	msg, _ := s.Decode(ctx, text, "secret123")
//
// Package-level Encode and Decode use a default Stego.
//
// # Passwords
//
// A password obfuscates the message with a salted XOR key stream before it
// is embedded; the stored message becomes salt|ciphertext. This is an
// obfuscation scheme kept for compatibility with existing payloads, not
// encryption. The salt carries an Argon2id tag of the password so a wrong
// password is reported as ErrWrongPassword instead of returning garbage.
// Payloads from the web encoder carry untagged salts; decode them with
// WithPasswordCheck(false).
//
// The checksum covers the obfuscated message. Decoding a password-protected
// text without a password therefore succeeds and returns salt|ciphertext.
//
// # Errors
//
// Decode failures wrap one of ErrNoHiddenMessage, ErrInvalidPayload,
// ErrIntegrityCheckFailed, ErrWrongPassword, ErrMalformedMetadata, or
// ErrFutureTimestamp in a *DecodeError; use errors.Is to match them.
//
// # Events
//
// Every operation emits capitan signals (SignalEncodeStart,
// SignalEncodeComplete, SignalDecodeStart, SignalDecodeComplete) carrying
// lengths, duration, and the error if any. Message contents and passwords are
// never part of an event.
//
// # History
//
// WithRecorder attaches a history.Recorder that receives one record per
// successful call. See the history package for in-memory and SQLite stores.
package stego
