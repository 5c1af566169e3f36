package stego

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
)

// Key derivation constants. Changing either breaks existing payloads.
const (
	MinKeyLen     = 32
	KeyIterations = 2000
)

// SaltLen is the length of the hex salt prefixed to obfuscated messages.
const SaltLen = 16

// Obfuscator handles password-keyed message obfuscation.
type Obfuscator interface {
	// Obfuscate transforms message into its salt|ciphertext form.
	Obfuscate(message, password string) (string, error)

	// Reveal inverts Obfuscate. Input without a salt separator is returned
	// unchanged. Implementations that can tell a wrong password apart
	// return ErrWrongPassword.
	Reveal(obfuscated, password string) (string, error)
}

// xorObfuscator implements the salted XOR scheme used by LESAVOT payloads.
// It is not a cipher; it exists for compatibility with encoded texts.
type xorObfuscator struct {
	rand   io.Reader
	verify bool
	params VerifierParams
}

// XOR returns the LESAVOT obfuscator. When verify is set the salt carries a
// password tag so Reveal can report ErrWrongPassword. A nil reader uses
// crypto/rand.
func XOR(r io.Reader, verify bool, params VerifierParams) Obfuscator {
	if r == nil {
		r = rand.Reader
	}
	return &xorObfuscator{rand: r, verify: verify, params: params}
}

func (o *xorObfuscator) Obfuscate(message, password string) (string, error) {
	salt, err := o.newSalt(password)
	if err != nil {
		return "", err
	}

	key := DeriveKey(password, salt)
	return salt + Separator + xorString(message, key), nil
}

func (o *xorObfuscator) Reveal(obfuscated, password string) (string, error) {
	salt, cipher, found := strings.Cut(obfuscated, Separator)
	if !found {
		return obfuscated, nil
	}

	if o.verify {
		if !isSalt(salt) {
			return obfuscated, nil
		}
		nonce, tag := salt[:SaltLen/2], salt[SaltLen/2:]
		want := passwordTag(password, nonce, o.params)
		if subtle.ConstantTimeCompare([]byte(tag), []byte(want)) != 1 {
			return "", ErrWrongPassword
		}
	}

	key := DeriveKey(password, salt)
	return xorString(cipher, key), nil
}

// newSalt returns 16 lowercase hex characters. With verification enabled the
// second half is the password tag over the first half.
func (o *xorObfuscator) newSalt(password string) (string, error) {
	n := SaltLen / 2
	if o.verify {
		n = SaltLen / 4
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(o.rand, buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	salt := hex.EncodeToString(buf)
	if o.verify {
		salt += passwordTag(password, salt, o.params)
	}
	return salt, nil
}

// DeriveKey expands password and salt into the XOR key stream.
// The seed is the UTF-16 code units of password+salt, repeated cyclically
// to at least MinKeyLen entries, then mixed for KeyIterations rounds.
func DeriveKey(password, salt string) []byte {
	seed := utf16.Encode([]rune(password + salt))
	if len(seed) == 0 {
		seed = []uint16{0}
	}

	key := make([]int, len(seed), max(len(seed), MinKeyLen))
	for i, u := range seed {
		key[i] = int(u)
	}
	for len(key) < MinKeyLen {
		key = append(key, key[len(key)%len(seed)])
	}

	n := len(key)
	for round := 0; round < KeyIterations; round++ {
		for j := 0; j < n; j++ {
			prev := key[(j-1+n)%n]
			next := key[(j+1)%n]
			key[j] = (key[j] + prev + next + round) % 256
		}
	}

	out := make([]byte, n)
	for i, v := range key {
		out[i] = byte(v)
	}
	return out
}

// xorUnits applies the position-scrambled key to UTF-16 code units.
// Only the low byte of each unit changes, so surrogate pairs stay pairs.
func xorUnits(units []uint16, key []byte) []uint16 {
	out := make([]uint16, len(units))
	for i, u := range units {
		out[i] = u ^ uint16(key[(i*13+7)%len(key)])
	}
	return out
}

func xorString(s string, key []byte) string {
	return string(utf16.Decode(xorUnits(utf16.Encode([]rune(s)), key)))
}

func isSalt(s string) bool {
	if len(s) != SaltLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
