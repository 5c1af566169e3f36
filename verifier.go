package stego

import (
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// passwordTagLen is the number of tag bytes stored in the salt.
const passwordTagLen = 4

// VerifierParams configures the Argon2id password tag embedded in salts.
type VerifierParams struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory usage in KiB
	Threads uint8  // Parallelism factor
}

// DefaultVerifierParams returns the parameters used unless overridden.
// The tag only has to separate passwords, so they are far lighter than
// account-password settings.
func DefaultVerifierParams() VerifierParams {
	return VerifierParams{
		Time:    1,
		Memory:  8 * 1024, // 8 MiB
		Threads: 1,
	}
}

// passwordTag returns 8 hex characters binding password to nonce.
func passwordTag(password, nonce string, p VerifierParams) string {
	if p.Time == 0 {
		p.Time = 1
	}
	if p.Threads == 0 {
		p.Threads = 1
	}
	if p.Memory < 8*uint32(p.Threads) {
		p.Memory = 8 * uint32(p.Threads)
	}

	tag := argon2.IDKey([]byte(password), []byte(nonce), p.Time, p.Memory, p.Threads, passwordTagLen)
	return hex.EncodeToString(tag)
}
