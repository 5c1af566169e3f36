// Package history records metadata about steganography operations.
//
// Records never contain cover text, messages, or passwords; only the shape of
// each call (mode, whether a password was used, and lengths).
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Mode is the direction of a recorded operation.
type Mode string

const (
	// ModeEncrypt records a message being hidden.
	ModeEncrypt Mode = "encrypt"

	// ModeDecrypt records a message being extracted.
	ModeDecrypt Mode = "decrypt"
)

// TypeText is the modality recorded for text steganography.
const TypeText = "text"

// Record describes one completed operation.
type Record struct {
	ID            string
	Type          string
	Mode          Mode
	HasPassword   bool
	ContentLength int // cover or stego text length, in characters
	MessageLength int // message length, in characters
	Timestamp     time.Time
}

// NewRecord returns a text record with a fresh ID.
func NewRecord(mode Mode, hasPassword bool, contentLength, messageLength int, at time.Time) Record {
	return Record{
		ID:            uuid.NewString(),
		Type:          TypeText,
		Mode:          mode,
		HasPassword:   hasPassword,
		ContentLength: contentLength,
		MessageLength: messageLength,
		Timestamp:     at,
	}
}

// Recorder persists operation records.
type Recorder interface {
	// Record stores r.
	Record(ctx context.Context, r Record) error
}

// Lister returns stored records, newest first.
type Lister interface {
	// List returns at most limit records. A limit <= 0 returns all of them.
	List(ctx context.Context, limit int) ([]Record, error)
}

// Clearer removes stored records.
type Clearer interface {
	// Clear deletes every record.
	Clear(ctx context.Context) error
}
