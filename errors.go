package stego

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNoHiddenMessage indicates the text carries no zero-width characters.
	ErrNoHiddenMessage = errors.New("no hidden message found")

	// ErrInvalidPayload indicates the recovered data is not a LESAVOT payload.
	ErrInvalidPayload = errors.New("invalid steganographic data")

	// ErrIntegrityCheckFailed indicates a checksum mismatch with no password supplied.
	ErrIntegrityCheckFailed = errors.New("data integrity check failed")

	// ErrWrongPassword indicates the supplied password does not match the payload.
	ErrWrongPassword = errors.New("wrong password")

	// ErrMalformedMetadata indicates the payload metadata could not be parsed
	// or is missing a required field.
	ErrMalformedMetadata = errors.New("malformed metadata")

	// ErrFutureTimestamp indicates the payload timestamp is later than now.
	ErrFutureTimestamp = errors.New("timestamp is in the future")

	// ErrMarshal indicates the metadata codec failed to marshal.
	ErrMarshal = errors.New("marshal failed")

	// ErrRandom indicates the random source failed to produce a salt.
	ErrRandom = errors.New("random source failed")

	// ErrInvalidOption indicates an option value was rejected by New.
	ErrInvalidOption = errors.New("invalid option")
)

// Decode stages reported by DecodeError.
const (
	StageExtract  = "extract"
	StageParse    = "parse"
	StageVerify   = "verify"
	StageMetadata = "metadata"
	StageReveal   = "reveal"
)

// DecodeError represents a failure while extracting a hidden message.
// It wraps a sentinel error with the stage that rejected the input.
type DecodeError struct {
	Err   error  // Underlying sentinel error (ErrNoHiddenMessage, etc.)
	Stage string // Decode stage that failed
	Cause error  // Original error from a lower layer, if any
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract message: %s: %s: %v", e.Stage, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("failed to extract message: %s: %s", e.Stage, e.Err.Error())
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError represents a failure while hiding a message.
type EncodeError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrRandom)
	Cause error // Original error from the codec or random source
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to hide message: %s: %v", e.Err.Error(), e.Cause)
	}
	return "failed to hide message: " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// newDecodeError creates a DecodeError for the given stage.
func newDecodeError(sentinel error, stage string, cause error) error {
	return &DecodeError{
		Err:   sentinel,
		Stage: stage,
		Cause: cause,
	}
}

// newEncodeError creates an EncodeError.
func newEncodeError(sentinel error, cause error) error {
	return &EncodeError{
		Err:   sentinel,
		Cause: cause,
	}
}
