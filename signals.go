package stego

import (
	"context"
	"errors"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalCreated        = capitan.NewSignal("stego.created", "Steganographer instantiated")
	SignalEncodeStart    = capitan.NewSignal("stego.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("stego.encode.complete", "Encode operation finished")
	SignalDecodeStart    = capitan.NewSignal("stego.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("stego.decode.complete", "Decode operation finished")
	SignalRecordFailed   = capitan.NewSignal("stego.history.failed", "History record could not be stored")
)

// Keys for typed event data.
var (
	KeyContentType   = capitan.NewStringKey("content_type")
	KeyOutputMode    = capitan.NewStringKey("output_mode")
	KeyProtection    = capitan.NewStringKey("protection")
	KeyStage         = capitan.NewStringKey("stage")
	KeyContentLength = capitan.NewIntKey("content_length")
	KeyMessageLength = capitan.NewIntKey("message_length")
	KeyPayloadBits   = capitan.NewIntKey("payload_bits")
	KeyDuration      = capitan.NewDurationKey("duration")
	KeyError         = capitan.NewErrorKey("error")
)

// protection labels whether a password was involved.
func protection(password string) string {
	if password == "" {
		return "none"
	}
	return "password"
}

// emitCreated emits an event when a Stego is created.
func emitCreated(ctx context.Context, contentType string, mode OutputMode) {
	capitan.Emit(ctx, SignalCreated,
		KeyContentType.Field(contentType),
		KeyOutputMode.Field(string(mode)),
	)
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, password string, coverLen int) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyProtection.Field(protection(password)),
		KeyContentLength.Field(coverLen),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, password string, coverLen, bits int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyProtection.Field(protection(password)),
		KeyContentLength.Field(coverLen),
		KeyPayloadBits.Field(bits),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, password string, textLen int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyProtection.Field(protection(password)),
		KeyContentLength.Field(textLen),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, password string, textLen, messageLen int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyProtection.Field(protection(password)),
		KeyContentLength.Field(textLen),
		KeyMessageLength.Field(messageLen),
		KeyDuration.Field(duration),
	}
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			fields = append(fields, KeyStage.Field(de.Stage))
		}
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitRecordFailed emits an event when the history recorder rejects a record.
func emitRecordFailed(ctx context.Context, err error) {
	capitan.Error(ctx, SignalRecordFailed, KeyError.Field(err))
}
