package stego

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/lesavot/stego/history"
)

// Stego hides messages in cover text and extracts them again.
//
// A Stego is immutable after New and safe for concurrent use.
type Stego struct {
	clock      func() time.Time
	rand       io.Reader
	codec      Codec
	obfuscator Obfuscator
	mode       OutputMode
	verify     bool
	params     VerifierParams
	recorder   history.Recorder
}

// Result carries both renditions of an encoded text.
type Result struct {
	// Text is Stego or Plain, depending on Mode.
	Text string

	// Stego is the cover text with the payload embedded.
	Stego string

	// Plain is the untouched cover text.
	Plain string

	// Mode is the output mode that selected Text.
	Mode OutputMode
}

// New creates a Stego. Without options it uses the JSON metadata codec,
// crypto/rand salts with password tags, the wall clock, and OutputStego.
func New(opts ...Option) (*Stego, error) {
	s := &Stego{
		clock:  time.Now,
		rand:   rand.Reader,
		codec:  JSON(),
		mode:   OutputStego,
		verify: true,
		params: DefaultVerifierParams(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.obfuscator == nil {
		s.obfuscator = XOR(s.rand, s.verify, s.params)
	}

	emitCreated(context.Background(), s.codec.ContentType(), s.mode)
	return s, nil
}

// Encode hides message in cover and returns the steganographic text.
// A non-empty password obfuscates the message before embedding.
func (s *Stego) Encode(ctx context.Context, cover, message, password string) (string, error) {
	res, err := s.Hide(ctx, cover, message, password)
	if err != nil {
		return "", err
	}
	return res.Stego, nil
}

// Hide hides message in cover and returns both the steganographic and the
// plain rendition, with Text selected by the configured output mode.
func (s *Stego) Hide(ctx context.Context, cover, message, password string) (*Result, error) {
	start := time.Now()
	coverLen := utf8.RuneCountInString(cover)
	emitEncodeStart(ctx, password, coverLen)

	var (
		bits   int
		retErr error
	)
	defer func() {
		emitEncodeComplete(ctx, password, coverLen, bits, time.Since(start), retErr)
	}()

	payload, err := s.seal(message, password)
	if err != nil {
		retErr = err
		return nil, err
	}

	binary := TextToBinary(payload.String())
	bits = len(binary)

	stegoText := Distribute(cover, BinaryToZeroWidth(binary))
	res := &Result{
		Text:  stegoText,
		Stego: stegoText,
		Plain: cover,
		Mode:  s.mode,
	}
	if s.mode == OutputPlain {
		res.Text = cover
	}

	s.record(ctx, history.ModeEncrypt, password, coverLen, utf8.RuneCountInString(message))
	return res, nil
}

// seal builds the payload for message.
func (s *Stego) seal(message, password string) (Payload, error) {
	hidden := message
	if password != "" {
		var err error
		hidden, err = s.obfuscator.Obfuscate(message, password)
		if err != nil {
			return Payload{}, newEncodeError(ErrRandom, err)
		}
	}

	meta := Metadata{
		Message:   hidden,
		Timestamp: strconv.FormatInt(s.clock().UnixMilli(), 10),
		Version:   Version,
	}

	payload, err := newPayload(s.codec, meta)
	if err != nil {
		return Payload{}, newEncodeError(ErrMarshal, err)
	}
	return payload, nil
}

// Decode extracts the message hidden in text. When password is non-empty the
// message is de-obfuscated with it.
//
// A payload written with a password and decoded without one passes the
// integrity check and returns the obfuscated salt|ciphertext form.
func (s *Stego) Decode(ctx context.Context, text, password string) (string, error) {
	start := time.Now()
	textLen := utf8.RuneCountInString(text)
	emitDecodeStart(ctx, password, textLen)

	message, err := s.open(text, password)
	messageLen := utf8.RuneCountInString(message)
	emitDecodeComplete(ctx, password, textLen, messageLen, time.Since(start), err)
	if err != nil {
		return "", err
	}

	s.record(ctx, history.ModeDecrypt, password, textLen, messageLen)
	return message, nil
}

func (s *Stego) open(text, password string) (string, error) {
	zw := ExtractZeroWidth(text)
	if zw == "" {
		return "", newDecodeError(ErrNoHiddenMessage, StageExtract, nil)
	}

	data := BinaryToText(ZeroWidthToBinary(zw))

	payload, err := parsePayload(data)
	if err != nil {
		return "", newDecodeError(ErrInvalidPayload, StageParse, nil)
	}

	if !payload.Valid() {
		if password != "" {
			return "", newDecodeError(ErrWrongPassword, StageVerify, nil)
		}
		return "", newDecodeError(ErrIntegrityCheckFailed, StageVerify, nil)
	}

	meta, err := decodeMetadata(s.codec, payload.Metadata)
	if err != nil {
		return "", newDecodeError(ErrMalformedMetadata, StageMetadata, err)
	}

	ts, err := meta.timestampMillis()
	if err != nil {
		return "", newDecodeError(ErrMalformedMetadata, StageMetadata, err)
	}
	if ts > s.clock().UnixMilli() {
		return "", newDecodeError(ErrFutureTimestamp, StageMetadata, nil)
	}

	if password == "" {
		return meta.Message, nil
	}

	message, err := s.obfuscator.Reveal(meta.Message, password)
	if err != nil {
		if errors.Is(err, ErrWrongPassword) {
			err = nil
		}
		return "", newDecodeError(ErrWrongPassword, StageReveal, err)
	}
	return message, nil
}

// record stores a history entry. Recorder failures never fail the call.
func (s *Stego) record(ctx context.Context, mode history.Mode, password string, contentLen, messageLen int) {
	if s.recorder == nil {
		return
	}

	r := history.NewRecord(mode, password != "", contentLen, messageLen, s.clock())
	if err := s.recorder.Record(ctx, r); err != nil {
		emitRecordFailed(ctx, err)
	}
}

// defaultStego backs the package-level Encode and Decode.
var defaultStego = sync.OnceValue(func() *Stego {
	s, err := New()
	if err != nil {
		panic(err)
	}
	return s
})

// Encode hides message in cover using the default configuration.
func Encode(cover, message, password string) (string, error) {
	return defaultStego().Encode(context.Background(), cover, message, password)
}

// Decode extracts a message using the default configuration.
func Decode(text, password string) (string, error) {
	return defaultStego().Decode(context.Background(), text, password)
}
