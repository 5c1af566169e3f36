package stego

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/valyala/fastjson"
	"github.com/zoobzio/sentinel"
)

// Payload framing.
const (
	Signature = "LESAVOT"
	Version   = "1.1"
	Separator = "|"
)

// Field rules read from the payload tag.
const (
	ruleRequired = "required" // key present with a non-empty string
	rulePresent  = "present"  // key present, empty string allowed
)

func init() {
	sentinel.Tag("payload")
}

// Metadata is the record hidden inside a payload. Field order fixes the JSON
// key order: message, timestamp, version.
type Metadata struct {
	Message   string `json:"message" payload:"present"`
	Timestamp string `json:"timestamp" payload:"required"`
	Version   string `json:"version" payload:"required"`
}

// Payload is the framed unit encoded into cover text.
type Payload struct {
	Signature string
	Checksum  string
	Metadata  string // serialized Metadata
}

// String returns signature|checksum|metadata.
func (p Payload) String() string {
	return p.Signature + Separator + p.Checksum + Separator + p.Metadata
}

// Valid reports whether the checksum matches signature and metadata, in
// either the canonical or the legacy signed rendering.
func (p Payload) Valid() bool {
	h := checksumState(p.Signature + p.Metadata)
	return p.Checksum == renderChecksum(h, unsignedHex) || p.Checksum == renderChecksum(h, signedHex)
}

// newPayload serializes meta and computes its checksum.
func newPayload(codec Codec, meta Metadata) (Payload, error) {
	data, err := codec.Marshal(meta)
	if err != nil {
		return Payload{}, err
	}

	raw := string(data)
	return Payload{
		Signature: Signature,
		Checksum:  Checksum(Signature + raw),
		Metadata:  raw,
	}, nil
}

// parsePayload splits recovered text into its frame. Pipes inside the
// metadata survive because everything after the checksum is rejoined.
func parsePayload(data string) (Payload, error) {
	parts := strings.Split(data, Separator)
	if len(parts) < 3 || parts[0] != Signature {
		return Payload{}, ErrInvalidPayload
	}

	return Payload{
		Signature: parts[0],
		Checksum:  parts[1],
		Metadata:  strings.Join(parts[2:], Separator),
	}, nil
}

// fieldRule describes one tagged Metadata field.
type fieldRule struct {
	key        string // JSON key
	name       string // Go field name for error messages
	allowEmpty bool
}

// metadataRules is built once from the payload tags on Metadata.
var metadataRules = sync.OnceValue(func() []fieldRule {
	scanned := sentinel.Scan[Metadata]()
	rt := reflect.TypeFor[Metadata]()

	rules := make([]fieldRule, 0, len(scanned.Fields))
	for _, field := range scanned.Fields {
		rule, ok := field.Tags["payload"]
		if !ok {
			continue
		}

		key, _, _ := strings.Cut(rt.FieldByIndex(field.Index).Tag.Get("json"), ",")
		if key == "" {
			key = field.Name
		}
		rules = append(rules, fieldRule{
			key:        key,
			name:       field.Name,
			allowEmpty: rule == rulePresent,
		})
	}
	return rules
})

var parserPool fastjson.ParserPool

// decodeMetadata validates raw against the field rules and unmarshals it.
func decodeMetadata(codec Codec, raw string) (Metadata, error) {
	if err := checkMetadata(raw); err != nil {
		return Metadata{}, err
	}

	var meta Metadata
	if err := codec.Unmarshal([]byte(raw), &meta); err != nil {
		return Metadata{}, err
	}
	return meta, nil
}

func checkMetadata(raw string) error {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.Parse(raw)
	if err != nil {
		return err
	}
	obj, err := v.Object()
	if err != nil {
		return err
	}

	for _, rule := range metadataRules() {
		val := obj.Get(rule.key)
		if val == nil {
			return fmt.Errorf("missing field %s", rule.name)
		}
		if val.Type() != fastjson.TypeString {
			return fmt.Errorf("field %s: expected string, got %s", rule.name, val.Type())
		}
		if !rule.allowEmpty && len(val.GetStringBytes()) == 0 {
			return fmt.Errorf("field %s is empty", rule.name)
		}
	}
	return nil
}

// timestampMillis parses the metadata timestamp.
func (m Metadata) timestampMillis() (int64, error) {
	ms, err := strconv.ParseInt(m.Timestamp, 10, 64)
	if err != nil {
		return 0, errors.New("timestamp is not an integer")
	}
	return ms, nil
}
