package stego

import (
	jsoniter "github.com/json-iterator/go"
)

// Codec provides content-type aware marshaling of payload metadata.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// metadataJSON matches JSON.stringify closely enough for payloads: no HTML
// escaping, exact key matching, unknown keys rejected.
var metadataJSON = jsoniter.Config{
	EscapeHTML:            false,
	CaseSensitive:         true,
	DisallowUnknownFields: true,
}.Froze()

// jsonCodec implements Codec for payload metadata JSON.
type jsonCodec struct{}

// JSON returns the metadata codec used by LESAVOT payloads.
func JSON() Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as compact JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return metadataJSON.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return metadataJSON.Unmarshal(data, v)
}
