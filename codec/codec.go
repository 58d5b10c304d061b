// File: codec/codec.go
package codec

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for codec operations.
var (
	// ErrEmptyInput indicates a zero-length payload was passed to a decoder.
	ErrEmptyInput = errors.New("codec: input payload is empty")

	// ErrMalformed indicates a payload that cannot be decoded.
	ErrMalformed = errors.New("codec: malformed payload")

	// ErrKind indicates a payload whose envelope decodes cleanly but whose
	// kind discriminator does not match the expected device kind.
	ErrKind = errors.New("codec: payload kind mismatch")
)

// envelope wraps an encoded value with its kind discriminator.
// The same shape serves both the gob and the JSON encodings.
type envelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// EncodeBinary gob-encodes v into a fresh byte slice.
// Complexity: O(size of v).
func EncodeBinary(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("codec: encode binary: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeBinary gob-decodes data into v.
// Returns ErrEmptyInput on zero-length input and ErrMalformed when the bytes
// cannot be decoded into v.
func DecodeBinary(data []byte, v interface{}) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return nil
}

// EncodeJSON marshals v to JSON.
func EncodeJSON(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encode json: %w", err)
	}

	return data, nil
}

// DecodeJSON unmarshals data into v with the same sentinel discipline as
// DecodeBinary: ErrEmptyInput on zero-length input, ErrMalformed otherwise.
func DecodeJSON(data []byte, v interface{}) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return nil
}

// EncodeBinaryKind gob-encodes v and wraps it in an envelope tagged with kind.
// Use DecodeBinaryKind with the same kind to recover v.
func EncodeBinaryKind(kind string, v interface{}) ([]byte, error) {
	inner, err := EncodeBinary(v)
	if err != nil {
		return nil, err
	}

	return EncodeBinary(envelope{Kind: kind, Data: inner})
}

// DecodeBinaryKind unwraps a gob envelope produced by EncodeBinaryKind,
// verifies its kind discriminator, and decodes the inner payload into v.
// Returns ErrEmptyInput, ErrMalformed, or ErrKind (with both kinds in the
// message) respectively.
func DecodeBinaryKind(data []byte, kind string, v interface{}) error {
	var env envelope
	if err := DecodeBinary(data, &env); err != nil {
		return err
	}
	if env.Kind != kind {
		return fmt.Errorf("%w: got %q, want %q", ErrKind, env.Kind, kind)
	}

	return DecodeBinary(env.Data, v)
}

// EncodeJSONKind marshals v and wraps it in a {"kind","data"} JSON envelope.
func EncodeJSONKind(kind string, v interface{}) ([]byte, error) {
	inner, err := EncodeJSON(v)
	if err != nil {
		return nil, err
	}

	return EncodeJSON(envelope{Kind: kind, Data: inner})
}

// DecodeJSONKind unwraps a JSON envelope produced by EncodeJSONKind, verifies
// its kind discriminator, and unmarshals the inner document into v.
func DecodeJSONKind(data []byte, kind string, v interface{}) error {
	var env envelope
	if err := DecodeJSON(data, &env); err != nil {
		return err
	}
	if env.Kind != kind {
		return fmt.Errorf("%w: got %q, want %q", ErrKind, env.Kind, kind)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("%w: envelope carries no data", ErrMalformed)
	}

	return DecodeJSON(env.Data, v)
}
