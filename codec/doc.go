// Package codec provides the binary and text serialization helpers shared by
// every device variant of github.com/katalvlaran/qryddev.
//
// Two encodings are supported:
//
//   - Binary: encoding/gob of an exported wire struct, wrapped in a small
//     envelope that carries a kind discriminator.
//   - Text: JSON of the same wire struct, wrapped in the same envelope shape
//     {"kind": ..., "data": ...}.
//
// The envelope lets a decoder reject a payload that is structurally valid but
// describes a different device variant (ErrKind) separately from bytes that
// cannot be decoded at all (ErrMalformed) and from zero-length input
// (ErrEmptyInput). Decoding never panics.
//
// Errors:
//
//	ErrEmptyInput - the payload is zero-length.
//	ErrMalformed  - the payload cannot be decoded.
//	ErrKind       - the payload decodes but its kind does not match.
//
// See examples in example_test.go.
package codec
