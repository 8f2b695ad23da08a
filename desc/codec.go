// Package desc carries the construction-input side of the object pipeline:
// a Document describing a translation unit (section bytes, symbols,
// relocations) plus pluggable codecs for reading one from a build step's
// output, whatever its surface form (JSON, CBOR, msgpack, protobuf).
package desc

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
