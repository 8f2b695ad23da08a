package desc

import "google.golang.org/protobuf/proto"

// Protobuf adapts a proto-defined description message to Codec. Build
// systems that already speak protobuf can feed their own message type and
// map it to a Document themselves; this package ships no generated schema.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
