package job

// Codec defines the serialization contract for Inputs and States snapshots.
// A codec must be stable across releases: field names and wire types are
// part of the persistence contract.
type Codec interface {
	// Encode serializes a snapshot to bytes.
	Encode(v any) ([]byte, error)

	// Decode deserializes bytes into a snapshot.
	Decode(data []byte, v any) error

	// Name returns the codec identifier (e.g., "msgpack").
	Name() string
}

// CodecNameMsgpack identifies the default MessagePack codec.
const CodecNameMsgpack = "msgpack"

// DefaultCodec returns the codec used when none is configured.
func DefaultCodec() Codec {
	return &MsgpackCodec{}
}
