package existential

// A DecodingProvider decodes values of the interface type E from
// their JSON representation.
//
// Generated wrappers call Decode on the zero value of the provider
// type.
type DecodingProvider[E any] interface {
	Decode(data []byte) (E, error)
}

// An EncodingProvider encodes values of the interface type E to JSON.
//
// Generated wrappers call Encode on the zero value of the provider
// type.
type EncodingProvider[E any] interface {
	Encode(v E) ([]byte, error)
	// ShouldEncodeNil reports whether an absent optional value held
	// in a keyed container is written as an explicit null. If false,
	// the key is omitted.
	ShouldEncodeNil() bool
}

// A CodingProvider both decodes and encodes values of the interface
// type E.
type CodingProvider[E any] interface {
	DecodingProvider[E]
	EncodingProvider[E]
}

// Decodable is implemented by wrappers with a decoding capability. It
// is the method set of [encoding/json.Unmarshaler].
type Decodable interface {
	UnmarshalJSON(data []byte) error
}

// Encodable is implemented by wrappers with an encoding
// capability. It is the method set of [encoding/json.Marshaler].
type Encodable interface {
	MarshalJSON() ([]byte, error)
}

// Codable is implemented by (pointers to) wrappers that both decode
// and encode.
type Codable interface {
	Decodable
	Encodable
}
