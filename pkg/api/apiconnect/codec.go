package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec carries the plain api structs as JSON. It registers under the name
// "json", replacing connect's protobuf-only JSON codec, so the Connect
// protocol content type stays application/json.
type Codec struct{}

var _ connect.Codec = Codec{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
