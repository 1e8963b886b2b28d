package marketpb

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Codec moves marketpb messages as JSON frames. The server forces it via
// grpc.ForceServerCodec; clients opt in with grpc.CallContentSubtype(Name).
type Codec struct{}

const Name = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (Codec) Name() string {
	return Name
}
