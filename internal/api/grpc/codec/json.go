// Package codec provides the JSON wire codec used by listkeeper gRPC services.
package codec

import (
	"github.com/goccy/go-json"
	"google.golang.org/grpc/encoding"
)

// Name is the content subtype negotiated for the codec ("application/grpc+json").
const Name = "json"

// JSON marshals messages as JSON.
type JSON struct{}

func init() {
	encoding.RegisterCodec(JSON{})
}

func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (JSON) Name() string {
	return Name
}
