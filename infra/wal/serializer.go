// Package wal holds the codec seam shared by the operation journal and the
// event outbox: record payloads pass through a Serializer so the framing
// code never cares what is inside them.
package wal

import (
	"encoding/json"
	"errors"

	"google.golang.org/protobuf/proto"
)

// Serializer encodes and decodes record payloads.
type Serializer interface {
	Encode(any) ([]byte, error)
	Decode([]byte, any) error
}

// ---------- JSON ----------

// JSONSerializer is the active payload codec. Payloads are small and the
// journal is replayed offline, so readability wins over density here.
type JSONSerializer struct{}

func (JSONSerializer) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONSerializer) Decode(b []byte, v any) error {
	return json.Unmarshal(b, v)
}

// ---------- Protobuf ----------

// ProtoSerializer handles payloads that are proto messages.
type ProtoSerializer struct{}

var ErrNotProto = errors.New("wal: value does not implement proto.Message")

func (ProtoSerializer) Encode(v any) ([]byte, error) {
	msg, ok := v.(proto.Message)
	if !ok {
		return nil, ErrNotProto
	}
	return proto.Marshal(msg)
}

func (ProtoSerializer) Decode(b []byte, v any) error {
	msg, ok := v.(proto.Message)
	if !ok {
		return ErrNotProto
	}
	return proto.Unmarshal(b, msg)
}
