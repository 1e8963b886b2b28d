package wal

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestJSONSerializerRoundTrip(t *testing.T) {
	type payload struct {
		User     uint64 `json:"user"`
		Quantity uint64 `json:"quantity"`
		IsBuy    bool   `json:"is_buy"`
	}

	var s JSONSerializer
	in := payload{User: 7, Quantity: 1800, IsBuy: true}

	b, err := s.Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var out payload
	if err := s.Decode(b, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip: got %+v, want %+v", out, in)
	}
}

func TestProtoSerializer(t *testing.T) {
	var s ProtoSerializer
	in := timestamppb.Now()

	b, err := s.Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	out := &timestamppb.Timestamp{}
	if err := s.Decode(b, out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.AsTime().Equal(in.AsTime()) {
		t.Fatalf("round trip: got %v, want %v", out.AsTime(), in.AsTime())
	}
}

func TestProtoSerializerRejectsNonProto(t *testing.T) {
	var s ProtoSerializer

	if _, err := s.Encode(struct{}{}); !errors.Is(err, ErrNotProto) {
		t.Errorf("encode: got %v", err)
	}
	var v struct{}
	if err := s.Decode(nil, &v); !errors.Is(err, ErrNotProto) {
		t.Errorf("decode: got %v", err)
	}
}
