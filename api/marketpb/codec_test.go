package marketpb

import "testing"

func TestCodecRoundTrip(t *testing.T) {
	c := Codec{}
	in := &DepositRequest{User: 7, Quantity: 1800, Price: 9, IsBuy: true}

	b, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := &DepositRequest{}
	if err := c.Unmarshal(b, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip: got %+v, want %+v", out, in)
	}
}

func TestCodecName(t *testing.T) {
	c := Codec{}
	if c.Name() != "json" {
		t.Fatal("codec must register under the json subtype")
	}
}
