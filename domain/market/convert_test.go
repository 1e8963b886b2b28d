package market

import "testing"

func TestConvertQuoteToBase(t *testing.T) {
	// 900 quote at 9 quote/base → 100 base
	got := Convert(900, 9*WAD, true)
	if got != 100 {
		t.Fatalf("expected 100 base, got %d", got)
	}
}

func TestConvertBaseToQuote(t *testing.T) {
	// 100 base at 9 quote/base → 900 quote
	got := Convert(100, 9*WAD, false)
	if got != 900 {
		t.Fatalf("expected 900 quote, got %d", got)
	}
}

func TestConvertFloors(t *testing.T) {
	// 10 quote at 3 quote/base → floor(10/3) = 3 base
	if got := Convert(10, 3*WAD, true); got != 3 {
		t.Fatalf("expected floor to 3, got %d", got)
	}
	// fractional price: 7 base at 2.5 quote/base → floor(17.5) = 17 quote
	if got := Convert(7, 5*WAD/2, false); got != 17 {
		t.Fatalf("expected floor to 17, got %d", got)
	}
}

func TestConvertRoundTripNeverGains(t *testing.T) {
	prices := []uint64{WAD, 2 * WAD, 3 * WAD, 7 * WAD, 5 * WAD / 2, WAD / 3}
	for _, p := range prices {
		for q := uint64(1); q < 1000; q += 7 {
			back := Convert(Convert(q, p, true), p, false)
			if back > q {
				t.Fatalf("round trip gained value: q=%d p=%d back=%d", q, p, back)
			}
		}
	}
}

func TestMulDivSaturates(t *testing.T) {
	max := ^uint64(0)
	if got := mulDiv(max, max, 2); got != max {
		t.Fatalf("expected saturation at max uint64, got %d", got)
	}
}
