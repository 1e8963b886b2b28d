package market

import "math/bits"

// WAD is the fixed-point scale for prices (quote units per base unit).
const WAD uint64 = 1e18

// Convert translates a quantity across the pair at the given price.
// inQuote states the denomination of the INPUT quantity:
//
//	inQuote          → quote divided down to base
//	!inQuote         → base multiplied up to quote
//
// Both directions floor. Rounding down everywhere is the documented policy:
// accumulated conversions must never create value out of thin air.
func Convert(quantity, price uint64, inQuote bool) uint64 {
	if inQuote {
		return mulDiv(quantity, WAD, price)
	}
	return mulDiv(quantity, price, WAD)
}

// mulDiv computes a*b/div with a 128-bit intermediate, flooring.
// Saturates instead of wrapping when the quotient exceeds 64 bits.
func mulDiv(a, b, div uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi >= div {
		return ^uint64(0)
	}
	q, _ := bits.Div64(hi, lo, div)
	return q
}
