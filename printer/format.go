// SPDX-License-Identifier: MIT

package printer

import (
	"math"
	"strconv"
)

// appendValue appends v using %g semantics with prec significant digits and
// trailing zeros removed. Non-finite values render as glibc streams print
// them: nan, -nan (sign bit set), inf and -inf.
func appendValue(dst []byte, v float64, prec int) []byte {
	switch {
	case math.IsNaN(v):
		if math.Signbit(v) {
			return append(dst, "-nan"...)
		}
		return append(dst, "nan"...)
	case math.IsInf(v, 1):
		return append(dst, "inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-inf"...)
	}

	return strconv.AppendFloat(dst, v, 'g', prec, 64)
}

// clampPrecision limits p to [1, MaxPrecision].
func clampPrecision(p int) int {
	if p < 1 {
		return 1
	}
	if p > MaxPrecision {
		return MaxPrecision
	}

	return p
}

// FormatValue returns the textual form of a single value as Fprint writes it.
// prec is the number of significant digits; values outside
// [1, MaxPrecision] are clamped to the nearest bound.
func FormatValue(v float64, prec int) string {
	return string(appendValue(nil, v, clampPrecision(prec)))
}
