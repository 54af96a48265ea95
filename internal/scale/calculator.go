package scale

import (
	"math"
	"strconv"
)

// BorderCompensation is subtracted from every bar width for the bar's end caps
const BorderCompensation = 10

// RoundNumber returns a readable scale distance for n: the leading digit of
// n rounded down to 1, 2, 3 or 5 (or 10 when it reaches ten).
func RoundNumber(n float64) float64 {
	if n <= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}

	pow10 := math.Pow(10, float64(digitCount(n)-1))
	d := n / pow10

	switch {
	case d >= 10:
		d = 10
	case d >= 5:
		d = 5
	case d >= 3:
		d = 3
	case d >= 2:
		d = 2
	default:
		d = 1
	}

	return pow10 * d
}

// digitCount returns the number of digits in the integer part of n
func digitCount(n float64) int {
	return len(strconv.FormatFloat(math.Floor(n), 'f', -1, 64))
}

// BarWidthPixels scales maxWidth by chosen/maxGround and removes the border
// allowance. The result is never negative.
func BarWidthPixels(maxWidth, chosen, maxGround float64) int {
	if maxGround <= 0 {
		return 0
	}
	w := int(math.Round(maxWidth*chosen/maxGround)) - BorderCompensation
	if w < 0 {
		return 0
	}
	return w
}
