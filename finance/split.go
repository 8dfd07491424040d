package finance

import "math"

// SplitRatio returns the share of the total principal to put on the short
// tranche. The total is normalized to 1, so the short tranche principal is
// the ratio itself and the long tranche takes 1 - ratio.
//
// The long tranche's first-period interest is charged on the whole
// normalized principal, not on its own share. What is left of the long
// payment is the budget for the short tranche, and inverting the annuity
// on that budget gives the short principal.
//
// The result is not clamped. Use IsCoherentRatio before trusting it.
func SplitRatio(shortRate, shortDuration, longRate, longDuration float64) float64 {
	totalAmount := 1.0

	m2 := MonthlyPayment(totalAmount, longDuration, longRate)
	interest2 := totalAmount * longRate
	m1 := m2 - interest2

	amount1 := m1 * (1 - math.Pow(1+shortRate, -shortDuration)) / shortRate

	return amount1 / totalAmount
}

// IsCoherentRatio reports whether ratio is a usable split, strictly between 0 and 1.
func IsCoherentRatio(ratio float64) bool {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return false
	}
	return ratio > 0 && ratio < 1
}
