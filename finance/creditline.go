package finance

// BlendedMonthlyPayment folds the short tranche into the long one. The short
// tranche's monthly payment is discounted back to a balance at the long rate
// over the short duration, added to the long principal, and the sum is
// re-amortized at the long rate over the long duration.
func BlendedMonthlyPayment(shortMonthlyPayment, shortDuration, longPrincipal, longRate, longDuration float64) float64 {
	return (longPrincipal + shortMonthlyPayment/AnnuityFactor(shortDuration, longRate)) *
		AnnuityFactor(longDuration, longRate)
}
