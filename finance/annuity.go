// Package finance holds the amortization math used to price and split loans.
//
// Every function here is pure and does no validation: a zero rate or a
// non-positive duration yields NaN or Inf, and callers are expected to guard
// their inputs before calling in.
package finance

import (
	"math"

	"loan-tranche/domain"
)

const monthsPerYear = 12

// AnnuityFactor returns the constant payment per unit of principal that fully
// amortizes a loan over durationMonths periods at monthlyRate.
func AnnuityFactor(durationMonths, monthlyRate float64) float64 {
	return monthlyRate / (1 - math.Pow(1+monthlyRate, -durationMonths))
}

// MonthlyPayment returns the classic annuity payment for principal.
func MonthlyPayment(principal, durationMonths, monthlyRate float64) float64 {
	return principal * AnnuityFactor(durationMonths, monthlyRate)
}

// TotalInterest returns what is paid over the life of the loan on top of principal.
func TotalInterest(principal, durationMonths, monthlyRate float64) float64 {
	m := MonthlyPayment(principal, durationMonths, monthlyRate)
	return m*durationMonths - principal
}

// NewLoanTerms converts a yearly offer into per-month terms.
func NewLoanTerms(offer domain.RateOffer) domain.LoanTerms {
	return domain.LoanTerms{
		MonthlyRate:    offer.AnnualRatePercent / 100 / monthsPerYear,
		DurationMonths: offer.DurationYears * monthsPerYear,
	}
}
