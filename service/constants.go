package service

const (
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 1000.0 // annual, in percent
	MaxTermMonths   = 600
	MinTermMonths   = 1

	MaxDurationYears = MaxTermMonths / 12
	MaxRateOffers    = 64

	searchCachePrefix = "tranche-split:"
)
