package domain

import "time"

// RateOffer is one line of a lender's rate table.
type RateOffer struct {
	DurationYears     float64 `json:"duration_years"`
	AnnualRatePercent float64 `json:"annual_rate_percent"` // 3.5 means 3.5%
}

// LoanTerms are the per-month terms derived from a RateOffer.
type LoanTerms struct {
	MonthlyRate    float64
	DurationMonths float64
}

type TrancheSearchInput struct {
	Principal float64     `json:"principal"`
	Offers    []RateOffer `json:"offers"`
}

// PairEvaluation is the result of splitting the principal between two offers.
// Short always holds the smaller duration.
type PairEvaluation struct {
	Short                 RateOffer `json:"short"`
	Long                  RateOffer `json:"long"`
	SplitRatio            float64   `json:"split_ratio"`
	ShortPrincipal        float64   `json:"short_principal"`
	LongPrincipal         float64   `json:"long_principal"`
	ShortMonthlyPayment   float64   `json:"short_monthly_payment"`
	ShortTotalInterest    float64   `json:"short_total_interest"`
	BlendedMonthlyPayment float64   `json:"blended_monthly_payment"`
	Degenerate            bool      `json:"degenerate"`
	Reason                string    `json:"reason,omitempty"`
}

type SearchOutcome struct {
	ID          string           `json:"id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	Principal   float64          `json:"principal"`
	Offers      []RateOffer      `json:"offers"`
	Evaluations []PairEvaluation `json:"evaluations"`
	Best        *PairEvaluation  `json:"best,omitempty"`
	Found       bool             `json:"found"` // false when every pair was degenerate
}
