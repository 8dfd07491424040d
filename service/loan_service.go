package service

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"loan-tranche/domain"
	"loan-tranche/finance"
	"loan-tranche/repository"
)

// roundToCents rounds half away from zero to 2 decimals.
func roundToCents(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

type LoanService struct {
	repo repository.LoanRepository
	log  zerolog.Logger
}

// NewLoanService creates a new LoanService with the given repository.
func NewLoanService(repo repository.LoanRepository, log zerolog.Logger) *LoanService {
	return &LoanService{
		repo: repo,
		log:  log.With().Str("service", "loan").Logger(),
	}
}

// CalculateLoan prices a single amortizing loan.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	if input.Amount <= 0 {
		return domain.LoanResult{}, fmt.Errorf("%w: amount must be positive", ErrInvalidLoan)
	}
	if input.Amount > MaxLoanAmount {
		return domain.LoanResult{}, fmt.Errorf("%w: amount exceeds the maximum of %.2f", ErrInvalidLoan, MaxLoanAmount)
	}
	if input.InterestRate < 0 {
		return domain.LoanResult{}, fmt.Errorf("%w: interest rate cannot be negative", ErrInvalidLoan)
	}
	if input.InterestRate > MaxInterestRate {
		return domain.LoanResult{}, fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", ErrInvalidLoan, MaxInterestRate)
	}
	if input.TermMonths < MinTermMonths {
		return domain.LoanResult{}, fmt.Errorf("%w: term must be at least %d month", ErrInvalidLoan, MinTermMonths)
	}
	if input.TermMonths > MaxTermMonths {
		return domain.LoanResult{}, fmt.Errorf("%w: term exceeds the maximum of %d months", ErrInvalidLoan, MaxTermMonths)
	}

	n := float64(input.TermMonths)

	var payment float64
	if input.InterestRate == 0 {
		payment = input.Amount / n
	} else {
		monthlyRate := input.InterestRate / 100 / 12
		payment = finance.MonthlyPayment(input.Amount, n, monthlyRate)
	}

	total := payment * n

	result := domain.LoanResult{
		MonthlyPayment: roundToCents(payment),
		TotalPayment:   roundToCents(total),
		TotalInterest:  roundToCents(total - input.Amount),
	}

	// Not critical if it fails.
	if err := s.repo.Save(input, result); err != nil {
		s.log.Warn().Err(err).Msg("failed to save loan calculation")
	}

	return result, nil
}
