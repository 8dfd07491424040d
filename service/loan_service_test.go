package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-tranche/domain"
)

type MockLoanRepository struct {
	SaveCalled bool
	ForceError bool
}

func (m *MockLoanRepository) Save(
	input domain.LoanInput,
	result domain.LoanResult,
) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func TestCalculateLoan_WithInterest(t *testing.T) {
	mockRepo := &MockLoanRepository{}
	service := NewLoanService(mockRepo, zerolog.Nop())

	result, err := service.CalculateLoan(domain.LoanInput{
		Amount:       10000,
		InterestRate: 12,
		TermMonths:   24,
	})
	require.NoError(t, err)

	assert.Equal(t, 470.73, result.MonthlyPayment)
	assert.Equal(t, 11297.63, result.TotalPayment)
	assert.Equal(t, 1297.63, result.TotalInterest)
	assert.True(t, mockRepo.SaveCalled)
}

func TestCalculateLoan_ZeroInterest(t *testing.T) {
	service := NewLoanService(&MockLoanRepository{}, zerolog.Nop())

	result, err := service.CalculateLoan(domain.LoanInput{
		Amount:       1200,
		InterestRate: 0,
		TermMonths:   12,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.MonthlyPayment)
	assert.Equal(t, 0.0, result.TotalInterest)
}

func TestCalculateLoan_SaveFailureIsNotFatal(t *testing.T) {
	mockRepo := &MockLoanRepository{ForceError: true}
	service := NewLoanService(mockRepo, zerolog.Nop())

	_, err := service.CalculateLoan(domain.LoanInput{Amount: 5000, InterestRate: 5, TermMonths: 36})
	assert.NoError(t, err)
	assert.True(t, mockRepo.SaveCalled)
}

func TestCalculateLoan_InvalidInput(t *testing.T) {
	cases := map[string]domain.LoanInput{
		"zero amount":   {Amount: 0, InterestRate: 10, TermMonths: 12},
		"huge amount":   {Amount: MaxLoanAmount * 2, InterestRate: 10, TermMonths: 12},
		"negative rate": {Amount: 1000, InterestRate: -1, TermMonths: 12},
		"huge rate":     {Amount: 1000, InterestRate: MaxInterestRate + 1, TermMonths: 12},
		"zero term":     {Amount: 1000, InterestRate: 10, TermMonths: 0},
		"too long term": {Amount: 1000, InterestRate: 10, TermMonths: MaxTermMonths + 1},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			mockRepo := &MockLoanRepository{}
			service := NewLoanService(mockRepo, zerolog.Nop())

			_, err := service.CalculateLoan(input)
			assert.ErrorIs(t, err, ErrInvalidLoan)
			assert.False(t, mockRepo.SaveCalled, "repository Save should NOT be called")
		})
	}
}
