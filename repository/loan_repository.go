package repository

import "loan-tranche/domain"

type LoanRepository interface {
	Save(input domain.LoanInput, result domain.LoanResult) error
}
