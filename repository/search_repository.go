package repository

import (
	"errors"

	"loan-tranche/domain"
)

var ErrSearchNotFound = errors.New("search not found")

// SearchRepository keeps computed tranche searches so they can be fetched by id.
type SearchRepository interface {
	Save(outcome domain.SearchOutcome) (domain.SearchOutcome, error)
	FindByID(id string) (domain.SearchOutcome, error)
}
