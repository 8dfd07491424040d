package service

import "errors"

var (
	ErrInvalidOffer       = errors.New("invalid rate offer")
	ErrInsufficientOffers = errors.New("at least two rate offers are required")
	ErrInvalidPrincipal   = errors.New("invalid principal")
	ErrDegenerateRatio    = errors.New("split ratio outside (0,1)")

	ErrInvalidLoan = errors.New("invalid loan")
)
