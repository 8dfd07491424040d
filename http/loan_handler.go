package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"loan-tranche/domain"
	"loan-tranche/service"
)

type LoanHandler struct {
	service *service.LoanService
	log     zerolog.Logger
}

func NewLoanHandler(service *service.LoanService, log zerolog.Logger) *LoanHandler {
	return &LoanHandler{
		service: service,
		log:     log.With().Str("handler", "loan").Logger(),
	}
}

// CalculateLoan handles POST /loan/calculate
func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CalculateLoan(input)
	if err != nil {
		writeError(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}
