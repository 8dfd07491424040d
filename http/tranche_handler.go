package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"loan-tranche/domain"
	"loan-tranche/repository"
	"loan-tranche/service"
)

type TrancheHandler struct {
	service *service.TrancheService
	log     zerolog.Logger
}

func NewTrancheHandler(service *service.TrancheService, log zerolog.Logger) *TrancheHandler {
	return &TrancheHandler{
		service: service,
		log:     log.With().Str("handler", "tranche").Logger(),
	}
}

// SearchSplit handles POST /loan/tranche-split
func (h *TrancheHandler) SearchSplit(w http.ResponseWriter, r *http.Request) {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		writeError(w, h.log, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var input domain.TrancheSearchInput
	if err := decodeJSON(w, r, &input); err != nil {
		h.log.Debug().Err(err).Msg("error decoding request body")
		writeError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.service.Search(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOffer),
			errors.Is(err, service.ErrInsufficientOffers),
			errors.Is(err, service.ErrInvalidPrincipal):
			writeError(w, h.log, http.StatusBadRequest, err.Error())
		default:
			h.log.Error().Err(err).Msg("tranche search failed")
			writeError(w, h.log, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, h.log, http.StatusOK, outcome)
}

// GetSplit handles GET /loan/tranche-split/{id}
func (h *TrancheHandler) GetSplit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	outcome, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrSearchNotFound) {
			writeError(w, h.log, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Str("id", id).Msg("failed to load tranche search")
		writeError(w, h.log, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, h.log, http.StatusOK, outcome)
}
