package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"loan-tranche/domain"
	"loan-tranche/finance"
	"loan-tranche/repository"
)

type TrancheServiceConfig struct {
	// DefaultPrincipal is used when a search does not name one.
	DefaultPrincipal float64
	// DefaultOffers is used when a search carries no offers.
	DefaultOffers []domain.RateOffer
	CacheTTL      time.Duration
}

// TrancheService finds the cheapest way to split a loan between two offers.
type TrancheService struct {
	repo  repository.SearchRepository
	cache repository.CacheRepository
	cfg   TrancheServiceConfig
	log   zerolog.Logger
}

func NewTrancheService(
	repo repository.SearchRepository,
	cache repository.CacheRepository,
	cfg TrancheServiceConfig,
	log zerolog.Logger,
) *TrancheService {
	return &TrancheService{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		log:   log.With().Str("service", "tranche").Logger(),
	}
}

// Search validates the input, evaluates every pair of offers and stores the
// outcome. Validation errors are returned before any pair is evaluated.
// Degenerate pairs never fail the search; check Found on the outcome.
func (s *TrancheService) Search(
	ctx context.Context,
	input domain.TrancheSearchInput,
) (domain.SearchOutcome, error) {

	if input.Principal == 0 {
		input.Principal = s.cfg.DefaultPrincipal
	}
	if len(input.Offers) == 0 {
		input.Offers = s.cfg.DefaultOffers
	}

	if err := ValidateSearchInput(input); err != nil {
		return domain.SearchOutcome{}, err
	}

	key := searchCacheKey(input)
	if outcome, ok := s.cachedOutcome(ctx, key); ok {
		if _, err := s.repo.FindByID(outcome.ID); err == nil {
			s.log.Debug().Str("id", outcome.ID).Msg("tranche search served from cache")
			return outcome, nil
		}
		// The history dropped this id (full, or restarted under a shared
		// cache). Record it again so the returned id can be fetched.
		s.log.Debug().Str("id", outcome.ID).Msg("cached tranche search missing from history")
		return s.record(ctx, key, outcome), nil
	}

	outcome := EvaluatePairs(input.Principal, input.Offers)

	for _, ev := range outcome.Evaluations {
		l := s.log.Debug()
		if ev.Degenerate {
			l = s.log.Warn().Str("reason", ev.Reason)
		}
		l.Float64("short_years", ev.Short.DurationYears).
			Float64("long_years", ev.Long.DurationYears).
			Float64("ratio", ev.SplitRatio).
			Float64("blended", ev.BlendedMonthlyPayment).
			Msg("pair evaluated")
	}

	saved := s.record(ctx, key, outcome)

	if saved.Found {
		s.log.Info().
			Str("id", saved.ID).
			Int("pairs", len(saved.Evaluations)).
			Float64("min_blended", saved.Best.BlendedMonthlyPayment).
			Msg("tranche search completed")
	} else {
		s.log.Info().
			Str("id", saved.ID).
			Int("pairs", len(saved.Evaluations)).
			Msg("tranche search found no valid pairing")
	}

	return saved, nil
}

// record saves the outcome to the history and caches the saved copy. A
// failed save keeps the outcome as given.
func (s *TrancheService) record(ctx context.Context, key string, outcome domain.SearchOutcome) domain.SearchOutcome {
	saved, err := s.repo.Save(outcome)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to save tranche search")
		saved = outcome
	}
	s.storeOutcome(ctx, key, saved)
	return saved
}

// Get returns a previously computed search.
func (s *TrancheService) Get(id string) (domain.SearchOutcome, error) {
	return s.repo.FindByID(id)
}

func (s *TrancheService) cachedOutcome(ctx context.Context, key string) (domain.SearchOutcome, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			s.log.Warn().Err(err).Str("key", key).Msg("tranche search cache lookup failed")
		}
		return domain.SearchOutcome{}, false
	}
	var outcome domain.SearchOutcome
	if err := json.Unmarshal([]byte(raw), &outcome); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cache entry")
		return domain.SearchOutcome{}, false
	}
	return outcome, true
}

func (s *TrancheService) storeOutcome(ctx context.Context, key string, outcome domain.SearchOutcome) {
	data, err := json.Marshal(outcome)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode tranche search for cache")
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cfg.CacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache tranche search")
	}
}

// ValidateSearchInput rejects a table that cannot be searched.
func ValidateSearchInput(input domain.TrancheSearchInput) error {
	if !isPositive(input.Principal) {
		return fmt.Errorf("%w: %v", ErrInvalidPrincipal, input.Principal)
	}
	if input.Principal > MaxLoanAmount {
		return fmt.Errorf("%w: exceeds the maximum of %.2f", ErrInvalidPrincipal, MaxLoanAmount)
	}
	if len(input.Offers) < 2 {
		return fmt.Errorf("%w: got %d", ErrInsufficientOffers, len(input.Offers))
	}
	if len(input.Offers) > MaxRateOffers {
		return fmt.Errorf("%w: at most %d offers can be compared", ErrInvalidOffer, MaxRateOffers)
	}

	seen := make(map[float64]bool, len(input.Offers))
	for i, o := range input.Offers {
		if !isPositive(o.DurationYears) || o.DurationYears > MaxDurationYears {
			return fmt.Errorf("%w: offer %d has duration %v years", ErrInvalidOffer, i, o.DurationYears)
		}
		if o.DurationYears != math.Trunc(o.DurationYears) {
			return fmt.Errorf("%w: offer %d duration %v is not a whole number of years", ErrInvalidOffer, i, o.DurationYears)
		}
		if !isPositive(o.AnnualRatePercent) || o.AnnualRatePercent > MaxInterestRate {
			return fmt.Errorf("%w: offer %d has rate %v%%", ErrInvalidOffer, i, o.AnnualRatePercent)
		}
		if seen[o.DurationYears] {
			return fmt.Errorf("%w: duration %v years is listed twice", ErrInvalidOffer, o.DurationYears)
		}
		seen[o.DurationYears] = true
	}
	return nil
}

// EvaluatePairs scans every pair (i, j), i < j, in the order the offers are
// given. The cheapest coherent pair wins; on a tie the first one seen stays.
// It has no side effects and expects validated input.
func EvaluatePairs(principal float64, offers []domain.RateOffer) domain.SearchOutcome {
	outcome := domain.SearchOutcome{
		Principal:   principal,
		Offers:      append([]domain.RateOffer(nil), offers...),
		Evaluations: make([]domain.PairEvaluation, 0, len(offers)*(len(offers)-1)/2),
	}

	for i := 0; i < len(offers)-1; i++ {
		for j := i + 1; j < len(offers); j++ {
			outcome.Evaluations = append(outcome.Evaluations, evaluatePair(principal, offers[i], offers[j]))
		}
	}

	if best := bestIndex(outcome.Evaluations); best >= 0 {
		b := outcome.Evaluations[best]
		outcome.Best = &b
		outcome.Found = true
	}
	return outcome
}

// bestIndex returns the index of the cheapest non-degenerate evaluation, or
// -1 if there is none. Ties keep the earlier index.
func bestIndex(evals []domain.PairEvaluation) int {
	best := -1
	for i, ev := range evals {
		if ev.Degenerate {
			continue
		}
		if best < 0 || ev.BlendedMonthlyPayment < evals[best].BlendedMonthlyPayment {
			best = i
		}
	}
	return best
}

func evaluatePair(principal float64, a, b domain.RateOffer) domain.PairEvaluation {
	short, long := a, b
	if long.DurationYears < short.DurationYears {
		short, long = long, short
	}
	t1 := finance.NewLoanTerms(short)
	t2 := finance.NewLoanTerms(long)

	ratio := finance.SplitRatio(t1.MonthlyRate, t1.DurationMonths, t2.MonthlyRate, t2.DurationMonths)

	shortPrincipal := principal * ratio
	longPrincipal := principal - shortPrincipal

	m1 := finance.MonthlyPayment(shortPrincipal, t1.DurationMonths, t1.MonthlyRate)
	blended := finance.BlendedMonthlyPayment(m1, t1.DurationMonths, longPrincipal, t2.MonthlyRate, t2.DurationMonths)

	ev := domain.PairEvaluation{
		Short:                 short,
		Long:                  long,
		SplitRatio:            finiteOrZero(ratio),
		ShortPrincipal:        finiteOrZero(shortPrincipal),
		LongPrincipal:         finiteOrZero(longPrincipal),
		ShortMonthlyPayment:   finiteOrZero(m1),
		ShortTotalInterest:    finiteOrZero(finance.TotalInterest(shortPrincipal, t1.DurationMonths, t1.MonthlyRate)),
		BlendedMonthlyPayment: finiteOrZero(blended),
	}

	switch {
	case !finance.IsCoherentRatio(ratio):
		ev.Degenerate = true
		ev.Reason = fmt.Errorf("%w: got %.6f", ErrDegenerateRatio, ratio).Error()
	case !isPositive(blended):
		ev.Degenerate = true
		ev.Reason = fmt.Sprintf("blended payment %v is not a positive amount", blended)
	}
	return ev
}

// isPositive is false for NaN and +Inf.
func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// finiteOrZero keeps NaN and Inf out of the outcome, which must encode to JSON.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
