package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-tranche/domain"
)

func sampleOutcome() domain.SearchOutcome {
	short := domain.RateOffer{DurationYears: 10, AnnualRatePercent: 2.9}
	long := domain.RateOffer{DurationYears: 25, AnnualRatePercent: 4.4}
	ev := domain.PairEvaluation{
		Short:                 short,
		Long:                  long,
		SplitRatio:            0.25,
		ShortPrincipal:        75000,
		LongPrincipal:         225000,
		ShortMonthlyPayment:   720.5,
		BlendedMonthlyPayment: 1234.567,
	}
	bad := domain.PairEvaluation{
		Short:      domain.RateOffer{DurationYears: 1, AnnualRatePercent: 50},
		Long:       long,
		SplitRatio: 1.7,
		Degenerate: true,
		Reason:     "split ratio outside (0,1): got 1.700000",
	}
	return domain.SearchOutcome{
		Principal:   300000,
		Evaluations: []domain.PairEvaluation{ev, bad},
		Best:        &ev,
		Found:       true,
	}
}

func TestText_ListsPairsAndMinimum(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleOutcome(), "USD"))

	out := buf.String()
	assert.Contains(t, out, "principal $300,000.00")
	assert.Contains(t, out, "10y @ 2.90% | 25y @ 4.40% | [ratio - 0.250000] = $1,234.57")
	assert.Contains(t, out, "(skipped: split ratio outside (0,1): got 1.700000)")
	assert.Contains(t, out, "Minimal blended payment: $1,234.57")
	assert.NotContains(t, out, "No valid pairing")
}

func TestText_NoValidPairing(t *testing.T) {
	outcome := sampleOutcome()
	outcome.Best = nil
	outcome.Found = false

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, outcome, "USD"))

	out := buf.String()
	assert.Contains(t, out, "No valid pairing: every pair was degenerate.")
	assert.NotContains(t, out, "Minimal blended payment")
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestText_ReturnsWriteError(t *testing.T) {
	err := Text(failingWriter{}, sampleOutcome(), "USD")
	assert.EqualError(t, err, "disk full")
}

func TestOffer(t *testing.T) {
	assert.Equal(t, "22y @ 3.80%", Offer(domain.RateOffer{DurationYears: 22, AnnualRatePercent: 3.8}))
	assert.Equal(t, "7.5y @ 1.25%", Offer(domain.RateOffer{DurationYears: 7.5, AnnualRatePercent: 1.25}))
}

func TestAmount_RoundsToMinorUnit(t *testing.T) {
	assert.Equal(t, "$0.01", Amount(0.005, "USD"))
	assert.Equal(t, "$1,000.00", Amount(999.999, "USD"))
}
