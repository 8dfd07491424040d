// Package report renders tranche search outcomes for people.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"loan-tranche/domain"
)

// Text writes one line per evaluated pair followed by the minimum, or a note
// that no pair was usable.
func Text(w io.Writer, outcome domain.SearchOutcome, currency string) error {
	ew := &errWriter{w: w}

	ew.printf("Blended monthly payment per pair (principal %s)\n", Amount(outcome.Principal, currency))
	for _, ev := range outcome.Evaluations {
		line := fmt.Sprintf("  %s | %s | [ratio - %.6f] = %s",
			Offer(ev.Short), Offer(ev.Long), ev.SplitRatio, Amount(ev.BlendedMonthlyPayment, currency))
		if ev.Degenerate {
			line += "  (skipped: " + ev.Reason + ")"
		}
		ew.printf("%s\n", line)
	}

	if !outcome.Found || outcome.Best == nil {
		ew.printf("No valid pairing: every pair was degenerate.\n")
		return ew.err
	}

	best := outcome.Best
	ew.printf("Minimal blended payment: %s\n", Amount(best.BlendedMonthlyPayment, currency))
	ew.printf("  short %s: %s at %s/month\n", Offer(best.Short), Amount(best.ShortPrincipal, currency), Amount(best.ShortMonthlyPayment, currency))
	ew.printf("  long  %s: %s\n", Offer(best.Long), Amount(best.LongPrincipal, currency))
	return ew.err
}

// Offer renders an offer as "10y @ 2.90%".
func Offer(o domain.RateOffer) string {
	return strconv.FormatFloat(o.DurationYears, 'f', -1, 64) + "y @ " +
		strconv.FormatFloat(o.AnnualRatePercent, 'f', 2, 64) + "%"
}

// Amount formats v in the given ISO currency, rounded half away from zero
// to the currency's minor unit.
func Amount(v float64, currency string) string {
	fraction := 2
	if cur := money.GetCurrency(currency); cur != nil {
		fraction = cur.Fraction
	}
	minor := decimal.NewFromFloat(v).Shift(int32(fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
