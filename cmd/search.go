package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"loan-tranche/config"
	"loan-tranche/domain"
	"loan-tranche/report"
	"loan-tranche/service"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct {
	cfg       *config.Config
	log       zerolog.Logger
	out       io.Writer
	principal float64
	rates     string
	currency  string
	asJSON    bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find the cheapest two-tranche split of a loan" }
func (*searchCmd) Usage() string {
	return `search [-principal <amount>] [-rates <years:percent,...>] [-json]

  Evaluates every pair of offers from the rate table and reports the blended
  monthly payment of each, then the minimum. Without -rates the sample grid
  10:2.9,12:3.2,15:3.5,20:3.8,22:3.8,25:4.4 is used.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", c.cfg.EvaluationPrincipal, "Total amount to borrow.")
	f.StringVar(&c.rates, "rates", "", "Comma separated rate table, as years:annual-percent.")
	f.StringVar(&c.currency, "currency", c.cfg.Currency, "ISO currency used to display amounts.")
	f.BoolVar(&c.asJSON, "json", false, "Print the outcome as JSON.")
}

func (c *searchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	if money.GetCurrency(c.currency) == nil {
		fmt.Fprintf(os.Stderr, "Unknown currency %q\n", c.currency)
		return subcommands.ExitUsageError
	}

	offers, err := parseRateTable(c.rates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -rates: %v\n", err)
		return subcommands.ExitUsageError
	}

	a := newApp(ctx, c.cfg, c.log)
	defer a.Close()

	outcome, err := a.tranches.Search(ctx, domain.TrancheSearchInput{Principal: c.principal, Offers: offers})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, service.ErrInvalidOffer) ||
			errors.Is(err, service.ErrInsufficientOffers) ||
			errors.Is(err, service.ErrInvalidPrincipal) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	if c.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(outcome)
	} else {
		err = report.Text(out, outcome, c.currency)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}

	if !outcome.Found {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseRateTable reads "10:2.9,12:3.2" keeping the given order. An empty
// string yields nil so the default grid applies.
func parseRateTable(s string) ([]domain.RateOffer, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var offers []domain.RateOffer
	for _, entry := range strings.Split(s, ",") {
		years, rate, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			return nil, fmt.Errorf("entry %q is not years:percent", entry)
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(years), 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: duration: %w", entry, err)
		}
		r, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: rate: %w", entry, err)
		}
		offers = append(offers, domain.RateOffer{DurationYears: d, AnnualRatePercent: r})
	}
	return offers, nil
}
