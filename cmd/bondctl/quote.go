package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"umoabonds/internal/pricing"
)

type quoteOptions struct {
	secType     string
	coupon      float64
	periodicity string
	issue       string
	maturity    string
	settlement  string
	price       float64
}

// newQuoteCmd prices a security described on the command line without
// contacting the API.
func newQuoteCmd() *cobra.Command {
	var opts quoteOptions

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute a yield offline from the security terms",
		Example: `  bondctl quote --type OAT --coupon 6 --issue 2025-03-03 --maturity 2030-03-03 --price 99.5
  bondctl quote --type BAT --maturity 2026-06-01 --settlement 2025-06-01 --price 97.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, req, err := opts.build(time.Now())
			if err != nil {
				return err
			}
			res, err := pricing.CalculateYield(sec, req.Price, req.SettlementDate)
			if err != nil {
				return err
			}
			rounded := res.Rounded()
			printResult(cmd.OutOrStdout(), &rounded)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.secType, "type", "OAT", "security type, OAT or BAT")
	f.Float64Var(&opts.coupon, "coupon", 0, "annual coupon rate in percent (OAT)")
	f.StringVar(&opts.periodicity, "periodicity", "A", "coupon frequency: A, S, T or M")
	f.StringVar(&opts.issue, "issue", "", "issue date, YYYY-MM-DD")
	f.StringVar(&opts.maturity, "maturity", "", "maturity date, YYYY-MM-DD")
	f.StringVar(&opts.settlement, "settlement", "", "settlement date, YYYY-MM-DD (default today)")
	f.Float64Var(&opts.price, "price", 0, "clean price in percent of par")
	_ = cmd.MarkFlagRequired("maturity")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func (o quoteOptions) build(now time.Time) (pricing.Security, pricing.Request, error) {
	sec := pricing.Security{
		ISIN:        "QUOTE",
		Type:        pricing.SecurityType(strings.ToUpper(o.secType)),
		Periodicity: pricing.Periodicity(strings.ToUpper(o.periodicity)),
	}
	if sec.Type != pricing.CouponBond && sec.Type != pricing.DiscountBill {
		return sec, pricing.Request{}, fmt.Errorf("unknown security type %q", o.secType)
	}
	if sec.Type == pricing.CouponBond {
		rate := o.coupon / 100
		sec.CouponRate = &rate
	}

	var err error
	if sec.IssueDate, err = parseDateFlag("issue", o.issue); err != nil {
		return sec, pricing.Request{}, err
	}
	if sec.MaturityDate, err = parseDateFlag("maturity", o.maturity); err != nil {
		return sec, pricing.Request{}, err
	}
	settlement, err := parseDateFlag("settlement", o.settlement)
	if err != nil {
		return sec, pricing.Request{}, err
	}
	if settlement.IsZero() {
		settlement = pricing.DateOnly(now)
	}
	return sec, pricing.Request{Price: o.price, SettlementDate: settlement}, nil
}

func printResult(out io.Writer, res *pricing.Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Type\t%s\n", res.SecurityType)
	fmt.Fprintf(w, "%s\t%.4f%%\n", res.YieldType, res.Yield)
	fmt.Fprintf(w, "Clean price\t%.4f\n", res.CleanPrice)
	if res.SecurityType == pricing.CouponBond {
		fmt.Fprintf(w, "Accrued interest\t%.4f\n", res.AccruedInterest)
		fmt.Fprintf(w, "Dirty price\t%.4f\n", res.DirtyPrice)
	}
	fmt.Fprintf(w, "Settlement\t%s\n", res.SettlementDate.Format(time.DateOnly))
	fmt.Fprintf(w, "Maturity\t%s\n", res.MaturityDate.Format(time.DateOnly))
	fmt.Fprintf(w, "Days to maturity\t%d\n", res.DaysToMaturity)
	fmt.Fprintf(w, "Years to maturity\t%.2f\n", res.YearsToMaturity)
	if res.NextCouponDate != nil {
		fmt.Fprintf(w, "Next coupon\t%s\n", res.NextCouponDate.Format(time.DateOnly))
	}
	_ = w.Flush()
}
