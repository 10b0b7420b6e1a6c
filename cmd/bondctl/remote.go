package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"umoabonds/internal/client"
)

func newPriceCmd(newClient clientFactory) *cobra.Command {
	var (
		price      float64
		settlement string
	)

	cmd := &cobra.Command{
		Use:   "price <isin|short-code>",
		Short: "Compute the yield of a catalog security through the API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag("settlement", settlement)
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}

			y, err := c.CalculateYield(cmd.Context(), args[0], price, date)
			if err != nil {
				return err
			}
			printYield(cmd, y)
			return nil
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "clean price in percent of par")
	cmd.Flags().StringVar(&settlement, "settlement", "", "settlement date, YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func printYield(cmd *cobra.Command, y *client.Yield) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ISIN\t%s\n", y.ISIN)
	if y.CountryName != "" {
		fmt.Fprintf(w, "Country\t%s\n", y.CountryName)
	}
	fmt.Fprintf(w, "%s\t%.4f%%\n", y.YieldType, y.Yield)
	fmt.Fprintf(w, "Accrued interest\t%.4f\n", y.AccruedInterest)
	fmt.Fprintf(w, "Dirty price\t%.4f\n", y.DirtyPrice)
	fmt.Fprintf(w, "Days to maturity\t%d\n", y.DaysToMaturity)
	if m := y.Market; m != nil {
		fmt.Fprintf(w, "Market rate\t%.2f%%\n", m.MarketRate)
		fmt.Fprintf(w, "Spread\t%s\n", m.SpreadText)
		fmt.Fprintf(w, "Rating\t%s (%s)\n", m.Rating, m.Action)
	}
	_ = w.Flush()
}

func newSearchCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "search <isin|short-code>",
		Short: "Find active securities by ISIN or short code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			securities, err := c.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(securities) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no security matches %s\n", args[0])
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ISIN\tTYPE\tCOUPON\tMATURITY")
			for _, s := range securities {
				coupon := "-"
				if s.CouponRate != nil {
					coupon = fmt.Sprintf("%.2f%%", *s.CouponRate*100)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ISIN, s.SecurityType, coupon, s.MaturityDate)
			}
			return w.Flush()
		},
	}
}

func newImportCmd(newClient clientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "import",
		Short:        "Upload securities or yield curve CSV files",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	upload := func(kind string, send func(c *client.Client, cmd *cobra.Command, name string, f *os.File) (*client.UploadSummary, error)) *cobra.Command {
		return &cobra.Command{
			Use:   kind + " <file.csv>",
			Short: "Upload a " + kind + " CSV",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				c, err := newClient()
				if err != nil {
					return err
				}
				summary, err := send(c, cmd, filepath.Base(args[0]), f)
				if err != nil {
					return err
				}
				printSummary(cmd, summary)
				return nil
			},
		}
	}

	cmd.AddCommand(upload("securities", func(c *client.Client, cmd *cobra.Command, name string, f *os.File) (*client.UploadSummary, error) {
		return c.ImportSecurities(cmd.Context(), name, f)
	}))
	cmd.AddCommand(upload("curve", func(c *client.Client, cmd *cobra.Command, name string, f *os.File) (*client.UploadSummary, error) {
		return c.UploadCurve(cmd.Context(), name, f)
	}))
	return cmd
}

func printSummary(cmd *cobra.Command, s *client.UploadSummary) {
	out := cmd.OutOrStdout()
	if s.PointsSaved > 0 || len(s.Countries) > 0 {
		fmt.Fprintf(out, "%d curve points saved for %v, %d duplicates skipped\n", s.PointsSaved, s.Countries, s.Duplicates)
	} else {
		fmt.Fprintf(out, "%s: %d added, %d updated, %d matured, %d records\n", s.Status, s.Added, s.Updated, s.Deprecated, s.Total)
	}
	for _, e := range s.Errors {
		fmt.Fprintf(out, "  row %d %s: %s\n", e.Row, e.ISIN, e.Message)
	}
}
