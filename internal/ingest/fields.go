package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the date formats found in the market publications.
var dateLayouts = []string{
	time.DateOnly,
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
}

// Date is a calendar date column. Empty cells leave it zero.
type Date struct {
	time.Time
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (d *Date) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised date %q", s)
}

// Ptr returns nil for an empty date.
func (d Date) Ptr() *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// Rate is an annual rate column stored as a fraction. Cells may be written
// as fractions (0.0625), percentages (6.25 or 6,25%) and use a decimal
// comma. Empty cells are null.
type Rate struct {
	Value *float64

	raw     float64
	percent bool
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (r *Rate) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	r.percent = strings.HasSuffix(s, "%")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" || s == "-" {
		r.Value = nil
		return nil
	}
	v, err := parseNumber(s)
	if err != nil {
		return fmt.Errorf("invalid rate %q", s)
	}
	r.raw = v
	if r.percent || v >= 1 || v <= -1 {
		v /= 100
	}
	r.Value = &v
	return nil
}

// bare reports whether the cell is a number without a percent sign.
func (r *Rate) bare() bool {
	return r.Value != nil && !r.percent
}

// scaleColumn applies one unit to the unmarked cells of a column: once one of
// them is 1 or more the column is in percent, so a 0,75 coupon is 0.75%.
func scaleColumn(column []*Rate) {
	percent := false
	for _, r := range column {
		if r.bare() && (r.raw >= 1 || r.raw <= -1) {
			percent = true
			break
		}
	}
	if !percent {
		return
	}
	for _, r := range column {
		if r.bare() {
			v := r.raw / 100
			r.Value = &v
		}
	}
}

// Amount is an optional numeric column such as an outstanding amount.
// Spaces used as thousands separators are ignored.
type Amount struct {
	Value *float64
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (a *Amount) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		a.Value = nil
		return nil
	}
	v, err := parseNumber(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q", s)
	}
	a.Value = &v
	return nil
}

// Years is a required positive maturity expressed in years. Cells such as
// "5", "5 ans", "6M" or "6 mois" are accepted.
type Years struct {
	Value float64
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (y *Years) UnmarshalCSV(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	months := false
	for _, suffix := range []string{"mois", "months", "month", "m"} {
		if strings.HasSuffix(s, suffix) {
			s, months = strings.TrimSpace(strings.TrimSuffix(s, suffix)), true
			break
		}
	}
	for _, suffix := range []string{"ans", "an", "years", "year", "y"} {
		if !months && strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}
	v, err := parseNumber(s)
	if err != nil {
		return fmt.Errorf("invalid maturity %q", s)
	}
	if months {
		v /= 12
	}
	y.Value = v
	return nil
}

// Count is an optional integer column; empty cells are zero.
type Count struct {
	Value int
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (c *Count) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		c.Value = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	c.Value = v
	return nil
}

func parseNumber(s string) (float64, error) {
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	return strconv.ParseFloat(s, 64)
}
