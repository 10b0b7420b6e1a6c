// Package ingest reads security catalogs and yield curves from CSV exports of
// the regional market publications.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"umoabonds/internal/pricing"
	"umoabonds/internal/services"
)

// SecurityRecord is one row of a securities CSV. Column names follow the
// catalog fields.
type SecurityRecord struct {
	ISIN              string `csv:"isin"`
	CountryCode       string `csv:"country_code"`
	SecurityType      string `csv:"security_type"`
	OriginalMaturity  string `csv:"original_maturity"`
	IssueDate         Date   `csv:"issue_date"`
	MaturityDate      Date   `csv:"maturity_date"`
	CouponRate        Rate   `csv:"coupon_rate"`
	OutstandingAmount Amount `csv:"outstanding_amount"`
	Periodicity       string `csv:"periodicity"`
	AmortizationMode  string `csv:"amortization_mode"`
	DeferredYears     Count  `csv:"deferred_years"`
}

// CurveRecord is one row of a yield curve CSV.
type CurveRecord struct {
	CountryCode    string `csv:"country_code"`
	MaturityYears  Years  `csv:"maturity_years"`
	ZeroCouponRate Rate   `csv:"zero_coupon_rate"`
	OATRate        Rate   `csv:"oat_rate"`
}

// ParseSecurities decodes a securities CSV. A security type missing from the
// file is inferred from the coupon: a coupon makes an OAT. Coupons share one
// unit per file.
func ParseSecurities(r io.Reader) ([]services.SecurityInput, error) {
	var records []*SecurityRecord
	if err := unmarshal(r, &records); err != nil {
		return nil, err
	}
	coupons := make([]*Rate, len(records))
	for i, rec := range records {
		coupons[i] = &rec.CouponRate
	}
	scaleColumn(coupons)

	out := make([]services.SecurityInput, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.ISIN) == "" {
			continue
		}
		secType := pricing.SecurityType(strings.ToUpper(strings.TrimSpace(rec.SecurityType)))
		if secType == "" {
			secType = pricing.DiscountBill
			if rec.CouponRate.Value != nil && *rec.CouponRate.Value > 0 {
				secType = pricing.CouponBond
			}
		}
		out = append(out, services.SecurityInput{
			ISIN:              strings.TrimSpace(rec.ISIN),
			CountryCode:       strings.TrimSpace(rec.CountryCode),
			SecurityType:      secType,
			OriginalMaturity:  strings.TrimSpace(rec.OriginalMaturity),
			IssueDate:         rec.IssueDate.Ptr(),
			MaturityDate:      rec.MaturityDate.Time,
			CouponRate:        rec.CouponRate.Value,
			OutstandingAmount: rec.OutstandingAmount.Value,
			Periodicity:       strings.TrimSpace(rec.Periodicity),
			AmortizationMode:  strings.TrimSpace(rec.AmortizationMode),
			DeferredYears:     rec.DeferredYears.Value,
		})
	}
	return out, nil
}

// ParseCurve decodes a yield curve CSV.
func ParseCurve(r io.Reader) ([]services.CurvePointInput, error) {
	var records []*CurveRecord
	if err := unmarshal(r, &records); err != nil {
		return nil, err
	}
	zeroCoupon := make([]*Rate, len(records))
	oat := make([]*Rate, len(records))
	for i, rec := range records {
		zeroCoupon[i] = &rec.ZeroCouponRate
		oat[i] = &rec.OATRate
	}
	scaleColumn(zeroCoupon)
	scaleColumn(oat)

	out := make([]services.CurvePointInput, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.CountryCode) == "" {
			continue
		}
		out = append(out, services.CurvePointInput{
			CountryCode:    strings.TrimSpace(rec.CountryCode),
			MaturityYears:  rec.MaturityYears.Value,
			ZeroCouponRate: rec.ZeroCouponRate.Value,
			OATRate:        rec.OATRate.Value,
		})
	}
	return out, nil
}

// unmarshal decodes a CSV export into out. The separator is sniffed from the
// header line so spreadsheet exports using semicolons decode as they are; the
// BOM is dropped and header names are lower-cased before gocsv maps them.
func unmarshal(r io.Reader, out interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("csv is empty")
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = separator(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if err := gocsv.UnmarshalCSV(&headerReader{Reader: reader}, out); err != nil {
		return fmt.Errorf("parse csv: %w", err)
	}
	return nil
}

// separator picks ';' when the header line has more semicolons than commas.
func separator(data []byte) rune {
	header, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(header, []byte(";")) > bytes.Count(header, []byte(",")) {
		return ';'
	}
	return ','
}

// headerReader lower-cases and trims the first record so column names match
// the csv tags whatever the export's capitalisation.
type headerReader struct {
	*csv.Reader
	seen bool
}

func (h *headerReader) Read() ([]string, error) {
	record, err := h.Reader.Read()
	if err != nil || h.seen {
		return record, err
	}
	h.seen = true
	for i, name := range record {
		record[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return record, nil
}

func (h *headerReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := h.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}
