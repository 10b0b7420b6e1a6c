// Package client provides an HTTP client for the UMOA bonds API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Security represents a security returned by the API.
type Security struct {
	ISIN             string   `json:"isin"`
	ShortCode        string   `json:"short_code"`
	CountryCode      string   `json:"country_code"`
	CountryName      string   `json:"country_name"`
	SecurityType     string   `json:"security_type"`
	OriginalMaturity string   `json:"original_maturity"`
	IssueDate        string   `json:"issue_date"`
	MaturityDate     string   `json:"maturity_date"`
	CouponRate       *float64 `json:"coupon_rate"`
	Periodicity      string   `json:"periodicity"`
	Status           string   `json:"status"`
}

// Market is the comparison of a yield with the reference curve.
type Market struct {
	MarketRate     float64 `json:"market_rate"`
	Spread         float64 `json:"spread"`
	SpreadText     string  `json:"spread_text"`
	Rating         string  `json:"rating"`
	Action         string  `json:"action"`
	Recommendation string  `json:"recommendation"`
	CurveDate      string  `json:"curve_date"`
}

// Yield is a priced security.
type Yield struct {
	ISIN            string  `json:"isin"`
	CountryName     string  `json:"country_name"`
	SecurityType    string  `json:"security_type"`
	YieldType       string  `json:"yield_type"`
	Yield           float64 `json:"yield"`
	CleanPrice      float64 `json:"clean_price"`
	AccruedInterest float64 `json:"accrued_interest"`
	DirtyPrice      float64 `json:"dirty_price"`
	SettlementDate  string  `json:"settlement_date"`
	MaturityDate    string  `json:"maturity_date"`
	DaysToMaturity  int     `json:"days_to_maturity"`
	YearsToMaturity float64 `json:"years_to_maturity"`
	NextCouponDate  string  `json:"next_coupon_date"`
	Market          *Market `json:"market"`
}

// RowError is a rejected upload row.
type RowError struct {
	Row     int    `json:"row"`
	ISIN    string `json:"isin"`
	Message string `json:"message"`
}

// UploadSummary is the result of a securities import or a curve upload.
// Fields that do not apply to the upload kind stay zero.
type UploadSummary struct {
	UploadID    string     `json:"upload_id"`
	Added       int        `json:"securities_added"`
	Updated     int        `json:"securities_updated"`
	Deprecated  int        `json:"securities_deprecated"`
	Total       int        `json:"total_records"`
	Status      string     `json:"status"`
	PointsSaved int        `json:"points_saved"`
	Duplicates  int        `json:"duplicates_skipped"`
	Countries   []string   `json:"countries"`
	Errors      []RowError `json:"errors"`
}

// APIError is an error response of the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Message, e.StatusCode)
}

// Client communicates with the UMOA bonds API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Search returns the active securities matching an ISIN or short code.
func (c *Client) Search(ctx context.Context, query string) ([]Security, error) {
	var result struct {
		Results []Security `json:"results"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/search", map[string]string{"query": query}, &result); err != nil {
		return nil, fmt.Errorf("searching securities: %w", err)
	}
	return result.Results, nil
}

// GetSecurity fetches a security by ISIN or short code.
func (c *Client) GetSecurity(ctx context.Context, identifier string) (*Security, error) {
	var sec Security
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/securities/"+url.PathEscape(identifier), nil, &sec); err != nil {
		return nil, fmt.Errorf("fetching security: %w", err)
	}
	return &sec, nil
}

// CalculateYield prices a security at a clean price. A zero settlement date
// lets the server use today.
func (c *Client) CalculateYield(ctx context.Context, identifier string, price float64, settlement time.Time) (*Yield, error) {
	req := yieldRequest{ISIN: identifier, Price: price}
	if !settlement.IsZero() {
		req.SettlementDate = settlement.Format(time.DateOnly)
	}

	var y Yield
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/calculate-yield", req, &y); err != nil {
		return nil, fmt.Errorf("calculating yield: %w", err)
	}
	return &y, nil
}

type yieldRequest struct {
	ISIN           string  `json:"isin"`
	Price          float64 `json:"price"`
	SettlementDate string  `json:"settlement_date,omitempty"`
}

// ImportSecurities uploads a securities CSV.
func (c *Client) ImportSecurities(ctx context.Context, filename string, r io.Reader) (*UploadSummary, error) {
	var s UploadSummary
	if err := c.upload(ctx, "/api/v1/securities/import", filename, r, &s); err != nil {
		return nil, fmt.Errorf("importing securities: %w", err)
	}
	return &s, nil
}

// UploadCurve uploads a yield curve CSV.
func (c *Client) UploadCurve(ctx context.Context, filename string, r io.Reader) (*UploadSummary, error) {
	var s UploadSummary
	if err := c.upload(ctx, "/api/v1/yield-curves/upload", filename, r, &s); err != nil {
		return nil, fmt.Errorf("uploading yield curve: %w", err)
	}
	return &s, nil
}

func (c *Client) upload(ctx context.Context, path, filename string, r io.Reader, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing form: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, w.FormDataContentType(), &buf, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	return c.do(ctx, method, path, "application/json", body, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
