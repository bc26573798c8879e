// Package client is a Go client for the salary report API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/salary-report/backend/pkg/salary"
)

var (
	// ErrUnreachable is returned when the API did not answer at all.
	ErrUnreachable = errors.New("the salary report API is unreachable")

	// ErrProtocol is returned when the API answered with a body that is not a report.
	ErrProtocol = errors.New("unexpected response from the salary report API")
)

// ValidationFailure is returned when the API rejected the input.
type ValidationFailure struct {
	Message string
	Issues  []salary.Issue
}

func (e *ValidationFailure) Error() string {
	return e.Message
}

// ServerError is returned for all other unsuccessful responses.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("salary report API returned %d", e.Status)
	}
	return fmt.Sprintf("salary report API returned %d: %s", e.Status, e.Message)
}

// Result is a successful calculation.
type Result struct {
	ID           uuid.UUID
	Calculations salary.Calculations
	Formatted    salary.Formatted

	// Plot is nil when the chart was not requested.
	Plot *salary.Bar
}

// Client calls the salary report API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	locale     string
	plot       bool
}

type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithLocale sets the locale for the formatted values.
func WithLocale(locale string) Option {
	return func(c *Client) {
		c.locale = locale
	}
}

// WithoutPlot disables the chart data in results.
func WithoutPlot() Option {
	return func(c *Client) {
		c.plot = false
	}
}

// New returns a client for the API at baseURL, e.g. "https://example.com/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		plot:       true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Calculate sends the input to the API and returns the report.
func (c *Client) Calculate(ctx context.Context, input salary.Input) (*Result, error) {
	query := url.Values{}
	if !c.plot {
		query.Set("plot", "false")
	}
	if c.locale != "" {
		query.Set("locale", c.locale)
	}

	body, err := c.post(ctx, "/v1/calculations", query, input)
	if err != nil {
		return nil, err
	}

	var r struct {
		ID           uuid.UUID            `json:"id"`
		Calculations *salary.Calculations `json:"calculations"`
		Formatted    salary.Formatted     `json:"formatted"`
		Plot         *salary.Bar          `json:"plot"`
	}
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProtocol, err)
	}

	if r.Calculations == nil {
		return nil, fmt.Errorf("%w: the response does not contain calculations", ErrProtocol)
	}

	return &Result{
		ID:           r.ID,
		Calculations: *r.Calculations,
		Formatted:    r.Formatted,
		Plot:         r.Plot,
	}, nil
}

// Export sends the input to the API and returns the report as XLSX spreadsheet.
func (c *Client) Export(ctx context.Context, input salary.Input) ([]byte, error) {
	body, err := c.post(ctx, "/v1/calculations/export", nil, input)
	if err != nil {
		return nil, err
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("%w: the spreadsheet is empty", ErrProtocol)
	}

	return body, nil
}

// post sends the input and returns the body of a successful response.
func (c *Client) post(ctx context.Context, path string, query url.Values, input salary.Input) ([]byte, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading the response: %v", ErrProtocol, err)
	}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var v salary.ValidationResponse
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, &ServerError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		}
		return nil, &ValidationFailure{Message: v.Error, Issues: v.Errors}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &e); err != nil || e.Error == "" {
			return nil, &ServerError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		}
		return nil, &ServerError{Status: resp.StatusCode, Message: e.Error}
	}

	return body, nil
}
