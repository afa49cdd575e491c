// Package compareativos implements a brfunds.Source over the compareativos
// JSON API.
package compareativos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/brfunds"
	"github.com/phuslu/log"
)

// DefaultBaseURL is the root of the fund endpoints.
const DefaultBaseURL = "https://api.compareativos.com.br/fund"

// chartPaths maps every metric to its chart endpoint.
var chartPaths = map[brfunds.Metric]string{
	brfunds.Rentability:  "rentability/chart",
	brfunds.Volatility:   "volatility/chart",
	brfunds.Shareholders: "amountShareholders/chart",
	brfunds.NetWorth:     "netWorth/chart",
	brfunds.Drawdown:     "drawdown/chart",
}

// Client queries the compareativos API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	Logger     *log.Logger
}

// New returns a Client for baseURL (DefaultBaseURL if empty) whose requests
// time out after timeout (no timeout if zero).
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

var _ brfunds.Source = (*Client)(nil)

// Search returns the funds matching query.
func (c *Client) Search(ctx context.Context, query string, limit, offset int) ([]brfunds.FundSummary, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set("rows", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var records []searchRecord
	if err := c.jwget(ctx, c.BaseURL+"/list?"+params.Encode(), &records); err != nil {
		return nil, err
	}
	funds := make([]brfunds.FundSummary, 0, len(records))
	for i, r := range records {
		f, err := r.summary()
		if err != nil {
			return nil, fmt.Errorf("search result %d: %w", i, err)
		}
		funds = append(funds, f)
	}
	return funds, nil
}

// Info returns the raw metadata record of the funds.
func (c *Client) Info(ctx context.Context, ids ...string) (*brfunds.Info, error) {
	var raw any
	if err := c.jwget(ctx, c.BaseURL+"/"+joinPath(ids)+"/info", &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, brfunds.ShapeError("info", "empty record")
	}
	return &brfunds.Info{Raw: raw}, nil
}

// Chart returns one series per fund and per benchmark.
//
// Benchmarks are only supported by the rentability chart and ignored otherwise.
func (c *Client) Chart(ctx context.Context, q brfunds.ChartQuery) ([]brfunds.Series, error) {
	path, ok := chartPaths[q.Metric]
	if !ok {
		return nil, fmt.Errorf("metric %q: %w", q.Metric, brfunds.ErrUnsupported)
	}
	params := url.Values{}
	if q.Metric == brfunds.Rentability {
		params.Set("indicators", strings.Join(q.Benchmarks, ","))
	}
	params.Set("startDate", strconv.FormatInt(q.From, 10))
	params.Set("endDate", strconv.FormatInt(q.To, 10))
	addr := c.BaseURL + "/" + joinPath(q.IDs) + "/" + path + "?" + params.Encode()

	var records []chartRecord
	if err := c.jwget(ctx, addr, &records); err != nil {
		return nil, err
	}
	loc := q.Location
	if loc == nil {
		loc = time.Local
	}
	series := make([]brfunds.Series, 0, len(records))
	for i, r := range records {
		s, err := r.series(i, loc)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return series, nil
}

// joinPath escapes every id and joins them with commas.
func joinPath(ids []string) string {
	escaped := make([]string, len(ids))
	for i, id := range ids {
		escaped[i] = url.PathEscape(id)
	}
	return strings.Join(escaped, ",")
}
