// Package comparador implements a brfunds.PageSource over the server rendered
// pages of comparadordefundos.
//
// Every fund page embeds its whole history, along with the benchmarks, in a
// json payload. Chart is served from that payload for the metrics it holds.
package comparador

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/etnz/brfunds"
	"github.com/gocolly/colly/v2"
	"github.com/phuslu/log"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the root of the fund pages.
const DefaultBaseURL = "https://www.comparadordefundos.com.br"

// Client fetches and parses fund pages.
type Client struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Logger    *log.Logger
}

// New returns a Client for baseURL (DefaultBaseURL if empty).
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: strings.TrimSuffix(baseURL, "/"), Timeout: timeout}
}

var (
	_ brfunds.Source     = (*Client)(nil)
	_ brfunds.PageSource = (*Client)(nil)
)

// Page returns the observations of the fund page named token in the
// assetType category, plus the requested benchmarks.
func (c *Client) Page(ctx context.Context, token, assetType string, benchmarks ...string) (*brfunds.FundPage, error) {
	if assetType == "" {
		assetType = brfunds.DefaultAssetType
	}
	addr := fmt.Sprintf("%s/fundos/%s/%s", c.BaseURL, url.PathEscape(assetType), url.PathEscape(token))
	body, err := c.fetch(ctx, addr)
	if err != nil {
		return nil, err
	}
	payload, err := nextData(body)
	if err != nil {
		return nil, err
	}
	return parsePage(token, payload, benchmarks)
}

// fetch returns the body of the page at addr.
func (c *Client) fetch(ctx context.Context, addr string) ([]byte, error) {
	opts := []colly.CollectorOption{colly.StdlibContext(ctx), colly.AllowURLRevisit()}
	if c.UserAgent != "" {
		opts = append(opts, colly.UserAgent(c.UserAgent))
	}
	collector := colly.NewCollector(opts...)
	if c.Timeout > 0 {
		collector.SetRequestTimeout(c.Timeout)
	}

	var body []byte
	status := 0
	collector.OnResponse(func(r *colly.Response) {
		body, status = r.Body, r.StatusCode
	})
	collector.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
	})
	err := collector.Visit(addr)
	if c.Logger != nil {
		c.Logger.Debug().Str("url", addr).Int("status", status).Msg("page fetched")
	}
	if err != nil {
		if status != 0 && (status < 200 || status >= 300) {
			return nil, &brfunds.RemoteRequestError{StatusCode: status, URL: addr}
		}
		return nil, fmt.Errorf("cannot http GET %s: %w", addr, err)
	}
	return body, nil
}

// pageFields maps the metrics available on a page to the field that holds them.
var pageFields = map[brfunds.Metric]brfunds.Field{
	brfunds.Rentability:  brfunds.ValueField,
	brfunds.NetWorth:     brfunds.NetWorthField,
	brfunds.Shareholders: brfunds.ShareholdersField,
}

var hundred = decimal.NewFromInt(100)

// Chart fetches one page per id and returns the requested metric.
//
// Pages hold quota prices: rentability is returned as the cumulative return,
// in percent, since the first quota in q.Range. Benchmarks are only returned
// for rentability, taken from the first page.
func (c *Client) Chart(ctx context.Context, q brfunds.ChartQuery) ([]brfunds.Series, error) {
	field, ok := pageFields[q.Metric]
	if !ok {
		return nil, fmt.Errorf("metric %q from fund pages: %w", q.Metric, brfunds.ErrUnsupported)
	}
	var benchmarks []string
	if q.Metric == brfunds.Rentability {
		benchmarks = q.Benchmarks
	}

	var series []brfunds.Series
	for i, id := range q.IDs {
		page, err := c.Page(ctx, id, q.AssetType, benchmarks...)
		if err != nil {
			return nil, err
		}
		series = append(series, pageSeries(id, page.Observations, field, q))
		if i > 0 {
			continue
		}
		for _, b := range benchmarks {
			key := benchmarkKey(b)
			series = append(series, pageSeries(key, page.Benchmarks[key], brfunds.ValueField, q))
		}
	}
	return series, nil
}

// pageSeries selects field out of obs, turning quotas into cumulative returns.
func pageSeries(name string, obs []brfunds.Observation, field brfunds.Field, q brfunds.ChartQuery) brfunds.Series {
	s := brfunds.Series{Name: name}
	var base decimal.Decimal
	for _, o := range obs {
		v := field.Get(o)
		if field == brfunds.ValueField {
			if !v.Valid || !q.Range.Contains(o.Date) {
				continue
			}
			if base.IsZero() {
				if v.Decimal.IsZero() {
					continue
				}
				base = v.Decimal
			}
			v.Decimal = v.Decimal.DivRound(base, 16).Sub(decimal.NewFromInt(1)).Mul(hundred)
		}
		s.Observations = append(s.Observations, brfunds.Observation{Date: o.Date, Value: v})
	}
	return s
}

// Search is not available from fund pages.
func (c *Client) Search(ctx context.Context, query string, limit, offset int) ([]brfunds.FundSummary, error) {
	return nil, fmt.Errorf("search on fund pages: %w", brfunds.ErrUnsupported)
}

// Info is not available from fund pages.
func (c *Client) Info(ctx context.Context, ids ...string) (*brfunds.Info, error) {
	return nil, fmt.Errorf("info on fund pages: %w", brfunds.ErrUnsupported)
}
