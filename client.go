package brfunds

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/brfunds/date"
	"github.com/phuslu/log"
)

// DefaultAssetType is the page category used when a FundsQuery has none.
const DefaultAssetType = "acao"

// AssetTypes lists the page categories known to the comparison pages.
var AssetTypes = []string{"acao", "fixa", "cambial", "multi"}

// Client runs the retrieval pipeline: it normalizes identifiers, resolves the
// date range, calls the remote source through a Retrier, builds the series
// and merges them into a Table.
//
// A Client keeps no state between calls and is safe for concurrent use.
type Client struct {
	source  Source
	pages   PageSource
	retrier *Retrier
	loc     *time.Location
	today   func() date.Date
	logger  *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithPages sets the source of rendered fund pages used by Funds.
func WithPages(p PageSource) Option { return func(c *Client) { c.pages = p } }

// WithRetrier replaces the default Retrier.
func WithRetrier(r *Retrier) Option { return func(c *Client) { c.retrier = r } }

// WithLocation sets the location used to convert between days and epoch milliseconds.
func WithLocation(loc *time.Location) Option { return func(c *Client) { c.loc = loc } }

// WithToday overrides the current date, mostly for tests.
func WithToday(today func() date.Date) Option { return func(c *Client) { c.today = today } }

// WithLogger sets the logger used by the Client and its default Retrier.
func WithLogger(l *log.Logger) Option { return func(c *Client) { c.logger = l } }

// New returns a Client fetching charts, search results and metadata from source.
func New(source Source, opts ...Option) *Client {
	c := &Client{
		source: source,
		loc:    time.Local,
		today:  date.Today,
		logger: &log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if p, ok := source.(PageSource); ok && c.pages == nil {
		c.pages = p
	}
	if c.retrier == nil {
		c.retrier = NewRetrier()
		c.retrier.Logger = c.logger
	}
	return c
}

// FundQuery selects one metric for a set of funds, plus optional benchmarks.
type FundQuery struct {
	IDs        []string // CNPJ, formatted or not
	Metric     Metric   // defaults to Rentability
	Benchmarks []string // e.g. "cdi", "ibov", "ipca"
	Start, End string   // dd/mm/yy, optional
	Period     string   // preset, optional
	AssetType  string   // only used by page based sources
}

// Fund returns a table with one column per fund and benchmark for the
// requested metric. Values are scaled according to Metric.Scale.
func (c *Client) Fund(ctx context.Context, q FundQuery) (*Table, error) {
	if len(q.IDs) == 0 {
		return nil, errors.New("at least one fund id is required")
	}
	metric := q.Metric
	if metric == "" {
		metric = Rentability
	}
	r, err := ResolveRange(RangeQuery{Start: q.Start, End: q.End, Period: q.Period}, c.today())
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(q.IDs))
	for i, id := range q.IDs {
		ids[i] = NormalizeName(id, PathMode)
	}
	chart := NewChartQuery(ids, metric, q.Benchmarks, r, c.loc)
	chart.AssetType = q.AssetType
	key := strings.Join(ids, ",")

	var raw []Series
	err = c.retrier.Do(ctx, key, func(ctx context.Context) (err error) {
		raw, err = c.source.Chart(ctx, chart)
		return err
	})
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Str("ids", key).Str("metric", metric.String()).Int("series", len(raw)).Msg("chart fetched")

	named := make([]*NamedSeries, 0, len(raw))
	for _, s := range raw {
		named = append(named, BuildSeries(s.Name, s.Observations, ValueField, metric.Scale(), r))
	}
	return Merge(named...)
}

// FundsQuery compares funds by name using their rendered pages.
type FundsQuery struct {
	Names      []string
	AssetType  string // defaults to DefaultAssetType
	Benchmarks []string
	Start, End string // dd/mm/yy, optional
	Period     string // preset, optional
	Simplified bool   // shorten column names with SimplifyName
	FullData   bool   // add net worth and shareholders columns
	Rebase     bool   // turn values into cumulative returns
}

// Funds returns a table with one column per fund name, built from the fund pages.
func (c *Client) Funds(ctx context.Context, q FundsQuery) (*Table, error) {
	if c.pages == nil {
		return nil, fmt.Errorf("fund pages: %w", ErrUnsupported)
	}
	if len(q.Names) == 0 {
		return nil, errors.New("at least one fund name is required")
	}
	assetType := q.AssetType
	if assetType == "" {
		assetType = DefaultAssetType
	}
	r, err := ResolveRange(RangeQuery{Start: q.Start, End: q.End, Period: q.Period}, c.today())
	if err != nil {
		return nil, err
	}

	var named []*NamedSeries
	columns := make(map[string]bool)
	benchmarks := make(map[string]*NamedSeries)
	for _, name := range q.Names {
		token := NormalizeName(name, PathMode)
		var page *FundPage
		err := c.retrier.Do(ctx, token, func(ctx context.Context) (err error) {
			page, err = c.pages.Page(ctx, token, assetType, q.Benchmarks...)
			return err
		})
		if err != nil {
			return nil, err
		}

		column := strings.ToUpper(name)
		if q.Simplified {
			// two names may simplify to the same column, keep the full name then.
			if short := SimplifyName(name); short != "" && !columns[short] {
				column = short
			}
		}
		columns[column] = true
		value := BuildSeries(column, page.Observations, ValueField, decimalOne, r)
		if day, v := value.History.Latest(); value.Len() > 0 {
			c.logger.Debug().Str("fund", token).Str("column", column).Int("points", value.Len()).Str("last_day", day.String()).Float64("last", v).Msg("page parsed")
		}
		if q.Rebase {
			if value = c.rebase(value); value == nil {
				continue
			}
		}
		named = append(named, value)
		if q.FullData {
			named = append(named,
				BuildSeries(column+" NETWORTH", page.Observations, NetWorthField, NetWorth.Scale(), r),
				BuildSeries(column+" SHAREHOLDERS", page.Observations, ShareholdersField, Shareholders.Scale(), r),
			)
		}
		// Benchmarks are the same on every page, keep the first one.
		for key, obs := range page.Benchmarks {
			if _, ok := benchmarks[key]; ok {
				continue
			}
			b := BuildSeries(key, obs, ValueField, decimalOne, r)
			if q.Rebase {
				b = c.rebase(b)
			}
			benchmarks[key] = b
		}
	}
	for _, b := range benchmarks {
		if b != nil {
			named = append(named, b)
		}
	}
	return Merge(named...)
}

// rebase returns s as cumulative returns, or nil when s cannot be rebased.
func (c *Client) rebase(s *NamedSeries) *NamedSeries {
	rebased, err := s.Rebase()
	if err != nil {
		c.logger.Warn().Str("series", s.Name).Int("points", s.Len()).Err(err).Msg("cannot rebase, series skipped")
		return nil
	}
	return rebased
}

// Search returns the funds whose name matches name, at most limit of them.
func (c *Client) Search(ctx context.Context, name string, limit int) ([]FundSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	return c.source.Search(ctx, NormalizeName(name, SearchMode), limit, 0)
}

// Info returns the metadata of the funds identified by ids.
func (c *Client) Info(ctx context.Context, ids ...string) (*Info, error) {
	if len(ids) == 0 {
		return nil, errors.New("at least one fund id is required")
	}
	normalized := make([]string, len(ids))
	for i, id := range ids {
		normalized[i] = NormalizeName(id, PathMode)
	}
	return c.source.Info(ctx, normalized...)
}
