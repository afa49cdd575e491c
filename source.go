package brfunds

import (
	"context"
	"fmt"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/brfunds/date"
)

// Source is a remote provider of fund data.
//
// Implementations must classify their own failures: a response missing an
// expected field, or with an unexpected shape, is reported as a
// *TransientShapeError; a non successful HTTP status as a *RemoteRequestError.
type Source interface {
	// Search returns funds whose name matches query.
	Search(ctx context.Context, query string, limit, offset int) ([]FundSummary, error)
	// Info returns the metadata record of the funds.
	Info(ctx context.Context, ids ...string) (*Info, error)
	// Chart returns one series per fund and benchmark.
	Chart(ctx context.Context, q ChartQuery) ([]Series, error)
}

// PageSource is a remote provider of rendered fund pages.
type PageSource interface {
	// Page returns the observations embedded in the page of the fund named token.
	Page(ctx context.Context, token, assetType string, benchmarks ...string) (*FundPage, error)
}

// ChartQuery is the request sent to Source.Chart.
//
// Range holds the resolved calendar range; From and To are the same bounds
// converted to milliseconds since the Unix epoch in Location.
type ChartQuery struct {
	IDs        []string
	Metric     Metric
	Benchmarks []string
	Range      date.Range
	From, To   int64
	Location   *time.Location
	AssetType  string
}

// NewChartQuery returns a query for ids over r, with the epoch bounds computed in loc.
func NewChartQuery(ids []string, metric Metric, benchmarks []string, r date.Range, loc *time.Location) ChartQuery {
	from, to := r.EpochMillis(loc)
	return ChartQuery{
		IDs:        ids,
		Metric:     metric,
		Benchmarks: benchmarks,
		Range:      r,
		From:       from,
		To:         to,
		Location:   loc,
	}
}

// FundSummary is one search result.
type FundSummary struct {
	ID   string // source internal id, possibly empty
	CNPJ string // tax registry id
	Name string // display name
}

// FundPage holds the observations scraped from a fund page.
type FundPage struct {
	Token        string
	Observations []Observation
	Benchmarks   map[string][]Observation
}

// Info is a fund metadata record, as decoded from json.
type Info struct {
	Raw any
}

// Get evaluates a jsonpath expression, like "$[0].socialName", against the record.
func (i *Info) Get(path string) (any, error) {
	v, err := jsonpath.Get(path, i.Raw)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q on fund info: %w", path, err)
	}
	return v, nil
}
