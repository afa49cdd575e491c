package comparador

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/PuerkitoBio/goquery"
	"github.com/etnz/brfunds"
	"github.com/etnz/brfunds/date"
	"github.com/shopspring/decimal"
)

const (
	fundPath      = "$.props.pageProps.fund.r"
	benchmarkPath = "$.props.initialReduxState[%q].r"
)

// nextData extracts the json payload that the page framework embeds in
//
//	<script id="__NEXT_DATA__" type="application/json">{…}</script>
//
// Numbers are kept as json.Number.
func nextData(body []byte) (any, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, brfunds.ShapeError("html", "cannot parse page: %v", err)
	}
	script := doc.Find("script#__NEXT_DATA__").First()
	if script.Length() == 0 {
		return nil, brfunds.ShapeError("__NEXT_DATA__", "script element not found")
	}
	dec := json.NewDecoder(strings.NewReader(script.Text()))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, brfunds.ShapeError("__NEXT_DATA__", "invalid json: %v", err)
	}
	return payload, nil
}

// parsePage reads the fund and benchmark observations out of the payload.
func parsePage(token string, payload any, benchmarks []string) (*brfunds.FundPage, error) {
	obs, err := observationsAt(payload, fundPath)
	if err != nil {
		return nil, err
	}
	page := &brfunds.FundPage{
		Token:        token,
		Observations: obs,
		Benchmarks:   make(map[string][]brfunds.Observation, len(benchmarks)),
	}
	for _, b := range benchmarks {
		key := benchmarkKey(b)
		obs, err := observationsAt(payload, fmt.Sprintf(benchmarkPath, key))
		if err != nil {
			return nil, err
		}
		page.Benchmarks[key] = obs
	}
	return page, nil
}

func benchmarkKey(b string) string { return strings.ToLower(strings.TrimSpace(b)) }

// observationsAt decodes the list of records found at path:
//
//	[{"d": "2020-01-02", "q": 1.2345, "nw": 1500000.12, "qh": 1234}, …]
func observationsAt(payload any, path string) ([]brfunds.Observation, error) {
	raw, err := jsonpath.Get(path, payload)
	if err != nil {
		return nil, brfunds.ShapeError(path, "%v", err)
	}
	records, ok := raw.([]any)
	if !ok {
		return nil, brfunds.ShapeError(path, "want a list, got %T", raw)
	}
	obs := make([]brfunds.Observation, 0, len(records))
	for i, r := range records {
		record, ok := r.(map[string]any)
		if !ok {
			return nil, brfunds.ShapeError(fmt.Sprintf("%s[%d]", path, i), "want an object, got %T", r)
		}
		o, err := observation(record)
		if err != nil {
			return nil, brfunds.ShapeError(fmt.Sprintf("%s[%d]", path, i), "%v", err)
		}
		obs = append(obs, o)
	}
	return obs, nil
}

func observation(record map[string]any) (o brfunds.Observation, err error) {
	d, ok := record["d"].(string)
	if !ok {
		return o, fmt.Errorf("missing date")
	}
	// dates may carry a time part
	d, _, _ = strings.Cut(d, "T")
	if o.Date, err = date.Parse(d); err != nil {
		return o, err
	}
	if o.Value, err = nullDecimal(record["q"]); err != nil {
		return o, fmt.Errorf("q: %w", err)
	}
	if o.NetWorth, err = nullDecimal(record["nw"]); err != nil {
		return o, fmt.Errorf("nw: %w", err)
	}
	if o.Shareholders, err = nullDecimal(record["qh"]); err != nil {
		return o, fmt.Errorf("qh: %w", err)
	}
	return o, nil
}

// nullDecimal converts a decoded json value, absent values are null.
func nullDecimal(v any) (decimal.NullDecimal, error) {
	switch v := v.(type) {
	case nil:
		return decimal.NullDecimal{}, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.NullDecimal{}, err
		}
		return decimal.NewNullDecimal(d), nil
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(v)), nil
	case string:
		if v == "" {
			return decimal.NullDecimal{}, nil
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.NullDecimal{}, err
		}
		return decimal.NewNullDecimal(d), nil
	default:
		return decimal.NullDecimal{}, fmt.Errorf("unexpected value %v (%T)", v, v)
	}
}
