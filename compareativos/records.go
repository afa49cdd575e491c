package compareativos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/etnz/brfunds"
	"github.com/shopspring/decimal"
)

// chartRecord is one element of a chart response:
//
//	{
//	  "indicatorName": "12345678000190",
//	  "dates": [1577836800000, 1577923200000],
//	  "values": [0.12, null]
//	}
//
// Drawdown charts return values as [value, …] tuples.
type chartRecord struct {
	IndicatorName *string      `json:"indicatorName"`
	Dates         []int64      `json:"dates"`
	Values        []chartValue `json:"values"`
}

func (r chartRecord) series(i int, loc *time.Location) (brfunds.Series, error) {
	switch {
	case r.IndicatorName == nil:
		return brfunds.Series{}, brfunds.ShapeError(fmt.Sprintf("[%d].indicatorName", i), "missing field")
	case r.Dates == nil:
		return brfunds.Series{}, brfunds.ShapeError(fmt.Sprintf("[%d].dates", i), "missing field")
	case r.Values == nil:
		return brfunds.Series{}, brfunds.ShapeError(fmt.Sprintf("[%d].values", i), "missing field")
	}
	values := make([]decimal.NullDecimal, len(r.Values))
	for j, v := range r.Values {
		values[j] = decimal.NullDecimal(v)
	}
	return brfunds.SeriesFromEpoch(*r.IndicatorName, r.Dates, values, loc)
}

// chartValue is a number, null, or a tuple whose first element is the value.
type chartValue decimal.NullDecimal

func (v *chartValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var tuple []json.RawMessage
		if err := json.Unmarshal(b, &tuple); err != nil {
			return err
		}
		if len(tuple) == 0 {
			*v = chartValue{}
			return nil
		}
		return v.UnmarshalJSON(tuple[0])
	}
	var d decimal.NullDecimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*v = chartValue(d)
	return nil
}

// searchRecord is one element of a search response.
type searchRecord struct {
	ID         flexString `json:"id"`
	CNPJ       *string    `json:"cnpj"`
	SocialName *string    `json:"socialName"`
}

func (r searchRecord) summary() (brfunds.FundSummary, error) {
	if r.CNPJ == nil {
		return brfunds.FundSummary{}, brfunds.ShapeError("cnpj", "missing field")
	}
	if r.SocialName == nil {
		return brfunds.FundSummary{}, brfunds.ShapeError("socialName", "missing field")
	}
	return brfunds.FundSummary{ID: string(r.ID), CNPJ: *r.CNPJ, Name: *r.SocialName}, nil
}

// flexString accepts both json strings and numbers.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = ""
	case len(b) > 0 && b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = flexString(str)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*s = flexString(n)
	}
	return nil
}
