package brfunds

import (
	"errors"

	"github.com/etnz/brfunds/date"
)

// RangeQuery holds the optional bounds of a query as supplied by a caller.
// Empty strings mean the bound is absent. Start and End use the dd/mm/yy format.
type RangeQuery struct {
	Start  string
	End    string
	Period string
}

// ResolveRange turns a RangeQuery into a concrete, inclusive date range.
//
// When End is absent it is either Start shifted by Period (when both are
// given), or today. When Start is absent it is End shifted back by Period, or
// date.Floor when there is no Period. Explicit bounds are used verbatim.
func ResolveRange(q RangeQuery, today date.Date) (date.Range, error) {
	var start, end *date.Date
	if q.Start != "" {
		d, err := parseBound(q.Start)
		if err != nil {
			return date.Range{}, err
		}
		start = &d
	}
	if q.End != "" {
		d, err := parseBound(q.End)
		if err != nil {
			return date.Range{}, err
		}
		end = &d
	}
	return resolve(start, end, q.Period, today)
}

// ResolveDates is like ResolveRange for bounds that are already parsed.
func ResolveDates(start, end *date.Date, period string, today date.Date) (date.Range, error) {
	return resolve(start, end, period, today)
}

func parseBound(text string) (date.Date, error) {
	d, err := date.ParseShort(text)
	if err != nil {
		return date.Date{}, &MalformedDateError{Text: text, Err: errors.Unwrap(err)}
	}
	return d, nil
}

func resolve(start, end *date.Date, period string, today date.Date) (date.Range, error) {
	var preset date.Preset
	if period != "" {
		p, err := date.ParsePreset(period)
		if err != nil {
			return date.Range{}, &InvalidPeriodError{Period: period}
		}
		preset = p
	}

	var r date.Range
	switch {
	case end != nil:
		r.To = *end
	case preset != "" && start != nil:
		r.To = preset.After(*start)
	default:
		r.To = today
	}

	switch {
	case start != nil:
		r.From = *start
	case preset != "":
		r.From = preset.Before(r.To)
	default:
		r.From = date.Floor
	}

	if !r.Valid() {
		return date.Range{}, &InvalidRangeError{From: r.From.String(), To: r.To.String()}
	}
	return r, nil
}
