package brfunds

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/brfunds/date"
	"github.com/shopspring/decimal"
)

// Observation is one sample of a fund on a given day.
// Missing values are represented by an invalid decimal.NullDecimal.
type Observation struct {
	Date         date.Date
	Value        decimal.NullDecimal
	NetWorth     decimal.NullDecimal
	Shareholders decimal.NullDecimal
}

// Field selects which value of an Observation is extracted.
type Field int

const (
	ValueField Field = iota
	NetWorthField
	ShareholdersField
)

// Get returns the value of o selected by f.
func (f Field) Get(o Observation) decimal.NullDecimal {
	switch f {
	case NetWorthField:
		return o.NetWorth
	case ShareholdersField:
		return o.Shareholders
	default:
		return o.Value
	}
}

// Series is a raw series returned by a Source: the observations of one fund or benchmark.
type Series struct {
	Name         string
	Observations []Observation
}

// SeriesFromEpoch builds a Series out of parallel arrays of epoch milliseconds and values.
// Each date is converted into the calendar day it falls on in loc, time.Local if nil.
func SeriesFromEpoch(name string, dates []int64, values []decimal.NullDecimal, loc *time.Location) (Series, error) {
	if len(dates) != len(values) {
		return Series{}, ShapeError(name, "%d dates for %d values", len(dates), len(values))
	}
	if loc == nil {
		loc = time.Local
	}
	s := Series{Name: name, Observations: make([]Observation, len(dates))}
	for i, ms := range dates {
		s.Observations[i] = Observation{
			Date:  date.FromEpochMillis(ms, loc),
			Value: values[i],
		}
	}
	return s, nil
}

// NamedSeries is a chronological series of scaled values, named after the
// fund or indicator it describes.
type NamedSeries struct {
	Name    string
	History date.History[float64]
}

// NewNamedSeries returns an empty series. The name is used as given.
func NewNamedSeries(name string) *NamedSeries { return &NamedSeries{Name: name} }

// BuildSeries extracts field from the observations that fall in r, drops
// missing values, and multiplies the others by scale.
//
// The resulting series is named after name, upper-cased.
func BuildSeries(name string, obs []Observation, field Field, scale decimal.Decimal, r date.Range) *NamedSeries {
	s := NewNamedSeries(strings.ToUpper(name))
	for _, o := range obs {
		if !r.Contains(o.Date) {
			continue
		}
		v := field.Get(o)
		if !v.Valid {
			continue
		}
		s.History.Append(o.Date, v.Decimal.Mul(scale).InexactFloat64())
	}
	return s
}

// Len returns the number of points in the series.
func (s *NamedSeries) Len() int { return s.History.Len() }

// Rebase returns a new series with the cumulative return of s relative to
// its first point: v/v0 - 1.
func (s *NamedSeries) Rebase() (*NamedSeries, error) {
	if s.Len() < 2 {
		return nil, fmt.Errorf("cannot rebase %q: %d points, need at least 2", s.Name, s.Len())
	}
	_, first := s.History.First()
	if first == 0 {
		return nil, fmt.Errorf("cannot rebase %q: first value is zero", s.Name)
	}
	base := decimal.NewFromFloat(first)
	rebased := NewNamedSeries(s.Name)
	for day, v := range s.History.Values() {
		ratio := decimal.NewFromFloat(v).DivRound(base, 16).Sub(decimalOne)
		rebased.History.Append(day, ratio.InexactFloat64())
	}
	return rebased, nil
}
