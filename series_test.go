package brfunds

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/brfunds/date"
	"github.com/shopspring/decimal"
)

func value(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

func TestSeriesFromEpoch(t *testing.T) {
	s, err := SeriesFromEpoch("cdi", []int64{1577836800000, 1577923200000}, []decimal.NullDecimal{value(500), {}}, time.UTC)
	if err != nil {
		t.Fatalf("SeriesFromEpoch() failed: %v", err)
	}
	if len(s.Observations) != 2 {
		t.Fatalf("got %d observations, want 2", len(s.Observations))
	}
	if got, want := s.Observations[0].Date, date.New(2020, 1, 1); got != want {
		t.Errorf("got first date %v, want %v", got, want)
	}
	if got, want := s.Observations[1].Date, date.New(2020, 1, 2); got != want {
		t.Errorf("got second date %v, want %v", got, want)
	}
	if s.Observations[1].Value.Valid {
		t.Errorf("got a valid second value, want null")
	}

	local, err := SeriesFromEpoch("cdi", []int64{1577836800000}, []decimal.NullDecimal{value(1)}, nil)
	if err != nil {
		t.Fatalf("SeriesFromEpoch() without location failed: %v", err)
	}
	if got, want := local.Observations[0].Date, date.FromEpochMillis(1577836800000, time.Local); got != want {
		t.Errorf("without location: got %v, want the local day %v", got, want)
	}

	_, err = SeriesFromEpoch("cdi", []int64{1577836800000}, nil, time.UTC)
	var shape *TransientShapeError
	if !errors.As(err, &shape) {
		t.Errorf("length mismatch: got %v, want *TransientShapeError", err)
	}
}

func TestBuildSeries(t *testing.T) {
	obs := []Observation{
		{Date: date.New(2019, 12, 31), Value: value(50)},
		{Date: date.New(2020, 1, 1), Value: value(100), NetWorth: value(1e6)},
		{Date: date.New(2020, 1, 2), Value: value(200), NetWorth: value(2e6)},
		{Date: date.New(2020, 1, 3)},
		{Date: date.New(2020, 2, 1), Value: value(300)},
	}
	r := date.Range{From: date.New(2020, 1, 1), To: date.New(2020, 1, 31)}

	s := BuildSeries("alaska", obs, ValueField, Rentability.Scale(), r)
	if s.Name != "ALASKA" {
		t.Errorf("got name %q, want %q", s.Name, "ALASKA")
	}
	if s.Len() != 2 {
		t.Fatalf("got %d points, want 2", s.Len())
	}
	for day, want := range map[date.Date]float64{date.New(2020, 1, 1): 1.0, date.New(2020, 1, 2): 2.0} {
		if got, ok := s.History.Get(day); !ok || got != want {
			t.Errorf("on %v got %v (%v), want %v", day, got, ok, want)
		}
	}

	nw := BuildSeries("alaska networth", obs, NetWorthField, NetWorth.Scale(), r)
	if got, ok := nw.History.Get(date.New(2020, 1, 2)); !ok || got != 2e6 {
		t.Errorf("net worth on 2020-01-02: got %v (%v), want 2e6", got, ok)
	}
}

func TestFieldGet(t *testing.T) {
	o := Observation{Value: value(1), NetWorth: value(2), Shareholders: value(3)}
	for field, want := range map[Field]float64{ValueField: 1, NetWorthField: 2, ShareholdersField: 3} {
		if got := field.Get(o); !got.Valid || got.Decimal.InexactFloat64() != want {
			t.Errorf("Field(%d).Get() = %v, want %v", field, got, want)
		}
	}
}

func TestRebase(t *testing.T) {
	s := NewNamedSeries("X")
	s.History.Append(date.New(2020, 1, 1), 2)
	s.History.Append(date.New(2020, 1, 2), 3)
	s.History.Append(date.New(2020, 1, 3), 1)

	rebased, err := s.Rebase()
	if err != nil {
		t.Fatalf("Rebase() failed: %v", err)
	}
	want := map[date.Date]float64{
		date.New(2020, 1, 1): 0,
		date.New(2020, 1, 2): 0.5,
		date.New(2020, 1, 3): -0.5,
	}
	for day, w := range want {
		if got, _ := rebased.History.Get(day); got != w {
			t.Errorf("on %v got %v, want %v", day, got, w)
		}
	}

	short := NewNamedSeries("Y")
	short.History.Append(date.New(2020, 1, 1), 2)
	if _, err := short.Rebase(); err == nil {
		t.Errorf("Rebase() on a single point: want an error")
	}

	zero := NewNamedSeries("Z")
	zero.History.Append(date.New(2020, 1, 1), 0)
	zero.History.Append(date.New(2020, 1, 2), 1)
	if _, err := zero.Rebase(); err == nil {
		t.Errorf("Rebase() from zero: want an error")
	}
}
