package brfunds

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/etnz/brfunds/date"
)

// Table is a date-indexed table with one column per series.
//
// Rows are the union of the dates of all the series. A cell is absent when
// its series has no value on that date: it is never zero-filled nor
// interpolated.
type Table struct {
	columns []string
	series  map[string]*date.History[float64]
	dates   []date.Date
}

// Merge outer-joins series on their dates.
//
// Columns are sorted by name so that the result does not depend on the order
// of the arguments. Two series with the same name are an error.
func Merge(series ...*NamedSeries) (*Table, error) {
	t := &Table{series: make(map[string]*date.History[float64], len(series))}
	for _, s := range series {
		if _, exists := t.series[s.Name]; exists {
			return nil, fmt.Errorf("cannot merge: duplicate series %q", s.Name)
		}
		t.series[s.Name] = &s.History
		t.columns = append(t.columns, s.Name)
	}
	slices.Sort(t.columns)

	histories := make([]*date.History[float64], 0, len(t.columns))
	for _, name := range t.columns {
		histories = append(histories, t.series[name])
	}
	t.dates = slices.Collect(date.Iterate(histories...))
	return t, nil
}

// Columns returns the column names, in order.
func (t *Table) Columns() []string { return slices.Clone(t.columns) }

// Dates returns the row dates, in chronological order.
func (t *Table) Dates() []date.Date { return slices.Clone(t.dates) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.dates) }

// Get returns the cell at day for column, and false if the cell is absent.
func (t *Table) Get(day date.Date, column string) (float64, bool) {
	h, ok := t.series[column]
	if !ok {
		return 0, false
	}
	return h.Get(day)
}

// Cell is one value of a row.
type Cell struct {
	Value float64
	Valid bool
}

// Rows iterates over the table rows in chronological order. Cells are in
// Columns order.
func (t *Table) Rows() iter.Seq2[date.Date, []Cell] {
	return func(yield func(date.Date, []Cell) bool) {
		for _, day := range t.dates {
			cells := make([]Cell, len(t.columns))
			for i, name := range t.columns {
				cells[i].Value, cells[i].Valid = t.series[name].Get(day)
			}
			if !yield(day, cells) {
				return
			}
		}
	}
}

func (t *Table) String() string {
	var b strings.Builder
	b.WriteString("Date")
	for _, c := range t.columns {
		fmt.Fprintf(&b, "\t%s", c)
	}
	b.WriteString("\n")
	for day, cells := range t.Rows() {
		b.WriteString(day.String())
		for _, c := range cells {
			if c.Valid {
				fmt.Fprintf(&b, "\t%g", c.Value)
			} else {
				b.WriteString("\t")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
