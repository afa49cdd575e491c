package renderer

import (
	"strings"

	"github.com/etnz/brfunds"
)

// Options controls how a table is rendered.
type Options struct {
	Title   string
	Default Format            // format of the columns not listed in Columns
	Columns map[string]Format // per column format
}

// format returns the format of column.
func (o Options) format(column string) Format {
	if f, ok := o.Columns[column]; ok {
		return f
	}
	return o.Default
}

// FormatFor returns the natural format of a metric.
func FormatFor(m brfunds.Metric) Format {
	switch m {
	case brfunds.NetWorth:
		return Money
	case brfunds.Shareholders:
		return Count
	default:
		return Ratio
	}
}

// FullDataFormats returns the column formats of a fund comparison with full data:
// net worth and shareholders columns are detected by their suffix.
func FullDataFormats(columns []string) map[string]Format {
	formats := make(map[string]Format)
	for _, c := range columns {
		switch {
		case strings.HasSuffix(c, " NETWORTH"):
			formats[c] = Money
		case strings.HasSuffix(c, " SHAREHOLDERS"):
			formats[c] = Count
		}
	}
	return formats
}

// TableView is the template friendly version of a brfunds.Table.
type TableView struct {
	Title   string
	Columns []string
	Rows    []RowView
}

// RowView is one date of a TableView. Absent cells are empty strings.
type RowView struct {
	Date  string
	Cells []string
}

// NewTableView formats every cell of t.
func NewTableView(t *brfunds.Table, opts Options) *TableView {
	columns := t.Columns()
	view := &TableView{Title: opts.Title, Columns: make([]string, len(columns))}
	formats := make([]Format, len(columns))
	for i, c := range columns {
		view.Columns[i] = escape(c)
		formats[i] = opts.format(c)
	}
	for day, cells := range t.Rows() {
		row := RowView{Date: day.String(), Cells: make([]string, len(cells))}
		for i, cell := range cells {
			if cell.Valid {
				row.Cells[i] = formats[i].Format(cell.Value)
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}
