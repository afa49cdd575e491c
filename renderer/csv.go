package renderer

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/etnz/brfunds"
)

// WriteCSV writes t as comma separated values: a "Date" column followed by
// the table columns. Values are written unformatted, absent cells are empty.
func WriteCSV(w io.Writer, t *brfunds.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"Date"}, t.Columns()...)); err != nil {
		return err
	}
	for day, cells := range t.Rows() {
		record := make([]string, 0, len(cells)+1)
		record = append(record, day.String())
		for _, c := range cells {
			if c.Valid {
				record = append(record, strconv.FormatFloat(c.Value, 'f', -1, 64))
			} else {
				record = append(record, "")
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
