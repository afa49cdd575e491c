package date

import (
	"fmt"
	"time"
)

// Floor is the earliest day used when a range has no explicit start.
var Floor = New(2000, time.January, 1)

// Range represents a range of dates.
type Range struct{ From, To Date }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Valid reports whether the range is not reversed.
func (r Range) Valid() bool { return !r.From.After(r.To) }

// EpochMillis converts the range bounds into milliseconds since the Unix epoch,
// each bound being the midnight of that day in loc.
func (r Range) EpochMillis(loc *time.Location) (from, to int64) {
	return r.From.EpochMillis(loc), r.To.EpochMillis(loc)
}

func (r Range) String() string { return fmt.Sprintf("%s_%s", r.From, r.To) }
