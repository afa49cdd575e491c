package date

import (
	"slices"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseShort(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"01/01/20", New(2020, time.January, 1), false},
		{"31/01/20", New(2020, time.January, 31), false},
		{"29/02/24", New(2024, time.February, 29), false},
		{"1/1/20", Date{}, true},
		{"2020-01-01", Date{}, true},
		{"32/01/20", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseShort(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseShort(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseShort(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFromEpochMillis(t *testing.T) {
	testCases := []struct {
		name string
		ms   int64
		loc  *time.Location
		want Date
	}{
		{"utc midnight", 1577836800000, time.UTC, New(2020, time.January, 1)},
		{"next day", 1577923200000, time.UTC, New(2020, time.January, 2)},
		{"west of utc", 1577836800000, time.FixedZone("BRT", -3*3600), New(2019, time.December, 31)},
		{"late in the day", 1577836800000 + 23*3600*1000, time.UTC, New(2020, time.January, 1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromEpochMillis(tc.ms, tc.loc); got != tc.want {
				t.Errorf("FromEpochMillis(%d) = %v, want %v", tc.ms, got, tc.want)
			}
		})
	}
}

func TestEpochMillisRoundTrip(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	d := New(2021, time.March, 14)
	if got := FromEpochMillis(d.EpochMillis(loc), loc); got != d {
		t.Errorf("FromEpochMillis(EpochMillis(%v)) = %v", d, got)
	}
	if got, want := d.EpochMillis(nil), d.EpochMillis(time.Local); got != want {
		t.Errorf("EpochMillis(nil) = %d, want the local midnight %d", got, want)
	}
	if got := FromEpochMillis(d.EpochMillis(nil), nil); got != d {
		t.Errorf("FromEpochMillis(EpochMillis(%v), nil) = %v", d, got)
	}
	if got := New(2020, time.January, 1).EpochMillis(time.UTC); got != 1577836800000 {
		t.Errorf("EpochMillis() = %d, want 1577836800000", got)
	}
}

func TestIterate(t *testing.T) {
	a := new(History[float64])
	a.Append(New(2020, 1, 1), 1).Append(New(2020, 1, 3), 3)
	b := new(History[float64])
	b.Append(New(2020, 1, 2), 2).Append(New(2020, 1, 3), 3)

	got := slices.Collect(Iterate(a, b))
	want := []Date{New(2020, 1, 1), New(2020, 1, 2), New(2020, 1, 3)}
	if !slices.Equal(got, want) {
		t.Errorf("Iterate() = %v, want %v", got, want)
	}
}
