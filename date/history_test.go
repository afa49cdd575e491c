package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}
}

func TestAppendOverwrites(t *testing.T) {
	h := new(History[float64])
	d := New(2025, 1, 1)
	h.Append(d, 1).Append(d, 2)
	if h.Len() != 1 {
		t.Fatalf("Len() = %d want 1", h.Len())
	}
	if v, ok := h.Get(d); !ok || v != 2 {
		t.Errorf("Get(%v) = %v, %v want 2, true", d, v, ok)
	}
}

func TestGet(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2025, 1, 10), 10).Append(New(2025, 1, 20), 20)

	testCases := []struct {
		name   string
		day    Date
		want   float64
		wantOk bool
	}{
		{"before first", New(2025, 1, 1), 0, false},
		{"first", New(2025, 1, 10), 10, true},
		{"between", New(2025, 1, 15), 0, false},
		{"last", New(2025, 1, 20), 20, true},
		{"after last", New(2025, 2, 1), 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.Get(tc.day)
			if got != tc.want || ok != tc.wantOk {
				t.Errorf("Get(%v) = %v, %v want %v, %v", tc.day, got, ok, tc.want, tc.wantOk)
			}
		})
	}
}

func TestFirstLatest(t *testing.T) {
	h := new(History[float64])
	if d, v := h.First(); d != (Date{}) || v != 0 {
		t.Errorf("First() on empty = %v, %v", d, v)
	}
	h.Append(New(2025, 3, 1), 3).Append(New(2025, 1, 1), 1)
	if d, v := h.First(); d != New(2025, 1, 1) || v != 1 {
		t.Errorf("First() = %v, %v", d, v)
	}
	if d, v := h.Latest(); d != New(2025, 3, 1) || v != 3 {
		t.Errorf("Latest() = %v, %v", d, v)
	}
}
