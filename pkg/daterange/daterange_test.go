package daterange

import (
	"testing"
	"time"
)

func TestResolveYearOnly(t *testing.T) {
	r, ok := Resolve(2024, 0, 0)
	if !ok {
		t.Fatal("expected a window for year-only selector")
	}
	if r.Start != time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected start %v", r.Start)
	}
	if r.End != time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected end %v", r.End)
	}
}

func TestResolveMonthWindows(t *testing.T) {
	for bulan := 1; bulan <= 12; bulan++ {
		r, ok := Resolve(2024, bulan, 0)
		if !ok {
			t.Fatalf("bulan %d: expected window", bulan)
		}
		if !r.Start.Before(r.End) {
			t.Fatalf("bulan %d: start %v not before end %v", bulan, r.Start, r.End)
		}
		if got := r.End.Sub(r.Start).Hours() / 24; got != float64(time.Date(2024, time.Month(bulan)+1, 0, 0, 0, 0, 0, time.UTC).Day()) {
			t.Fatalf("bulan %d: window spans %v days", bulan, got)
		}
	}
}

func TestResolveDecemberWrapsYear(t *testing.T) {
	r, _ := Resolve(2024, 12, 0)
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if r.End != want {
		t.Fatalf("december window must end at %v, got %v", want, r.End)
	}
}

func TestResolveDayWindowEndsSameDay(t *testing.T) {
	r, ok := Resolve(2024, 3, 17)
	if !ok {
		t.Fatal("expected window")
	}
	if r.Start != time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected start %v", r.Start)
	}
	want := time.Date(2024, 3, 17, 23, 59, 59, 999000000, time.UTC)
	if r.End != want {
		t.Fatalf("day window must end at %v, got %v", want, r.End)
	}
}

func TestResolveDayBeyondMonthEndIsEmpty(t *testing.T) {
	r, ok := Resolve(2024, 2, 31)
	if !ok {
		t.Fatal("expected a window")
	}
	if !r.Start.Equal(r.End) {
		t.Fatalf("expected empty window, got [%v, %v)", r.Start, r.End)
	}
	if r.Start.Month() != time.February {
		t.Fatalf("empty window must not spill into another month, got %v", r.Start)
	}

	// leap day is valid in 2024 but not in 2023
	if r, _ := Resolve(2024, 2, 29); r.Start.Equal(r.End) {
		t.Fatal("2024-02-29 is a real day and must produce a window")
	}
	if r, _ := Resolve(2023, 2, 29); !r.Start.Equal(r.End) {
		t.Fatal("2023-02-29 does not exist and must produce an empty window")
	}
}

func TestResolveWithoutYear(t *testing.T) {
	if _, ok := Resolve(0, 5, 12); ok {
		t.Fatal("bulan/hari without tahun must not produce a window")
	}
}

func TestResolveDayWithoutMonthFallsBackToYear(t *testing.T) {
	r, ok := Resolve(2024, 0, 12)
	if !ok {
		t.Fatal("expected year window")
	}
	if r.End != time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("expected year-scoped window, got end %v", r.End)
	}
}
