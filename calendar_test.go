package dtplus

import (
	"testing"
	"time"
)

func TestIsLeap(t *testing.T) {
	for year, want := range map[int]bool{
		2000: true, 2020: true, 2024: true, 0: true, -4: true,
		1900: false, 2021: false, 2100: false, -1: false,
	} {
		if got := IsLeap(year); got != want {
			t.Fatalf("%s failed [%d]: want %t, got %t", t.Name(), year, want, got)
		}
	}
}

func TestDaysIn(t *testing.T) {
	want := [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for m := 1; m <= 12; m++ {
		if got := DaysIn(m, 2021); got != want[m-1] {
			t.Fatalf("%s failed [%d]: want %d, got %d", t.Name(), m, want[m-1], got)
		}
	}
	if DaysIn(2, 2020) != 29 || DaysIn(0, 2020) != 0 || DaysIn(13, 2020) != 0 {
		t.Fatalf("%s failed: edge months", t.Name())
	}
}

func TestDayOfYear(t *testing.T) {
	for idx, c := range []struct{ y, m, d, want int }{
		{2020, 1, 1, 1},
		{2020, 3, 1, 61},
		{2021, 3, 1, 60},
		{2020, 12, 31, 366},
		{2021, 12, 31, 365},
	} {
		if got := dayOfYear(c.y, c.m, c.d); got != c.want {
			t.Fatalf("%s[%d] failed: want %d, got %d", t.Name(), idx, c.want, got)
		}
	}
}

// TestCivilDays checks the day-number helpers against the time package
// across a few centuries, including proleptic dates before 1970.
func TestCivilDays(t *testing.T) {
	start := time.Date(1599, 12, 25, 0, 0, 0, 0, time.UTC)

	for tm := start; tm.Year() < 2401; tm = tm.AddDate(0, 0, 37) {
		n, _ := floorDiv(int(tm.Unix()), 86400)
		y, m, d := tm.Year(), int(tm.Month()), tm.Day()

		if got := daysFromCivil(y, m, d); got != n {
			t.Fatalf("%s failed [%s]: want day %d, got %d", t.Name(), tm.Format(time.DateOnly), n, got)
		}
		gy, gm, gd := civilFromDays(n)
		if gy != y || gm != m || gd != d {
			t.Fatalf("%s failed [%d]: want %d-%d-%d, got %d-%d-%d", t.Name(), n, y, m, d, gy, gm, gd)
		}
		if got := weekdayOf(y, m, d); got != int(tm.Weekday()) {
			t.Fatalf("%s failed [%s]: want weekday %d, got %d", t.Name(), tm.Format(time.DateOnly), tm.Weekday(), got)
		}
	}
}
